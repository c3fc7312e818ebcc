package i18n

import (
	"context"
	"log/slog"
)

// Preferences persists the chosen locale between sessions.
type Preferences interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, value string) error
}

// Document receives the presentation attributes derived from the locale.
type Document interface {
	SetDir(dir Direction)
	SetLang(lang string)
}

// Attributes is a Document that keeps the last attributes it was given.
// Page layouts render <html dir lang> from it.
type Attributes struct {
	Dir  Direction
	Lang string
}

func (a *Attributes) SetDir(dir Direction) { a.Dir = dir }

func (a *Attributes) SetLang(lang string) { a.Lang = lang }

type noPreferences struct{}

func (noPreferences) Load(context.Context) (string, error) { return "", nil }

func (noPreferences) Save(context.Context, string) error { return nil }

// Context is the active locale of one session together with string lookup
// and direction. A Context belongs to a single session and is not safe for
// concurrent use.
type Context struct {
	active Locale
	table  Table
	prefs  Preferences
	doc    Document
}

// New establishes the initial locale: a valid persisted preference wins,
// otherwise DefaultLocale. The document attributes are applied before New
// returns so nothing renders with a stale direction.
func New(ctx context.Context, table Table, prefs Preferences, doc Document) *Context {
	if prefs == nil {
		prefs = noPreferences{}
	}
	if doc == nil {
		doc = &Attributes{}
	}
	c := &Context{
		active: DefaultLocale,
		table:  table,
		prefs:  prefs,
		doc:    doc,
	}

	raw, err := prefs.Load(ctx)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't load locale preference",
			slog.String("err", err.Error()),
		)
		raw = ""
	}
	if l, err := ParseLocale(raw); err == nil {
		c.active = l
	}

	c.present()
	return c
}

// Locale returns the active locale.
func (c *Context) Locale() Locale {
	return c.active
}

// SetLocale switches the active locale. Unsupported values are rejected
// with ErrUnsupportedLocale and change nothing.
func (c *Context) SetLocale(ctx context.Context, raw string) error {
	next, err := transition(c.active, raw)
	if err != nil {
		return err
	}
	c.apply(ctx, next)
	return nil
}

// T returns the string for key in the active locale, or key itself when
// the table has no entry.
func (c *Context) T(key string) string {
	if v, ok := c.table.Lookup(c.active, key); ok {
		return v
	}
	return key
}

// IsRightToLeft reports whether the active locale is written right to left.
func (c *Context) IsRightToLeft() bool {
	return c.active == Arabic
}

// Dir returns the text direction of the active locale.
func (c *Context) Dir() Direction {
	return c.active.Dir()
}

// Messages returns every string of the active locale.
func (c *Context) Messages() map[string]string {
	return c.table.Messages(c.active)
}

// transition is the pure part of a locale switch.
func transition(current Locale, raw string) (Locale, error) {
	next, err := ParseLocale(raw)
	if err != nil {
		return current, err
	}
	return next, nil
}

// apply performs every effect of a switch to l. A failed save costs only
// durability; the switch itself still happens.
func (c *Context) apply(ctx context.Context, l Locale) {
	c.active = l
	if err := c.prefs.Save(ctx, l.String()); err != nil {
		slog.Default().WarnContext(ctx, "can't persist locale preference",
			slog.String("locale", l.String()),
			slog.String("err", err.Error()),
		)
	}
	c.present()
}

func (c *Context) present() {
	c.doc.SetDir(c.active.Dir())
	c.doc.SetLang(c.active.String())
}
