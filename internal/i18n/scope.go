package i18n

import (
	"context"
	"errors"
)

type contextKey struct{}

// ErrNoLocaleContext means the locale was read outside of a session scope.
var ErrNoLocaleContext = errors.New("i18n: locale context used outside of a session scope")

// WithContext returns a copy of ctx carrying c.
func WithContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the session's locale context.
func FromContext(ctx context.Context) (*Context, error) {
	c, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || c == nil {
		return nil, ErrNoLocaleContext
	}
	return c, nil
}

// MustFromContext is FromContext for callers that run inside the locale
// middleware. Anything else is a wiring bug, so it panics.
func MustFromContext(ctx context.Context) *Context {
	c, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return c
}
