package preference

import (
	"context"
	"errors"

	"github.com/jekabolt/sheel/internal/i18n"
)

// Chain combines stores, most specific first.
type Chain []i18n.Preferences

// NewChain drops nil stores.
func NewChain(stores ...i18n.Preferences) Chain {
	c := make(Chain, 0, len(stores))
	for _, s := range stores {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

// Load returns the first non-empty value. A failing store does not stop
// the lookup; its error is returned only if no store had a value.
func (c Chain) Load(ctx context.Context) (string, error) {
	var errs []error
	for _, s := range c {
		v, err := s.Load(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v != "" {
			return v, nil
		}
	}
	return "", errors.Join(errs...)
}

// Save writes value to every store.
func (c Chain) Save(ctx context.Context, value string) error {
	var errs []error
	for _, s := range c {
		if err := s.Save(ctx, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
