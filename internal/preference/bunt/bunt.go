// Package bunt keeps locale preferences of signed-in owners in a buntdb file
// so the choice follows the owner across browsers.
package bunt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jekabolt/sheel/internal/i18n"
	"github.com/tidwall/buntdb"
)

type Config struct {
	Path string `mapstructure:"path"`
}

type Store struct {
	db *buntdb.DB
}

// Open opens the database at path. ":memory:" keeps it in memory.
func Open(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open preferences db %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// New opens the database configured in c.
func (c *Config) New() (*Store, error) {
	path := c.Path
	if path == "" {
		path = ":memory:"
	}
	return Open(path)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// For returns the preference of a single owner.
func (s *Store) For(ownerID string) i18n.Preferences {
	return &ownerPreference{db: s.db, key: key(ownerID)}
}

func key(ownerID string) string {
	return ownerID + ":" + i18n.PreferenceKey
}

type ownerPreference struct {
	db  *buntdb.DB
	key string
}

func (p *ownerPreference) Load(context.Context) (string, error) {
	var v string
	err := p.db.View(func(tx *buntdb.Tx) error {
		var err error
		v, err = tx.Get(p.key)
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("can't get %s: %w", p.key, err)
	}
	return v, nil
}

func (p *ownerPreference) Save(_ context.Context, value string) error {
	err := p.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(p.key, value, nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("can't set %s: %w", p.key, err)
	}
	return nil
}
