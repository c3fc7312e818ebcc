package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jekabolt/sheel/internal/dependency"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
)

type ownersStore struct {
	*MYSQLStore
}

// Owners returns an object implementing owners interface
func (ms *MYSQLStore) Owners() dependency.Owners {
	return &ownersStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddOwner(ctx context.Context, o *entity.Owner) error {
	query := `
	INSERT INTO owners (id, email, password_hash, created_at)
	VALUES (:id, :email, :passwordHash, :createdAt)`

	_, err := ExecNamed(ctx, ms.db, query, map[string]any{
		"id":           o.ID,
		"email":        strings.ToLower(o.Email),
		"passwordHash": o.PasswordHash,
		"createdAt":    o.CreatedAt,
	})
	if ms.IsErrUniqueViolation(err) {
		return gerr.ErrOwnerExists
	}
	if err != nil {
		return fmt.Errorf("can't insert owner: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetOwnerByEmail(ctx context.Context, email string) (*entity.Owner, error) {
	query := "SELECT id, email, password_hash, created_at FROM owners WHERE email = :email"
	o, err := QueryNamedOne[entity.Owner](ctx, ms.db, query, map[string]any{
		"email": strings.ToLower(email),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("can't get owner: %w", err)
	}
	return &o, nil
}
