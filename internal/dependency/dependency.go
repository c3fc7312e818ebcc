package dependency

import (
	"context"
	"database/sql"

	"github.com/jekabolt/sheel/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Listings interface {
		// AddListing inserts a new listing record.
		AddListing(ctx context.Context, l *entity.Listing) error
		// ListListings returns listings matching where, ordered and limited.
		ListListings(ctx context.Context, p entity.ListParams) ([]entity.Listing, error)
		// GetListingByID returns a listing by its id.
		GetListingByID(ctx context.Context, id string) (*entity.Listing, error)
		// DeleteListing deletes a listing owned by ownerID.
		DeleteListing(ctx context.Context, id string, ownerID string) error
		// IncrementViews adds one view to a listing.
		IncrementViews(ctx context.Context, id string) error
	}

	Owners interface {
		AddOwner(ctx context.Context, o *entity.Owner) error
		GetOwnerByEmail(ctx context.Context, email string) (*entity.Owner, error)
	}

	Repository interface {
		ContextStore
		Listings() Listings
		Owners() Owners
		Ping(ctx context.Context) error
		Close()
	}

	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	FileStore interface {
		// Upload stores data at path and returns its public URL.
		Upload(ctx context.Context, data []byte, path string, opts entity.UploadOptions) (string, error)
		// DeleteByURLs removes objects previously returned by Upload.
		DeleteByURLs(ctx context.Context, urls []string) error
	}
)
