// Package dashboard is an owner's view over their listings.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jekabolt/sheel/internal/dependency"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
)

// Filter narrows the listings shown.
type Filter string

const (
	All      Filter = "all"
	Active   Filter = "active"
	Sold     Filter = "sold"
	Inactive Filter = "inactive"
)

// Filters returns filters in display order.
func Filters() []Filter {
	return []Filter{All, Active, Sold, Inactive}
}

// ParseFilter maps s to a filter. Anything unknown shows all listings.
func ParseFilter(s string) Filter {
	switch f := Filter(s); f {
	case Active, Sold, Inactive:
		return f
	default:
		return All
	}
}

func (f Filter) matches(l *entity.Listing) bool {
	if f == All {
		return true
	}
	return string(l.Status) == string(f)
}

// Stats are derived from the listings currently in the view.
type Stats struct {
	Total     int
	ByStatus  map[entity.ListingStatus]int
	Views     int
	Inquiries int
}

// Active is the number of active listings.
func (s Stats) Active() int {
	return s.ByStatus[entity.StatusActive]
}

// View holds one owner's listings for a single page render.
type View struct {
	ownerID string
	items   []entity.Listing
	repo    dependency.Repository
	files   dependency.FileStore
}

// New returns a view over items. files may be nil.
func New(ownerID string, items []entity.Listing, repo dependency.Repository, files dependency.FileStore) *View {
	return &View{
		ownerID: ownerID,
		items:   slices.Clone(items),
		repo:    repo,
		files:   files,
	}
}

// Load reads the owner's listings, newest first.
func Load(ctx context.Context, ownerID string, repo dependency.Repository, files dependency.FileStore) (*View, error) {
	items, err := repo.Listings().ListListings(ctx, entity.ListParams{
		Where:   entity.ListingWhere{OwnerID: ownerID},
		OrderBy: entity.ListingOrderBy{Column: entity.CreatedAt, Order: entity.Descending},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gerr.ErrLoadListings, err)
	}
	return New(ownerID, items, repo, files), nil
}

// Items returns every listing in the view.
func (v *View) Items() []entity.Listing {
	return slices.Clone(v.items)
}

// Stats computes totals over the current listings.
func (v *View) Stats() Stats {
	s := Stats{
		Total:    len(v.items),
		ByStatus: make(map[entity.ListingStatus]int, len(entity.ValidListingStatuses)),
	}
	for i := range v.items {
		s.ByStatus[v.items[i].Status]++
		s.Views += v.items[i].Views
		s.Inquiries += v.items[i].Inquiries
	}
	return s
}

// Filter returns the listings matching f without changing the view.
func (v *View) Filter(f Filter) []entity.Listing {
	out := make([]entity.Listing, 0, len(v.items))
	for i := range v.items {
		if f.matches(&v.items[i]) {
			out = append(out, v.items[i])
		}
	}
	return out
}

// Delete removes the listing from the view at once, then from the record
// store. If the store fails the listing is put back where it was and the
// error is returned. Deleting an id that is not in the view, or one the
// store no longer has, does nothing.
func (v *View) Delete(ctx context.Context, id string) error {
	i := slices.IndexFunc(v.items, func(l entity.Listing) bool { return l.ID == id })
	if i < 0 {
		return nil
	}
	removed := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)

	images, err := v.remove(ctx, id)
	if errors.Is(err, gerr.ErrListingNotFound) {
		slog.Default().DebugContext(ctx, "listing already deleted",
			slog.String("id", id),
			slog.String("owner_id", v.ownerID),
		)
		return nil
	}
	if err != nil {
		v.items = slices.Insert(v.items, i, removed)
		slog.Default().ErrorContext(ctx, "can't delete listing",
			slog.String("id", id),
			slog.String("owner_id", v.ownerID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%w: %w", gerr.ErrDeleteListing, err)
	}

	if v.files != nil && len(images) > 0 {
		if err := v.files.DeleteByURLs(ctx, images); err != nil {
			slog.Default().WarnContext(ctx, "can't delete listing images",
				slog.String("id", id),
				slog.String("err", err.Error()),
			)
		}
	}
	return nil
}

// remove deletes the stored listing in one transaction and returns the
// images it referenced.
func (v *View) remove(ctx context.Context, id string) ([]string, error) {
	var images []string
	err := v.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		l, err := rep.Listings().GetListingByID(ctx, id)
		if err != nil {
			return err
		}
		if l.OwnerID != v.ownerID {
			return gerr.ErrListingNotFound
		}
		if err := rep.Listings().DeleteListing(ctx, id, v.ownerID); err != nil {
			return err
		}
		images = l.Images
		return nil
	})
	return images, err
}

// Page is what the dashboard renders for one filter.
type Page struct {
	Filter Filter
	Stats  Stats
	Rows   []entity.Listing
	// Empty is set when no listing matches; EmptyKey and CTAKey are then shown
	// instead of the table.
	Empty    bool
	EmptyKey string
	CTAKey   string
}

// Page assembles the dashboard for f.
func (v *View) Page(f Filter) Page {
	rows := v.Filter(f)
	return Page{
		Filter:   f,
		Stats:    v.Stats(),
		Rows:     rows,
		Empty:    len(rows) == 0,
		EmptyKey: "dashboard.empty." + string(f),
		CTAKey:   "dashboard.empty.cta",
	}
}
