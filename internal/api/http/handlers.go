package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
	"github.com/jekabolt/sheel/internal/i18n"
	"github.com/jekabolt/sheel/internal/listing"
)

const featuredLimit = 8

type homeData struct {
	Listings []card
}

// home shows the newest active listings. A failing record store shows the
// empty state rather than an error page.
func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	lc := i18n.MustFromContext(r.Context())

	items, err := s.repo.Listings().ListListings(r.Context(), entity.ListParams{
		Where:   entity.ListingWhere{Status: entity.StatusActive},
		OrderBy: entity.ListingOrderBy{Column: entity.CreatedAt, Order: entity.Descending},
		Limit:   featuredLimit,
	})
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't load featured listings",
			slog.String("err", err.Error()),
		)
		items = nil
	}

	s.render(w, r, http.StatusOK, "home", homeData{Listings: newCards(items, lc)})
}

type detailData struct {
	Listing      card
	Features     []string
	Images       []string
	Address      string
	ContactName  string
	ContactPhone string
	ContactEmail string
}

func (s *Server) listingDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lc := i18n.MustFromContext(ctx)
	id := chi.URLParam(r, "id")

	l, err := s.repo.Listings().GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gerr.ErrListingNotFound) {
			s.fail(w, r, http.StatusNotFound, "error.listing_not_found")
			return
		}
		slog.Default().ErrorContext(ctx, "can't get listing",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		s.fail(w, r, http.StatusInternalServerError, "error.internal")
		return
	}

	if err := s.repo.Listings().IncrementViews(ctx, id); err != nil {
		slog.Default().WarnContext(ctx, "can't count listing view",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
	}

	images := []string(l.Images)
	if len(images) == 0 {
		images = []string{listing.DefaultImage(l.Category)}
	}
	address := l.Address
	if lc.Locale() == i18n.Arabic && l.AddressAr != "" {
		address = l.AddressAr
	}

	s.render(w, r, http.StatusOK, "detail", detailData{
		Listing:      newCard(l, lc),
		Features:     l.Features,
		Images:       images,
		Address:      address,
		ContactName:  l.ContactName,
		ContactPhone: l.ContactPhone,
		ContactEmail: l.ContactEmail,
	})
}
