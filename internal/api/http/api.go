package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
	"github.com/jekabolt/sheel/internal/i18n"
)

const maxAPILimit = 50

func (s *Server) apiMessages(w http.ResponseWriter, r *http.Request) {
	lc := i18n.MustFromContext(r.Context())
	render.Render(w, r, &MessagesResponse{
		Locale:   lc.Locale(),
		Dir:      lc.Dir(),
		Messages: lc.Messages(),
	})
}

// apiListings lists active listings, newest first. status and limit
// narrow the result.
func (s *Server) apiListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lc := i18n.MustFromContext(ctx)

	p := entity.ListParams{
		Where:   entity.ListingWhere{Status: entity.StatusActive},
		OrderBy: entity.ListingOrderBy{Column: entity.CreatedAt, Order: entity.Descending},
		Limit:   maxAPILimit,
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := entity.ListingStatus(raw)
		if !entity.IsValidListingStatus(st) {
			render.Render(w, r, ErrInvalidRequest(r, "error.invalid_option", fmt.Errorf("bad status %q", raw)))
			return
		}
		p.Where.Status = st
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			render.Render(w, r, ErrInvalidRequest(r, "error.invalid_option", fmt.Errorf("bad limit %q", raw)))
			return
		}
		p.Limit = min(n, maxAPILimit)
	}

	items, err := s.repo.Listings().ListListings(ctx, p)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list listings",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(r, err))
		return
	}
	render.RenderList(w, r, NewListingListResponse(items, lc))
}

func (s *Server) apiListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	l, err := s.repo.Listings().GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gerr.ErrListingNotFound) {
			render.Render(w, r, ErrNotFound(r, "error.listing_not_found"))
			return
		}
		slog.Default().ErrorContext(ctx, "can't get listing",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(r, err))
		return
	}
	render.Render(w, r, NewListingResponse(l, i18n.MustFromContext(ctx)))
}
