package httpapi

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/dashboard"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
	"github.com/jekabolt/sheel/internal/i18n"
)

type filterTab struct {
	Filter   dashboard.Filter
	Key      string
	Selected bool
}

type dashboardData struct {
	Tabs     []filterTab
	Filter   dashboard.Filter
	Stats    dashboard.Stats
	Rows     []card
	Empty    bool
	EmptyKey string
	CTAKey   string
}

// filterKey is the label of a dashboard filter tab.
func filterKey(f dashboard.Filter) string {
	if f == dashboard.All {
		return "dashboard.filter.all"
	}
	return "status." + string(f)
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := auth.StateFromContext(ctx)
	if st.User == nil {
		s.render(w, r, http.StatusUnauthorized, "signin_required", signInData{
			Key:  "auth.required.dashboard",
			Next: "/dashboard",
		})
		return
	}

	v, err := dashboard.Load(ctx, st.User.ID, s.repo, s.files)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load dashboard",
			slog.String("owner_id", st.User.ID),
			slog.String("err", err.Error()),
		)
		s.fail(w, r, http.StatusInternalServerError, gerr.Key(err, "error.load_listings"))
		return
	}

	p := v.Page(dashboard.ParseFilter(r.URL.Query().Get("status")))
	tabs := make([]filterTab, 0, len(dashboard.Filters()))
	for _, f := range dashboard.Filters() {
		tabs = append(tabs, filterTab{Filter: f, Key: filterKey(f), Selected: f == p.Filter})
	}
	s.render(w, r, http.StatusOK, "dashboard", dashboardData{
		Tabs:     tabs,
		Filter:   p.Filter,
		Stats:    p.Stats,
		Rows:     newCards(p.Rows, i18n.MustFromContext(ctx)),
		Empty:    p.Empty,
		EmptyKey: p.EmptyKey,
		CTAKey:   p.CTAKey,
	})
}

func (s *Server) deleteListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := auth.StateFromContext(ctx)
	if st.User == nil {
		s.render(w, r, http.StatusUnauthorized, "signin_required", signInData{
			Key:  "auth.required.dashboard",
			Next: "/dashboard",
		})
		return
	}

	target := "/dashboard"
	if f := dashboard.ParseFilter(r.PostFormValue("status")); f != dashboard.All {
		target += "?status=" + url.QueryEscape(string(f))
	}

	id := chi.URLParam(r, "id")
	v, err := dashboard.Load(ctx, st.User.ID, s.repo, s.files)
	if err != nil {
		s.setFlash(w, flashError, gerr.Key(err, "error.load_listings"))
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	// already gone, e.g. a repeated submit
	if !slices.ContainsFunc(v.Items(), func(l entity.Listing) bool { return l.ID == id }) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if err := v.Delete(ctx, id); err != nil {
		s.setFlash(w, flashError, gerr.Key(err, "error.delete_listing"))
	} else {
		s.setFlash(w, flashSuccess, "success.listing_deleted")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
