package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"github.com/jekabolt/sheel/log"
)

const defaultTimeout = 60 * time.Second

// Handler returns the storefront routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(log.RequestLogger(slog.Default()))
	r.Use(middleware.Recoverer)

	timeout := s.c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	r.Use(middleware.Timeout(timeout))

	r.Use(s.auth.Authenticate)
	r.Use(s.withLocale)

	r.Get("/healthz", s.healthz)

	r.Get("/", s.home)
	r.Get("/listings/new", s.newListing)
	r.Get("/listings/{id}", s.listingDetail)
	r.Get("/dashboard", s.dashboard)
	r.Get("/auth/login", s.loginForm)

	r.Group(func(r chi.Router) {
		r.Use(s.limitPosts)

		r.Post("/language", s.setLanguage)
		r.Post("/listings", s.createListing)
		r.Post("/dashboard/listings/{id}/delete", s.deleteListing)
		r.Post("/auth/login", s.login)
		r.Post("/auth/logout", s.logout)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/i18n", s.apiMessages)
		r.Get("/listings", s.apiListings)
		r.Get("/listings/{id}", s.apiListing)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, http.StatusNotFound, "error.not_found")
	})

	return r
}

// limitPosts caps state-changing requests per client IP.
func (s *Server) limitPosts(next http.Handler) http.Handler {
	if s.c.RequestsPerMinute <= 0 {
		return next
	}
	return httprate.Limit(
		s.c.RequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			s.fail(w, r, http.StatusTooManyRequests, "error.too_many_requests")
		}),
	)(next)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "health check failed",
			slog.String("err", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
