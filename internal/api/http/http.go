package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/dependency"
	"github.com/jekabolt/sheel/internal/i18n"
	"github.com/jekabolt/sheel/internal/listing"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// RequestsPerMinute caps form posts per client IP. Zero disables the cap.
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	MaxUploadMB       int64         `mapstructure:"max_upload_mb"`
	Timeout           time.Duration `mapstructure:"timeout"`
	WhatsAppNumber    string        `mapstructure:"whatsapp_number"`
	SecureCookies     bool          `mapstructure:"secure_cookies"`
}

// OwnerPreferences returns the stored locale preference of a signed-in owner.
type OwnerPreferences interface {
	For(ownerID string) i18n.Preferences
}

// Server is the http server
type Server struct {
	hs        *http.Server
	c         *Config
	repo      dependency.Repository
	files     dependency.FileStore
	auth      *auth.Service
	submitter *listing.Submitter
	prefs     OwnerPreferences
	done      chan struct{}
}

// New creates a new server. prefs may be nil, the locale then lives in a
// cookie only.
func New(config *Config,
	repo dependency.Repository,
	files dependency.FileStore,
	authService *auth.Service,
	submitter *listing.Submitter,
	prefs OwnerPreferences,
) *Server {
	return &Server{
		c:         config,
		repo:      repo,
		files:     files,
		auth:      authService,
		submitter: submitter,
		prefs:     prefs,
		done:      make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	ln, err := net.Listen("tcp", listenerAddr)
	if err != nil {
		return fmt.Errorf("can't listen on %s: %w", listenerAddr, err)
	}

	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "sheel new listener",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}
