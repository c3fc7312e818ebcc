// Package auth resolves who is signed in and signs owners in and up.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/jekabolt/sheel/internal/auth/jwt"
	"github.com/jekabolt/sheel/internal/dependency"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// CookieName is the session cookie holding the token.
const CookieName = "jwt"

// Config contains the configuration for the auth service.
type Config struct {
	JWTSecret    string `mapstructure:"jwt_secret"`
	JWTTTL       string `mapstructure:"jwt_ttl"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

// Identity is a signed-in owner.
type Identity struct {
	ID    string
	Email string
}

// State is the auth state seen by a page. User is nil when nobody is
// signed in. IsLoading is true while the state is still being resolved.
type State struct {
	User      *Identity
	IsLoading bool
}

// Service signs owners in and resolves sessions.
type Service struct {
	owners  dependency.Owners
	jwtAuth *jwtauth.JWTAuth
	ttl     time.Duration
	secure  bool
	now     func() time.Time
}

// New creates a new auth service.
func New(c *Config, owners dependency.Owners) (*Service, error) {
	if c.JWTSecret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("bad jwt ttl %q: %w", c.JWTTTL, err)
	}
	return &Service{
		owners:  owners,
		jwtAuth: jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		ttl:     ttl,
		secure:  c.CookieSecure,
		now:     time.Now,
	}, nil
}

func validateCredentials(email, password string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.EmailFormat),
		"password": validation.Validate(password, validation.Required, validation.Length(8, 72)),
	}.Filter()
}

// Register creates an owner account.
func (s *Service) Register(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("can't hash password: %w", err)
	}

	o := &entity.Owner{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.owners.AddOwner(ctx, o); err != nil {
		return nil, err
	}
	return &Identity{ID: o.ID, Email: o.Email}, nil
}

// Login checks credentials and returns a session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	o, err := s.owners.GetOwnerByEmail(ctx, email)
	if errors.Is(err, gerr.ErrInvalidCredentials) {
		return "", nil, gerr.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("can't get owner: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		return "", nil, gerr.ErrInvalidCredentials
	}

	token, err := jwt.NewTokenWithClaims(s.jwtAuth, s.ttl, jwt.Claims{Subject: o.ID, Email: o.Email})
	if err != nil {
		return "", nil, fmt.Errorf("can't issue token: %w", err)
	}
	return token, &Identity{ID: o.ID, Email: o.Email}, nil
}

// SetSession stores token in the session cookie.
func (s *Service) SetSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession removes the session cookie.
func (s *Service) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticate resolves the auth state of every request from the session
// cookie or a bearer token. It never rejects a request: pages decide what
// an anonymous visitor sees.
func (s *Service) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := State{}
		token := jwtauth.TokenFromCookie(r)
		if token == "" {
			token = jwtauth.TokenFromHeader(r)
		}
		if token != "" {
			c, err := jwt.VerifyToken(s.jwtAuth, token)
			if err != nil {
				slog.Default().DebugContext(r.Context(), "invalid session token",
					slog.String("err", err.Error()),
				)
			} else {
				state.User = &Identity{ID: c.Subject, Email: c.Email}
			}
		}
		next.ServeHTTP(w, r.WithContext(WithState(r.Context(), state)))
	})
}

type stateKey struct{}

// WithState returns a copy of ctx carrying st.
func WithState(ctx context.Context, st State) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

// StateFromContext returns the auth state resolved for the request.
// Outside Authenticate it reports a state that is still loading.
func StateFromContext(ctx context.Context) State {
	st, ok := ctx.Value(stateKey{}).(State)
	if !ok {
		return State{IsLoading: true}
	}
	return st
}
