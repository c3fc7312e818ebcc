// Package preference persists the chosen locale between sessions.
package preference

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jekabolt/sheel/internal/i18n"
)

const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore keeps the preference in a browser cookie named after
// i18n.PreferenceKey. It is bound to a single request/response pair.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

// NewCookieStore returns a store reading from r and writing to w.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{r: r, w: w, secure: secure}
}

func (s *CookieStore) Load(context.Context) (string, error) {
	c, err := s.r.Cookie(i18n.PreferenceKey)
	if errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

func (s *CookieStore) Save(_ context.Context, value string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     i18n.PreferenceKey,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Expires:  time.Now().Add(cookieMaxAge),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
