package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/i18n"
	"github.com/jekabolt/sheel/internal/preference"
)

type attributesKey struct{}

// withLocale opens the locale context of the request. A signed-in owner's
// stored preference is read before the cookie and both are written on a
// switch.
func (s *Server) withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		stores := make([]i18n.Preferences, 0, 2)
		if st := auth.StateFromContext(ctx); st.User != nil && s.prefs != nil {
			stores = append(stores, s.prefs.For(st.User.ID))
		}
		stores = append(stores, preference.NewCookieStore(w, r, s.c.SecureCookies))

		attrs := &i18n.Attributes{}
		lc := i18n.New(ctx, i18n.Translations, preference.NewChain(stores...), attrs)

		ctx = i18n.WithContext(ctx, lc)
		ctx = context.WithValue(ctx, attributesKey{}, attrs)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func attributesFromContext(ctx context.Context) *i18n.Attributes {
	if a, ok := ctx.Value(attributesKey{}).(*i18n.Attributes); ok {
		return a
	}
	lc := i18n.MustFromContext(ctx)
	return &i18n.Attributes{Dir: lc.Dir(), Lang: lc.Locale().String()}
}

func (s *Server) setLanguage(w http.ResponseWriter, r *http.Request) {
	lc := i18n.MustFromContext(r.Context())
	target := localRedirect(r.PostFormValue("redirect"))

	if err := lc.SetLocale(r.Context(), r.PostFormValue("locale")); err != nil {
		s.setFlash(w, flashError, "error.unsupported_language")
	} else {
		s.setFlash(w, flashSuccess, "success.language_changed")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// localRedirect keeps redirects on this site.
func localRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return target
}

const flashCookie = "flash"

type flashKind string

const (
	flashSuccess flashKind = "success"
	flashError   flashKind = "error"
)

// flash is a one-shot message shown on the page after a redirect.
type flash struct {
	Kind flashKind
	Key  string
}

func (s *Server) setFlash(w http.ResponseWriter, kind flashKind, key string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    string(kind) + ":" + key,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.c.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash and clears it.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) *flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.c.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	kind, key, ok := strings.Cut(c.Value, ":")
	if !ok || key == "" {
		return nil
	}
	switch flashKind(kind) {
	case flashSuccess, flashError:
		return &flash{Kind: flashKind(kind), Key: key}
	default:
		return nil
	}
}
