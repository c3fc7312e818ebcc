package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	gerr "github.com/jekabolt/sheel/internal/errors"
)

type loginData struct {
	Email    string
	Next     string
	ErrorKey string
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", loginData{
		Next: localRedirect(r.URL.Query().Get("next")),
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := loginData{
		Email: r.PostFormValue("email"),
		Next:  localRedirect(r.PostFormValue("next")),
	}

	token, id, err := s.auth.Login(ctx, data.Email, r.PostFormValue("password"))
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, gerr.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
			slog.Default().ErrorContext(ctx, "can't sign in",
				slog.String("err", err.Error()),
			)
		}
		data.ErrorKey = gerr.Key(err, "error.internal")
		s.render(w, r, status, "login", data)
		return
	}

	s.auth.SetSession(w, token)
	slog.Default().InfoContext(ctx, "owner signed in", slog.String("owner_id", id.ID))

	target := data.Next
	if target == "/" {
		target = "/dashboard"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.auth.ClearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
