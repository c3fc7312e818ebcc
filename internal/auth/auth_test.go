package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jekabolt/sheel/internal/dependency/mocks"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.Owners) {
	owners := mocks.NewOwners(t)
	s, err := New(&Config{JWTSecret: "secret", JWTTTL: "1h"}, owners)
	require.NoError(t, err)
	return s, owners
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(&Config{JWTTTL: "1h"}, nil)
	assert.Error(t, err)
	_, err = New(&Config{JWTSecret: "secret", JWTTTL: "forever"}, nil)
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	s, owners := newTestService(t)
	ctx := context.Background()

	var stored *entity.Owner
	owners.EXPECT().AddOwner(ctx, mock.Anything).
		Run(func(_ context.Context, o *entity.Owner) { stored = o }).
		Return(nil).Once()

	id, err := s.Register(ctx, " Owner@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", id.Email)
	require.NotNil(t, stored)
	assert.Equal(t, id.ID, stored.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegisterValidates(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "not-an-email", "password123")
	assert.Error(t, err)
	_, err = s.Register(ctx, "owner@example.com", "short")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	s, owners := newTestService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	owners.EXPECT().GetOwnerByEmail(ctx, "owner@example.com").Return(&entity.Owner{
		ID:           "owner-1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
	}, nil)
	owners.EXPECT().GetOwnerByEmail(ctx, "nobody@example.com").Return(nil, gerr.ErrInvalidCredentials)

	token, id, err := s.Login(ctx, "Owner@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "owner-1", id.ID)

	_, _, err = s.Login(ctx, "owner@example.com", "wrong-password")
	assert.ErrorIs(t, err, gerr.ErrInvalidCredentials)

	_, _, err = s.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, gerr.ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	s, owners := newTestService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	owners.EXPECT().GetOwnerByEmail(ctx, "owner@example.com").Return(&entity.Owner{
		ID:           "owner-1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
	}, nil)
	token, _, err := s.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	var got State
	h := s.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = StateFromContext(r.Context())
	}))

	// cookie session
	w := httptest.NewRecorder()
	s.SetSession(w, token)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(w.Result().Cookies()[0])
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.NotNil(t, got.User)
	assert.Equal(t, "owner-1", got.User.ID)
	assert.Equal(t, "owner@example.com", got.User.Email)
	assert.False(t, got.IsLoading)

	// bearer token
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.NotNil(t, got.User)

	// anonymous
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Nil(t, got.User)
	assert.False(t, got.IsLoading)

	// garbage token
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Nil(t, got.User)
}

func TestStateOutsideMiddleware(t *testing.T) {
	st := StateFromContext(context.Background())
	assert.Nil(t, st.User)
	assert.True(t, st.IsLoading)
}

func TestClearSession(t *testing.T) {
	s, _ := newTestService(t)
	w := httptest.NewRecorder()
	s.ClearSession(w)
	c := w.Result().Cookies()
	require.Len(t, c, 1)
	assert.Equal(t, CookieName, c[0].Name)
	assert.Less(t, c[0].MaxAge, 0)
}
