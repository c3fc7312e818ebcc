package preference

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jekabolt/sheel/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticStore struct {
	value string
	err   error
	saved []string
}

func (s *staticStore) Load(context.Context) (string, error) { return s.value, s.err }

func (s *staticStore) Save(_ context.Context, v string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, v)
	s.value = v
	return nil
}

func TestCookieStore(t *testing.T) {
	ctx := context.Background()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s := NewCookieStore(w, r, false)

	v, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Save(ctx, "ar"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, i18n.PreferenceKey, c.Name)
	assert.Equal(t, "ar", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 365*24*60*60, c.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(c)
	v, err = NewCookieStore(httptest.NewRecorder(), next, false).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ar", v)
}

func TestChainLoad(t *testing.T) {
	ctx := context.Background()
	broken := &staticStore{err: errors.New("unavailable")}

	v, err := NewChain(broken, &staticStore{}, &staticStore{value: "ar"}).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ar", v)

	v, err = NewChain(&staticStore{value: "en"}, &staticStore{value: "ar"}).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", v)

	v, err = NewChain(broken, &staticStore{}).Load(ctx)
	assert.Error(t, err)
	assert.Empty(t, v)

	v, err = NewChain(nil).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestChainSave(t *testing.T) {
	ctx := context.Background()
	first := &staticStore{}
	broken := &staticStore{err: errors.New("quota exceeded")}
	last := &staticStore{}

	err := NewChain(first, broken, last).Save(ctx, "ar")
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Equal(t, []string{"ar"}, first.saved)
	assert.Equal(t, []string{"ar"}, last.saved)
}

func TestChainDrivesLocaleContext(t *testing.T) {
	ctx := context.Background()
	owner := &staticStore{}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	prefs := NewChain(owner, NewCookieStore(w, r, false))

	c := i18n.New(ctx, i18n.Translations, prefs, nil)
	require.NoError(t, c.SetLocale(ctx, "ar"))

	assert.Equal(t, "ar", owner.value)
	require.Len(t, w.Result().Cookies(), 1)

	again := i18n.New(ctx, i18n.Translations, NewChain(owner), nil)
	assert.Equal(t, i18n.Arabic, again.Locale())
}
