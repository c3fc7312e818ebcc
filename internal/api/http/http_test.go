package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/auth/jwt"
	"github.com/jekabolt/sheel/internal/dependency"
	"github.com/jekabolt/sheel/internal/dependency/mocks"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
	"github.com/jekabolt/sheel/internal/i18n"
	"github.com/jekabolt/sheel/internal/listing"
	"github.com/jekabolt/sheel/internal/preference/bunt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "secret"
	ownerID    = "owner-1"
)

type testRepo struct {
	listings *mocks.Listings
	owners   *mocks.Owners
	pingErr  error
}

func (r *testRepo) Tx(ctx context.Context, fn func(ctx context.Context, store dependency.Repository) error) error {
	return fn(ctx, r)
}

func (r *testRepo) Listings() dependency.Listings { return r.listings }

func (r *testRepo) Owners() dependency.Owners { return r.owners }

func (r *testRepo) Ping(context.Context) error { return r.pingErr }

func (r *testRepo) Close() {}

type testEnv struct {
	handler http.Handler
	repo    *testRepo
	files   *mocks.FileStore
	prefs   *bunt.Store
}

func newTestEnv(t *testing.T, c *Config) *testEnv {
	t.Helper()
	repo := &testRepo{listings: mocks.NewListings(t), owners: mocks.NewOwners(t)}
	files := mocks.NewFileStore(t)

	as, err := auth.New(&auth.Config{JWTSecret: testSecret, JWTTTL: "1h"}, repo.owners)
	require.NoError(t, err)

	sub := listing.NewSubmitter(&listing.Config{}, repo.listings, files)
	t.Cleanup(sub.Close)

	prefs, err := bunt.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { prefs.Close() })

	if c == nil {
		c = &Config{WhatsAppNumber: "+966 55 271 4304"}
	}
	s := New(c, repo, files, as, sub, prefs)
	return &testEnv{handler: s.Handler(), repo: repo, files: files, prefs: prefs}
}

func (e *testEnv) do(t *testing.T, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, r)
	return w
}

func signIn(t *testing.T, r *http.Request) *http.Request {
	t.Helper()
	token, err := jwt.NewTokenWithClaims(jwtauth.New("HS256", []byte(testSecret), nil), time.Hour, jwt.Claims{
		Subject: ownerID,
		Email:   "owner@example.com",
	})
	require.NoError(t, err)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	return r
}

func withLocaleCookie(r *http.Request, l string) *http.Request {
	r.AddCookie(&http.Cookie{Name: i18n.PreferenceKey, Value: l})
	return r
}

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func postForm(path string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func sampleListing(id string) entity.Listing {
	bedrooms := 3
	return entity.Listing{
		ID:      id,
		OwnerID: ownerID,
		ListingBody: entity.ListingBody{
			Title:           "Villa in Riyadh",
			TitleAr:         "فيلا في الرياض",
			Price:           decimal.NewFromInt(450000),
			TransactionType: entity.Sale,
			Category:        entity.House,
			Bedrooms:        &bedrooms,
			City:            "Riyadh",
			CityAr:          "الرياض",
			Features:        entity.StringList{"feature.pool"},
			Images:          entity.StringList{"https://cdn.example.com/a.jpg"},
		},
		Status:    entity.StatusActive,
		Views:     12,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHomeEnglishByDefault(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, entity.ListParams{
		Where:   entity.ListingWhere{Status: entity.StatusActive},
		OrderBy: entity.ListingOrderBy{Column: entity.CreatedAt, Order: entity.Descending},
		Limit:   featuredLimit,
	}).Return([]entity.Listing{sampleListing("l1")}, nil).Once()

	w := e.do(t, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `lang="en"`)
	assert.Contains(t, body, `dir="ltr"`)
	assert.Contains(t, body, "Villa in Riyadh")
	assert.Contains(t, body, "SAR 450,000")
	assert.Contains(t, body, "https://wa.me/966552714304?text=")
}

func TestHomeArabicFromCookie(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).
		Return([]entity.Listing{sampleListing("l1")}, nil).Once()

	w := e.do(t, withLocaleCookie(httptest.NewRequest(http.MethodGet, "/", nil), "ar"))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `lang="ar"`)
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "فيلا في الرياض")
	assert.Contains(t, body, "الرياض")
}

func TestHomeShowsEmptyStateOnStoreFailure(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	w := e.do(t, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No Properties Available")
}

func TestSetLanguage(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, postForm("/language", url.Values{"locale": {"ar"}, "redirect": {"/dashboard"}}))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	c := responseCookie(w, i18n.PreferenceKey)
	require.NotNil(t, c)
	assert.Equal(t, "ar", c.Value)
}

func TestSetLanguageRejectsUnsupported(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, postForm("/language", url.Values{"locale": {"fr"}, "redirect": {"https://evil.example.com"}}))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Nil(t, responseCookie(w, i18n.PreferenceKey))
	f := responseCookie(w, flashCookie)
	require.NotNil(t, f)
	assert.Equal(t, "error:error.unsupported_language", f.Value)
}

func TestSetLanguagePersistsForSignedInOwner(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, signIn(t, postForm("/language", url.Values{"locale": {"ar"}})))
	require.Equal(t, http.StatusSeeOther, w.Code)

	v, err := e.prefs.For(ownerID).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ar", v)

	// A new browser without the cookie still gets the owner's locale.
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).Return(nil, nil).Once()
	w = e.do(t, signIn(t, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Contains(t, w.Body.String(), `dir="rtl"`)
}

func TestFlashIsShownOnce(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).Return(nil, nil).Once()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: flashCookie, Value: "success:success.listing_created"})
	w := e.do(t, r)

	assert.Contains(t, w.Body.String(), "Property listed successfully!")
	c := responseCookie(w, flashCookie)
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)
}

func TestNewListingRequiresSignIn(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, httptest.NewRequest(http.MethodGet, "/listings/new", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Sign In Required")
	assert.Contains(t, w.Body.String(), "Please sign in to create a property listing")
}

func TestNewListingForm(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, signIn(t, httptest.NewRequest(http.MethodGet, "/listings/new", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Create New Listing")
	assert.Contains(t, body, `value="sale" checked`)
	assert.Contains(t, body, "Walk-in Closet")
}

func listingForm(t *testing.T, fields url.Values, images map[string][]byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	for name, data := range images {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/listings", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func validFields() url.Values {
	return url.Values{
		"title":           {"Villa in Riyadh"},
		"price":           {"450,000"},
		"transactionType": {"sale"},
		"category":        {"house"},
		"bedrooms":        {"3"},
		"city":            {"Riyadh"},
		"features":        {"feature.pool", "feature.garden", "feature.unknown"},
	}
}

func TestCreateListing(t *testing.T) {
	e := newTestEnv(t, nil)

	e.files.EXPECT().Upload(mock.Anything, []byte("jpeg"), mock.Anything, mock.Anything).
		Return("https://cdn.example.com/properties/owner-1/front.jpg", nil).Once()

	var stored *entity.Listing
	e.repo.listings.EXPECT().AddListing(mock.Anything, mock.Anything).
		Run(func(_ context.Context, l *entity.Listing) { stored = l }).
		Return(nil).Once()

	w := e.do(t, signIn(t, listingForm(t, validFields(), map[string][]byte{"front.jpg": []byte("jpeg")})))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	f := responseCookie(w, flashCookie)
	require.NotNil(t, f)
	assert.Equal(t, "success:success.listing_created", f.Value)

	require.NotNil(t, stored)
	assert.Equal(t, ownerID, stored.OwnerID)
	assert.Equal(t, "Villa in Riyadh", stored.Title)
	assert.True(t, decimal.NewFromInt(450000).Equal(stored.Price))
	assert.Equal(t, entity.StringList{"feature.pool", "feature.garden"}, stored.Features)
	assert.Equal(t, entity.StringList{"https://cdn.example.com/properties/owner-1/front.jpg"}, stored.Images)
}

func TestCreateListingInvalid(t *testing.T) {
	e := newTestEnv(t, nil)
	fields := validFields()
	fields.Set("title", "   ")

	w := e.do(t, signIn(t, listingForm(t, fields, nil)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Please fill in all required fields")
	assert.Contains(t, body, `value="450,000"`)
}

func TestCreateListingTooManyImages(t *testing.T) {
	e := newTestEnv(t, nil)
	images := make(map[string][]byte, listing.MaxImages+1)
	for i := 0; i <= listing.MaxImages; i++ {
		images[string(rune('a'+i))+".jpg"] = []byte("jpeg")
	}

	w := e.do(t, signIn(t, listingForm(t, validFields(), images)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "You can upload a maximum of 10 images")
}

func TestCreateListingStoreFailure(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().AddListing(mock.Anything, mock.Anything).
		Return(errors.New("db down")).Once()

	w := e.do(t, signIn(t, listingForm(t, validFields(), nil)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error creating listing")
	assert.Contains(t, w.Body.String(), `value="Villa in Riyadh"`)
}

func TestCreateListingRequiresSignIn(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, listingForm(t, validFields(), nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListingDetail(t *testing.T) {
	e := newTestEnv(t, nil)
	l := sampleListing("l1")
	e.repo.listings.EXPECT().GetListingByID(mock.Anything, "l1").Return(&l, nil).Once()
	e.repo.listings.EXPECT().IncrementViews(mock.Anything, "l1").Return(nil).Once()

	w := e.do(t, httptest.NewRequest(http.MethodGet, "/listings/l1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Villa in Riyadh")
	assert.Contains(t, w.Body.String(), "Pool")
}

func TestListingDetailNotFound(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().GetListingByID(mock.Anything, "missing").
		Return(nil, gerr.ErrListingNotFound).Once()

	w := e.do(t, httptest.NewRequest(http.MethodGet, "/listings/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Listing not found")
}

func TestDashboardRequiresSignIn(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please sign in to manage your listings")
}

func ownerListings() []entity.Listing {
	sold := sampleListing("l2")
	sold.Title = "Sold flat"
	sold.Status = entity.StatusSold
	return []entity.Listing{sampleListing("l1"), sold}
}

func TestDashboard(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, entity.ListParams{
		Where:   entity.ListingWhere{OwnerID: ownerID},
		OrderBy: entity.ListingOrderBy{Column: entity.CreatedAt, Order: entity.Descending},
	}).Return(ownerListings(), nil).Once()

	w := e.do(t, signIn(t, httptest.NewRequest(http.MethodGet, "/dashboard?status=sold", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Sold flat")
	assert.NotContains(t, body, "Villa in Riyadh")
}

func TestDashboardEmptyFilter(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).
		Return(ownerListings(), nil).Once()

	w := e.do(t, signIn(t, httptest.NewRequest(http.MethodGet, "/dashboard?status=inactive", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You have no inactive listings.")
	assert.Contains(t, w.Body.String(), "Create your first listing")
}

func TestDeleteListing(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).
		Return(ownerListings(), nil).Once()
	l1 := sampleListing("l1")
	e.repo.listings.EXPECT().GetListingByID(mock.Anything, "l1").Return(&l1, nil).Once()
	e.repo.listings.EXPECT().DeleteListing(mock.Anything, "l1", ownerID).Return(nil).Once()
	e.files.EXPECT().DeleteByURLs(mock.Anything, []string{"https://cdn.example.com/a.jpg"}).Return(nil).Once()

	w := e.do(t, signIn(t, postForm("/dashboard/listings/l1/delete", url.Values{"status": {"active"}})))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard?status=active", w.Header().Get("Location"))
	f := responseCookie(w, flashCookie)
	require.NotNil(t, f)
	assert.Equal(t, "success:success.listing_deleted", f.Value)
}

func TestDeleteListingFailure(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).
		Return(ownerListings(), nil).Once()
	l1 := sampleListing("l1")
	e.repo.listings.EXPECT().GetListingByID(mock.Anything, "l1").Return(&l1, nil).Once()
	e.repo.listings.EXPECT().DeleteListing(mock.Anything, "l1", ownerID).
		Return(errors.New("db down")).Once()

	w := e.do(t, signIn(t, postForm("/dashboard/listings/l1/delete", nil)))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	f := responseCookie(w, flashCookie)
	require.NotNil(t, f)
	assert.Equal(t, "error:error.delete_listing", f.Value)
}

func TestDeleteListingAlreadyGone(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).
		Return(ownerListings(), nil).Once()

	w := e.do(t, signIn(t, postForm("/dashboard/listings/other/delete", url.Values{"status": {"sold"}})))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard?status=sold", w.Header().Get("Location"))
	assert.Nil(t, responseCookie(w, flashCookie), "a repeated delete is not an error")
}

func TestDeleteListingRemovedMeanwhile(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, mock.Anything).
		Return(ownerListings(), nil).Once()
	e.repo.listings.EXPECT().GetListingByID(mock.Anything, "l1").
		Return(nil, gerr.ErrListingNotFound).Once()

	w := e.do(t, signIn(t, postForm("/dashboard/listings/l1/delete", nil)))

	require.Equal(t, http.StatusSeeOther, w.Code)
	f := responseCookie(w, flashCookie)
	require.NotNil(t, f)
	assert.Equal(t, "success:success.listing_deleted", f.Value)
}

func TestLogin(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.owners.EXPECT().GetOwnerByEmail(mock.Anything, "owner@example.com").
		Return(nil, gerr.ErrInvalidCredentials).Once()

	w := e.do(t, postForm("/auth/login", url.Values{"email": {"owner@example.com"}, "password": {"password123"}}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	assert.Nil(t, responseCookie(w, auth.CookieName))
}

func TestLogout(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, signIn(t, postForm("/auth/logout", nil)))

	require.Equal(t, http.StatusSeeOther, w.Code)
	c := responseCookie(w, auth.CookieName)
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)
}

func TestAPIMessages(t *testing.T) {
	e := newTestEnv(t, nil)

	w := e.do(t, withLocaleCookie(httptest.NewRequest(http.MethodGet, "/api/i18n", nil), "ar"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp MessagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, i18n.Arabic, resp.Locale)
	assert.Equal(t, i18n.RightToLeft, resp.Dir)
	assert.Equal(t, "الرئيسية", resp.Messages["nav.home"])
}

func TestAPIListings(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().ListListings(mock.Anything, entity.ListParams{
		Where:   entity.ListingWhere{Status: entity.StatusSold},
		OrderBy: entity.ListingOrderBy{Column: entity.CreatedAt, Order: entity.Descending},
		Limit:   2,
	}).Return([]entity.Listing{sampleListing("l1")}, nil).Once()

	w := e.do(t, httptest.NewRequest(http.MethodGet, "/api/listings?status=sold&limit=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "l1", resp[0].ID)
	assert.Equal(t, "450000", resp[0].Price)
	assert.Equal(t, "SAR 450,000", resp[0].FormattedPrice)
	assert.Equal(t, "Riyadh", resp[0].Location)
}

func TestAPIListingsRejectsBadQuery(t *testing.T) {
	e := newTestEnv(t, nil)

	for _, q := range []string{"status=lost", "limit=-1", "limit=many"} {
		w := e.do(t, httptest.NewRequest(http.MethodGet, "/api/listings?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestAPIListingNotFound(t *testing.T) {
	e := newTestEnv(t, nil)
	e.repo.listings.EXPECT().GetListingByID(mock.Anything, "missing").
		Return(nil, gerr.ErrListingNotFound).Once()

	w := e.do(t, httptest.NewRequest(http.MethodGet, "/api/listings/missing", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error.listing_not_found", resp.Key)
	assert.Equal(t, "Listing not found", resp.ErrorText)
}

func TestHealthz(t *testing.T) {
	e := newTestEnv(t, nil)
	w := e.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	e.repo.pingErr = errors.New("db down")
	w = e.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPostsAreRateLimited(t *testing.T) {
	e := newTestEnv(t, &Config{RequestsPerMinute: 2})

	for i := 0; i < 2; i++ {
		w := e.do(t, postForm("/language", url.Values{"locale": {"en"}}))
		require.Equal(t, http.StatusSeeOther, w.Code)
	}
	w := e.do(t, postForm("/language", url.Values{"locale": {"en"}}))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestStartFailsOnBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	s := New(&Config{Address: "127.0.0.1", Port: port}, nil, nil, nil, nil, nil)
	assert.Error(t, s.Start(context.Background()))
	assert.NoError(t, s.Stop(context.Background()))
}

func TestStartAndStop(t *testing.T) {
	s := New(&Config{Address: "127.0.0.1", Port: "0"}, nil, nil, nil, nil, nil)
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))

	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not exit")
	}
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"https://sheel.sa"}
	assert.True(t, isOriginAllowed("http://localhost:3000", allowed))
	assert.True(t, isOriginAllowed("https://sheel.sa", allowed))
	assert.False(t, isOriginAllowed("https://evil.example.com", allowed))
}

func TestLocalRedirect(t *testing.T) {
	for in, want := range map[string]string{
		"":                         "/",
		"/dashboard?status=sold":   "/dashboard?status=sold",
		"//evil.example.com":       "/",
		"/\\evil.example.com":      "/",
		"https://evil.example.com": "/",
		"dashboard":                "/",
	} {
		assert.Equal(t, want, localRedirect(in), in)
	}
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "", whatsAppLink("", "hi"))
	assert.Equal(t, "https://wa.me/966552714304?text=hi+there", whatsAppLink("+966 55 271 4304", "hi there"))
}
