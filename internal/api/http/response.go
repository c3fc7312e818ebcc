package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/jekabolt/sheel/internal/entity"
	"github.com/jekabolt/sheel/internal/i18n"
	"github.com/jekabolt/sheel/internal/listing"
)

// errors

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	Key        string `json:"key,omitempty"`   // translation key of the message
	ErrorText  string `json:"error,omitempty"` // localized message
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errResponse(r *http.Request, status int, key string, err error) render.Renderer {
	lc := i18n.MustFromContext(r.Context())
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		Key:            key,
		ErrorText:      lc.T(key),
	}
}

func ErrInvalidRequest(r *http.Request, key string, err error) render.Renderer {
	return errResponse(r, http.StatusBadRequest, key, err)
}

func ErrNotFound(r *http.Request, key string) render.Renderer {
	return errResponse(r, http.StatusNotFound, key, nil)
}

func ErrInternalServerError(r *http.Request, err error) render.Renderer {
	return errResponse(r, http.StatusInternalServerError, "error.internal", err)
}

// listings

type ListingResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Location        string                 `json:"location"`
	Price           string                 `json:"price"`
	FormattedPrice  string                 `json:"formattedPrice"`
	TransactionType entity.TransactionType `json:"transactionType"`
	Category        entity.CategoryEnum    `json:"category"`
	Status          entity.ListingStatus   `json:"status"`
	Bedrooms        *int                   `json:"bedrooms,omitempty"`
	Bathrooms       *float64               `json:"bathrooms,omitempty"`
	Area            *int                   `json:"area,omitempty"`
	Features        []string               `json:"features"`
	Images          []string               `json:"images"`
	CoverImage      string                 `json:"coverImage"`
	Featured        bool                   `json:"featured"`
	Views           int                    `json:"views"`
	CreatedAt       string                 `json:"createdAt"`
}

func NewListingResponse(l *entity.Listing, lc *i18n.Context) *ListingResponse {
	features := []string(l.Features)
	if features == nil {
		features = []string{}
	}
	images := []string(l.Images)
	if images == nil {
		images = []string{}
	}
	return &ListingResponse{
		ID:              l.ID,
		Title:           listing.Title(l, lc.Locale()),
		Description:     listing.Description(l, lc.Locale()),
		Location:        listing.Location(l, lc),
		Price:           l.Price.String(),
		FormattedPrice:  listing.FormatPrice(l, lc),
		TransactionType: l.TransactionType,
		Category:        l.Category,
		Status:          l.Status,
		Bedrooms:        l.Bedrooms,
		Bathrooms:       l.Bathrooms,
		Area:            l.Area,
		Features:        features,
		Images:          images,
		CoverImage:      listing.CoverImage(l),
		Featured:        l.Featured,
		Views:           l.Views,
		CreatedAt:       l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (rd *ListingResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func NewListingListResponse(ls []entity.Listing, lc *i18n.Context) []render.Renderer {
	list := make([]render.Renderer, 0, len(ls))
	for i := range ls {
		list = append(list, NewListingResponse(&ls[i], lc))
	}
	return list
}

// messages

type MessagesResponse struct {
	Locale   i18n.Locale       `json:"locale"`
	Dir      i18n.Direction    `json:"dir"`
	Messages map[string]string `json:"messages"`
}

func (rd *MessagesResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
