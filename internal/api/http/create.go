package httpapi

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
	"github.com/jekabolt/sheel/internal/listing"
)

const defaultMaxUploadMB = 64

type signInData struct {
	Key  string
	Next string
}

type createData struct {
	Draft      *listing.Draft
	Features   []string
	Categories []entity.CategoryEnum
	MaxImages  int
	ErrorKey   string
	Fields     map[string]string
}

func newCreateData(d *listing.Draft) createData {
	return createData{
		Draft:      d,
		Features:   listing.Features,
		Categories: entity.Categories(),
		MaxImages:  listing.MaxImages,
	}
}

func (s *Server) newListing(w http.ResponseWriter, r *http.Request) {
	if auth.StateFromContext(r.Context()).User == nil {
		s.render(w, r, http.StatusUnauthorized, "signin_required", signInData{
			Key:  "auth.required.create",
			Next: "/listings/new",
		})
		return
	}
	s.render(w, r, http.StatusOK, "create", newCreateData(listing.NewDraft()))
}

func (s *Server) createListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := auth.StateFromContext(ctx)
	if st.User == nil {
		s.render(w, r, http.StatusUnauthorized, "signin_required", signInData{
			Key:  "auth.required.create",
			Next: "/listings/new",
		})
		return
	}

	maxUpload := s.c.MaxUploadMB
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadMB
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		slog.Default().WarnContext(ctx, "can't parse listing form",
			slog.String("err", err.Error()),
		)
		s.fail(w, r, http.StatusBadRequest, "error.required_fields")
		return
	}

	d := draftFromForm(r)
	data := newCreateData(d)

	files, err := attachmentsFromForm(r)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't read listing images",
			slog.String("err", err.Error()),
		)
		s.fail(w, r, http.StatusBadRequest, "error.internal")
		return
	}
	if err := d.AddImages(files...); err != nil {
		data.ErrorKey = gerr.Key(err, "error.too_many_images")
		s.render(w, r, http.StatusUnprocessableEntity, "create", data)
		return
	}

	if _, err := s.submitter.Submit(ctx, st, d); err != nil {
		status := submitStatus(err)
		data.ErrorKey = gerr.Key(err, "error.internal")
		var ve *listing.ValidationError
		if errors.As(err, &ve) {
			data.ErrorKey = ve.Key()
			data.Fields = ve.Fields
		}
		s.render(w, r, status, "create", data)
		return
	}

	s.setFlash(w, flashSuccess, "success.listing_created")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func submitStatus(err error) int {
	var ve *listing.ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, gerr.ErrTooManyImages):
		return http.StatusUnprocessableEntity
	case errors.Is(err, gerr.ErrTooManySubmissions):
		return http.StatusTooManyRequests
	case errors.Is(err, gerr.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func draftFromForm(r *http.Request) *listing.Draft {
	d := listing.NewDraft()
	d.Title = r.FormValue("title")
	d.TitleAr = r.FormValue("titleAr")
	d.Description = r.FormValue("description")
	d.DescriptionAr = r.FormValue("descriptionAr")
	d.Price = r.FormValue("price")
	if t := r.FormValue("transactionType"); t != "" {
		d.TransactionType = entity.TransactionType(t)
	}
	d.Category = entity.CategoryEnum(r.FormValue("category"))
	d.Bedrooms = r.FormValue("bedrooms")
	d.Bathrooms = r.FormValue("bathrooms")
	d.Area = r.FormValue("area")
	d.Address = r.FormValue("address")
	d.AddressAr = r.FormValue("addressAr")
	d.City = r.FormValue("city")
	d.CityAr = r.FormValue("cityAr")
	d.ContactName = r.FormValue("contactName")
	d.ContactPhone = r.FormValue("contactPhone")
	d.ContactEmail = r.FormValue("contactEmail")

	for _, f := range r.Form["features"] {
		if slices.Contains(listing.Features, f) && !d.HasFeature(f) {
			d.ToggleFeature(f)
		}
	}
	return d
}

func attachmentsFromForm(r *http.Request) ([]entity.Attachment, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File["images"]
	out := make([]entity.Attachment, 0, len(headers))
	for _, fh := range headers {
		if fh.Filename == "" || fh.Size == 0 {
			continue
		}
		a, err := readAttachment(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func readAttachment(fh *multipart.FileHeader) (entity.Attachment, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.Attachment{}, fmt.Errorf("can't open %q: %w", fh.Filename, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return entity.Attachment{}, fmt.Errorf("can't read %q: %w", fh.Filename, err)
	}
	return entity.Attachment{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
