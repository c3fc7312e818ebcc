package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/dependency"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
	"github.com/jekabolt/sheel/internal/ratelimit"
)

type Config struct {
	// UploadFolder is the storage folder holding per-owner image folders.
	UploadFolder string `mapstructure:"upload_folder"`
	// MaxSubmissions per owner within SubmissionWindow. Zero disables the limit.
	MaxSubmissions   int           `mapstructure:"max_submissions"`
	SubmissionWindow time.Duration `mapstructure:"submission_window"`
}

// Submitter turns a draft into a stored listing.
type Submitter struct {
	listings dependency.Listings
	files    dependency.FileStore
	limiter  *ratelimit.Limiter
	folder   string
	now      func() time.Time
	newID    func() string
}

// NewSubmitter creates a submitter writing records to listings and images
// to files.
func NewSubmitter(c *Config, listings dependency.Listings, files dependency.FileStore) *Submitter {
	folder := c.UploadFolder
	if folder == "" {
		folder = "properties"
	}
	s := &Submitter{
		listings: listings,
		files:    files,
		folder:   folder,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	if c.MaxSubmissions > 0 {
		window := c.SubmissionWindow
		if window <= 0 {
			window = time.Hour
		}
		s.limiter = ratelimit.NewLimiter(window, c.MaxSubmissions)
	}
	return s
}

// Close releases the submission limiter.
func (s *Submitter) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// Submit stores d on behalf of the signed-in owner. Images are uploaded one
// at a time before the record is created; an image that fails to upload is
// skipped. On any error d is left untouched so the form can be resubmitted.
func (s *Submitter) Submit(ctx context.Context, st auth.State, d *Draft) (*entity.Listing, error) {
	if st.User == nil {
		return nil, gerr.ErrUnauthenticated
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if s.limiter != nil && s.limiter.GetRemaining(st.User.ID) == 0 {
		return nil, gerr.ErrTooManySubmissions
	}

	urls, err := s.uploadImages(ctx, st.User.ID, d.images)
	if err != nil {
		s.discard(ctx, urls)
		return nil, err
	}

	l, err := s.record(st.User.ID, d, urls)
	if err != nil {
		s.discard(ctx, urls)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		s.discard(ctx, urls)
		return nil, fmt.Errorf("submission abandoned: %w", err)
	}

	if err := s.listings.AddListing(ctx, l); err != nil {
		slog.Default().ErrorContext(ctx, "can't create listing",
			slog.String("owner_id", st.User.ID),
			slog.String("err", err.Error()),
		)
		s.discard(ctx, urls)
		return nil, fmt.Errorf("%w: %w", gerr.ErrCreateListing, err)
	}

	// only stored listings count towards the quota
	if s.limiter != nil {
		s.limiter.Allow(st.User.ID)
	}

	slog.Default().InfoContext(ctx, "listing created",
		slog.String("id", l.ID),
		slog.String("owner_id", l.OwnerID),
		slog.Int("images", len(urls)),
	)
	return l, nil
}

func (s *Submitter) uploadImages(ctx context.Context, ownerID string, images []entity.Attachment) ([]string, error) {
	urls := make([]string, 0, len(images))
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return urls, fmt.Errorf("submission abandoned: %w", err)
		}
		p := s.objectPath(ownerID, i, img.Name)
		url, err := s.files.Upload(ctx, img.Data, p, entity.UploadOptions{
			Upsert:      true,
			ContentType: img.ContentType,
		})
		if err != nil {
			slog.Default().WarnContext(ctx, "can't upload listing image, skipping",
				slog.String("path", p),
				slog.String("err", err.Error()),
			)
			continue
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// objectPath scopes an image to its owner and prefixes the original name
// with the upload time in milliseconds and the attachment index, so files
// sharing a name within one submission keep distinct keys.
func (s *Submitter) objectPath(ownerID string, i int, name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "image"
	}
	name = strings.ReplaceAll(name, " ", "-")
	return path.Join(s.folder, ownerID, fmt.Sprintf("%d-%d-%s", s.now().UnixMilli(), i, name))
}

// discard removes uploaded images of a submission that was not stored.
func (s *Submitter) discard(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}
	if err := s.files.DeleteByURLs(context.WithoutCancel(ctx), urls); err != nil {
		slog.Default().WarnContext(ctx, "can't remove images of a failed submission",
			slog.String("err", err.Error()),
		)
	}
}

func (s *Submitter) record(ownerID string, d *Draft, urls []string) (*entity.Listing, error) {
	price, err := parsePrice(d.Price)
	if err != nil {
		return nil, errors.Join(&ValidationError{Fields: map[string]string{"price": keyInvalidPrice}}, err)
	}
	now := s.now().UTC()
	return &entity.Listing{
		ID:      s.newID(),
		OwnerID: ownerID,
		ListingBody: entity.ListingBody{
			Title:           strings.TrimSpace(d.Title),
			TitleAr:         strings.TrimSpace(d.TitleAr),
			Description:     strings.TrimSpace(d.Description),
			DescriptionAr:   strings.TrimSpace(d.DescriptionAr),
			Price:           price,
			TransactionType: d.TransactionType,
			Category:        d.Category,
			Bedrooms:        ParseCount(d.Bedrooms),
			Bathrooms:       ParseAmount(d.Bathrooms),
			Area:            ParseCount(d.Area),
			Address:         strings.TrimSpace(d.Address),
			AddressAr:       strings.TrimSpace(d.AddressAr),
			City:            strings.TrimSpace(d.City),
			CityAr:          strings.TrimSpace(d.CityAr),
			ContactName:     strings.TrimSpace(d.ContactName),
			ContactPhone:    strings.TrimSpace(d.ContactPhone),
			ContactEmail:    strings.TrimSpace(d.ContactEmail),
			Features:        entity.StringList(d.SelectedFeatures()),
			Images:          entity.StringList(urls),
		},
		Featured:  false,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ParseCount parses a whole non-negative number. Empty or invalid input
// is absent, never zero.
func ParseCount(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// ParseAmount parses a non-negative decimal such as 2.5 bathrooms. Empty or
// invalid input is absent, never zero.
func ParseAmount(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
