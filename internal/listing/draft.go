// Package listing collects new property listings and hands them to storage.
package listing

import (
	"slices"

	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
)

// MaxImages is the number of images a listing may carry.
const MaxImages = 10

// Features are the feature tags an owner can pick, as translation keys.
var Features = []string{
	"feature.parking",
	"feature.gym",
	"feature.pool",
	"feature.concierge",
	"feature.city_views",
	"feature.modern_kitchen",
	"feature.hardwood_floors",
	"feature.in_unit_laundry",
	"feature.balcony",
	"feature.pet_friendly",
	"feature.fireplace",
	"feature.garden",
	"feature.garage",
	"feature.rooftop",
	"feature.security",
	"feature.air_conditioning",
	"feature.heating",
	"feature.dishwasher",
	"feature.walk_in_closet",
	"feature.storage",
}

// Draft is the state of the new listing form. Numeric inputs are kept as
// typed so a failed submission can be shown again unchanged.
type Draft struct {
	Title           string                 `json:"title"`
	TitleAr         string                 `json:"titleAr"`
	Description     string                 `json:"description"`
	DescriptionAr   string                 `json:"descriptionAr"`
	Price           string                 `json:"price"`
	TransactionType entity.TransactionType `json:"transactionType"`
	Category        entity.CategoryEnum    `json:"category"`
	Bedrooms        string                 `json:"bedrooms"`
	Bathrooms       string                 `json:"bathrooms"`
	Area            string                 `json:"area"`
	Address         string                 `json:"address"`
	AddressAr       string                 `json:"addressAr"`
	City            string                 `json:"city"`
	CityAr          string                 `json:"cityAr"`
	ContactName     string                 `json:"contactName"`
	ContactPhone    string                 `json:"contactPhone"`
	ContactEmail    string                 `json:"contactEmail"`

	features []string
	images   []entity.Attachment
}

// NewDraft returns an empty draft for a sale.
func NewDraft() *Draft {
	return &Draft{TransactionType: entity.Sale}
}

// AddImages attaches files. When the total would exceed MaxImages the
// whole batch is discarded, attached images stay, and ErrTooManyImages
// is returned.
func (d *Draft) AddImages(files ...entity.Attachment) error {
	if len(d.images)+len(files) > MaxImages {
		return gerr.ErrTooManyImages
	}
	d.images = append(d.images, files...)
	return nil
}

// RemoveImage detaches the image at i. Out of range indexes are ignored.
func (d *Draft) RemoveImage(i int) {
	if i < 0 || i >= len(d.images) {
		return
	}
	d.images = slices.Delete(d.images, i, i+1)
}

// Images returns the attached images in order.
func (d *Draft) Images() []entity.Attachment {
	return slices.Clone(d.images)
}

// ToggleFeature selects key, or deselects it when already selected.
func (d *Draft) ToggleFeature(key string) {
	if i := slices.Index(d.features, key); i >= 0 {
		d.features = slices.Delete(d.features, i, i+1)
		return
	}
	d.features = append(d.features, key)
}

// HasFeature reports whether key is selected.
func (d *Draft) HasFeature(key string) bool {
	return slices.Contains(d.features, key)
}

// SelectedFeatures returns selected features in selection order.
func (d *Draft) SelectedFeatures() []string {
	return slices.Clone(d.features)
}
