package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType says whether a listing is offered for sale or for rent.
type TransactionType string

const (
	Sale TransactionType = "sale"
	Rent TransactionType = "rent"
)

var ValidTransactionTypes = map[TransactionType]bool{
	Sale: true,
	Rent: true,
}

func IsValidTransactionType(t TransactionType) bool {
	return ValidTransactionTypes[t]
}

type CategoryEnum string

const (
	House      CategoryEnum = "house"
	Apartment  CategoryEnum = "apartment"
	Condo      CategoryEnum = "condo"
	Townhouse  CategoryEnum = "townhouse"
	Land       CategoryEnum = "land"
	Commercial CategoryEnum = "commercial"
)

// ValidCategories is a map containing all the valid listing categories.
var ValidCategories = map[CategoryEnum]bool{
	House:      true,
	Apartment:  true,
	Condo:      true,
	Townhouse:  true,
	Land:       true,
	Commercial: true,
}

func IsValidCategory(c CategoryEnum) bool {
	return ValidCategories[c]
}

// Categories returns categories in display order.
func Categories() []CategoryEnum {
	return []CategoryEnum{House, Apartment, Condo, Townhouse, Land, Commercial}
}

type ListingStatus string

const (
	StatusActive   ListingStatus = "active"
	StatusSold     ListingStatus = "sold"
	StatusRented   ListingStatus = "rented"
	StatusInactive ListingStatus = "inactive"
)

var ValidListingStatuses = map[ListingStatus]bool{
	StatusActive:   true,
	StatusSold:     true,
	StatusRented:   true,
	StatusInactive: true,
}

func IsValidListingStatus(s ListingStatus) bool {
	return ValidListingStatuses[s]
}

// StringList is an ordered list of strings kept in a JSON column.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as an empty JSON array.
func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		return "[]", nil
	}
	bs, err := json.Marshal([]string(sl))
	if err != nil {
		return nil, err
	}
	return string(bs), nil
}

// Scan implements sql.Scanner.
func (sl *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*sl = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("can't scan %T into StringList", src)
	}
	if len(raw) == 0 {
		*sl = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("can't unmarshal string list: %w", err)
	}
	*sl = out
	return nil
}

// ListingBody holds the owner-editable part of a listing.
type ListingBody struct {
	Title           string          `db:"title"`
	TitleAr         string          `db:"title_ar"`
	Description     string          `db:"description"`
	DescriptionAr   string          `db:"description_ar"`
	Price           decimal.Decimal `db:"price"`
	TransactionType TransactionType `db:"transaction_type"`
	Category        CategoryEnum    `db:"category"`
	Bedrooms        *int            `db:"bedrooms"`
	Bathrooms       *float64        `db:"bathrooms"`
	Area            *int            `db:"area"`
	Address         string          `db:"address"`
	AddressAr       string          `db:"address_ar"`
	City            string          `db:"city"`
	CityAr          string          `db:"city_ar"`
	ContactName     string          `db:"contact_name"`
	ContactPhone    string          `db:"contact_phone"`
	ContactEmail    string          `db:"contact_email"`
	Features        StringList      `db:"features"`
	Images          StringList      `db:"images"`
}

// Listing represents the listings table
type Listing struct {
	ID      string `db:"id"`
	OwnerID string `db:"owner_id"`
	ListingBody
	Featured  bool          `db:"featured"`
	Status    ListingStatus `db:"status"`
	Views     int           `db:"views"`
	Inquiries int           `db:"inquiries"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}
