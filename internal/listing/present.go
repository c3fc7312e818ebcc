package listing

import (
	"github.com/jekabolt/sheel/internal/entity"
	"github.com/jekabolt/sheel/internal/i18n"
)

var defaultImages = map[entity.CategoryEnum]string{
	entity.Apartment:  "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=600&h=400&fit=crop",
	entity.House:      "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=600&h=400&fit=crop",
	entity.Condo:      "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=600&h=400&fit=crop",
	entity.Commercial: "https://images.unsplash.com/photo-1497366216548-37526070297c?w=600&h=400&fit=crop",
	entity.Townhouse:  "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=600&h=400&fit=crop",
	entity.Land:       "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=600&h=400&fit=crop",
}

func localized(loc i18n.Locale, en, ar string) string {
	if loc == i18n.Arabic && ar != "" {
		return ar
	}
	return en
}

// Title returns the title in loc, falling back to the source title.
func Title(l *entity.Listing, loc i18n.Locale) string {
	return localized(loc, l.Title, l.TitleAr)
}

// Description returns the description in loc, falling back to the source one.
func Description(l *entity.Listing, loc i18n.Locale) string {
	return localized(loc, l.Description, l.DescriptionAr)
}

// Location returns the city, else the address, else a localized placeholder.
func Location(l *entity.Listing, c *i18n.Context) string {
	loc := c.Locale()
	if city := localized(loc, l.City, l.CityAr); city != "" {
		return city
	}
	if addr := localized(loc, l.Address, l.AddressAr); addr != "" {
		return addr
	}
	return c.T("listing.location.unknown")
}

// CoverImage returns the first image, or a stock photo for the category.
func CoverImage(l *entity.Listing) string {
	if len(l.Images) > 0 && l.Images[0] != "" {
		return l.Images[0]
	}
	return DefaultImage(l.Category)
}

// DefaultImage returns the stock photo for c.
func DefaultImage(c entity.CategoryEnum) string {
	if img, ok := defaultImages[c]; ok {
		return img
	}
	return defaultImages[entity.Apartment]
}

// FormatPrice renders the price with its currency, per month for rentals.
func FormatPrice(l *entity.Listing, c *i18n.Context) string {
	n := i18n.FormatNumber(c.Locale(), l.Price)
	var s string
	if c.IsRightToLeft() {
		s = n + " " + c.T("price.currency")
	} else {
		s = c.T("price.currency") + " " + n
	}
	if l.TransactionType == entity.Rent {
		s += c.T("price.per_month")
	}
	return s
}
