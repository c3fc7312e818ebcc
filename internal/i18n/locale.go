package i18n

import (
	"fmt"

	gerr "github.com/jekabolt/sheel/internal/errors"
	"golang.org/x/text/language"
)

// Locale is a supported display language.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"

	// DefaultLocale is active when no valid preference was persisted.
	DefaultLocale = English

	// PreferenceKey names the persisted preference entry. The name predates
	// the storefront rename and is kept so existing preferences still load.
	PreferenceKey = "suhail-language"
)

// ErrUnsupportedLocale is returned for any locale outside Supported().
var ErrUnsupportedLocale = gerr.ErrUnsupportedLocale

var supported = []Locale{English, Arabic}

// Supported returns supported locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// ParseLocale accepts exactly "en" or "ar".
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(s); l {
	case English, Arabic:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
}

func (l Locale) String() string {
	return string(l)
}

// Tag returns the language tag used for number formatting.
func (l Locale) Tag() language.Tag {
	switch l {
	case Arabic:
		return language.Arabic
	default:
		return language.English
	}
}

// Direction is the document text direction.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

// Dir returns rtl for Arabic, ltr for everything else.
func (l Locale) Dir() Direction {
	if l == Arabic {
		return RightToLeft
	}
	return LeftToRight
}

// Other returns the locale the language switch offers.
func (l Locale) Other() Locale {
	if l == Arabic {
		return English
	}
	return Arabic
}
