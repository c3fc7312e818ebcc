package gerr

import "errors"

// Error is an error a user may see. Key is the translation key of its message.
type Error struct {
	Key string
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// New returns an error identified by a translation key.
func New(key, msg string) *Error {
	return &Error{Key: key, msg: msg}
}

var (
	ErrUnauthenticated    = New("error.sign_in_first", "not authenticated")
	ErrInvalidCredentials = New("error.invalid_credentials", "invalid email or password")
	ErrOwnerExists        = New("error.owner_exists", "owner already exists")

	ErrUnsupportedLocale = New("error.unsupported_language", "unsupported locale")

	ErrTooManyImages      = New("error.too_many_images", "too many images attached")
	ErrTooManySubmissions = New("error.too_many_submissions", "too many listings submitted, try again later")
	ErrCreateListing      = New("error.create_listing", "failed to create listing")

	ErrListingNotFound = New("error.listing_not_found", "listing not found")
	ErrDeleteListing   = New("error.delete_listing", "failed to delete listing")
	ErrLoadListings    = New("error.load_listings", "failed to load listings")
)

// Key returns the translation key of the first *Error in err's chain,
// or fallback when there is none.
func Key(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Key
	}
	return fallback
}
