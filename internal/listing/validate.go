package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/sheel/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	keyRequired      = "error.required_fields"
	keyInvalidPrice  = "error.invalid_price"
	keyInvalidOption = "error.invalid_option"
	keyInvalidEmail  = "error.invalid_email"
)

// fieldOrder decides which violation is reported first.
var fieldOrder = []string{"title", "price", "transactionType", "category", "contactEmail"}

// ValidationError lists rejected fields with the translation key of the
// reason for each.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range fieldOrder {
		if k, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+k)
		}
	}
	return "invalid listing: " + strings.Join(parts, ", ")
}

// Key returns the translation key of the first violation.
func (e *ValidationError) Key() string {
	for _, f := range fieldOrder {
		if k, ok := e.Fields[f]; ok {
			return k
		}
	}
	return keyRequired
}

// Validate checks required fields and value formats. It never touches the
// network.
func (d *Draft) Validate() error {
	err := v.ValidateStruct(d,
		v.Field(&d.Title, v.By(notBlank)),
		v.Field(&d.Price, v.By(notBlank), v.By(nonNegativeNumber)),
		v.Field(&d.TransactionType,
			v.Required.Error(keyRequired),
			v.In(entity.Sale, entity.Rent).Error(keyInvalidOption),
		),
		v.Field(&d.Category,
			v.Required.Error(keyRequired),
			v.By(validCategory),
		),
		v.Field(&d.ContactEmail, v.By(optionalEmail)),
	)
	if err == nil {
		return nil
	}

	var errs v.Errors
	if !errors.As(err, &errs) {
		return fmt.Errorf("can't validate listing: %w", err)
	}
	ve := &ValidationError{Fields: make(map[string]string, len(errs))}
	for field, fe := range errs {
		ve.Fields[field] = fe.Error()
	}
	return ve
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New(keyRequired)
	}
	return nil
}

func nonNegativeNumber(value interface{}) error {
	s, _ := value.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	p, err := parsePrice(s)
	if err != nil || p.IsNegative() {
		return errors.New(keyInvalidPrice)
	}
	return nil
}

func validCategory(value interface{}) error {
	c, _ := value.(entity.CategoryEnum)
	if c != "" && !entity.IsValidCategory(c) {
		return errors.New(keyInvalidOption)
	}
	return nil
}

func optionalEmail(value interface{}) error {
	s, _ := value.(string)
	s = strings.TrimSpace(s)
	if s != "" && !govalidator.IsEmail(s) {
		return errors.New(keyInvalidEmail)
	}
	return nil
}

// parsePrice accepts digits with optional thousands separators.
func parsePrice(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}
