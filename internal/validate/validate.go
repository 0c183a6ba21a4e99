// Package validate checks request input. Struct validation runs through a single
// go-playground validator with the marketplace's custom tags registered.
package validate

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"junkdealer/internal/domain"
)

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_]{3,50}$`)
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reCity     = regexp.MustCompile(`^[\p{L} .'-]{1,50}$`)
)

var conditions = map[string]bool{"new": true, "like-new": true, "good": true, "fair": true, "poor": true}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so clients can match them up.
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	must := func(tag string, fn validator.Func) {
		if err := val.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	// decimal takes an optional total-digit count: `decimal=3` for ratings.
	must("decimal", func(fl validator.FieldLevel) bool {
		precision := domain.AmountPrecision
		if p, err := strconv.Atoi(fl.Param()); err == nil {
			precision = p
		}
		return DecimalN(fl.Field().String(), precision)
	})
	must("username", func(fl validator.FieldLevel) bool { return reUsername.MatchString(fl.Field().String()) })
	must("password", func(fl validator.FieldLevel) bool { return Password(fl.Field().String()) })
	must("condition", func(fl validator.FieldLevel) bool { return conditions[fl.Field().String()] })
	must("service_type", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == domain.ServicePickup || s == domain.ServiceDropoff
	})
	must("booking_status", func(fl validator.FieldLevel) bool { return domain.ValidBookingStatus(fl.Field().String()) })
	return val
}

// Struct validates s against its `validate` tags. The error, if any, is a
// validator.ValidationErrors.
func Struct(s any) error { return v.Struct(s) }

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Errors flattens a validation failure for a response body. Other errors yield nil.
func Errors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: e.Field(), Tag: e.Tag(), Message: message(e)})
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte", "lte":
		return e.Field() + " is out of range"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "decimal":
		digits := e.Param()
		if digits == "" {
			digits = strconv.Itoa(domain.AmountPrecision)
		}
		return e.Field() + " must be a non-negative decimal of at most " + digits + " digits with 2 after the point"
	case "username":
		return "username must be 3-50 letters, digits or underscores"
	case "password":
		return "password must be 8-72 characters with upper and lower case letters, a digit and a symbol"
	case "condition":
		return "condition must be one of: new, like-new, good, fair, poor"
	case "service_type":
		return "serviceType must be pickup or dropoff"
	case "booking_status":
		return "status must be one of: pending, confirmed, completed, cancelled"
	default:
		return e.Field() + " is invalid"
	}
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// City validates a city filter.
func City(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCity.MatchString(s)
}

// Qty parses a cart quantity; anything unparsable or below 1 becomes 1 and
// large values are clamped to 50.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// ID parses a positive integer resource id from a path or query value.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Decimal reports whether s is a non-negative amount that fits NUMERIC(10,2).
func Decimal(s string) bool { return DecimalN(s, domain.AmountPrecision) }

// DecimalN reports whether s is a non-negative decimal that fits
// NUMERIC(precision,2) once rounded to two places.
func DecimalN(s string, precision int) bool {
	d, err := domain.Fixed2(s, precision)
	return err == nil && !d.IsNegative()
}

// Password enforces length and character-class rules for new accounts.
// bcrypt ignores input past 72 bytes.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 72 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
