package pricing

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotPrice is returned when a value has no usable numeric content.
var ErrNotPrice = errors.New("value is not a price")

// NotSpecified is the sentinel the pages store when a user leaves the
// budget field empty. It normalizes to 0.
const NotSpecified = "Not specified"

// Plain amount after "$" and "," are stripped: digits, optional decimals.
var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// Normalize converts a price that may arrive as a number or as a
// currency-formatted string (e.g. "$1,599.99") into a plain amount.
// Negative amounts are not valid prices and are rejected.
func Normalize(v interface{}) (float64, error) {
	switch p := v.(type) {
	case nil:
		return 0, ErrNotPrice
	case float64:
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return 0, fmt.Errorf("%w: non-finite amount %v", ErrNotPrice, p)
		}
		if p < 0 {
			return 0, fmt.Errorf("%w: negative amount %v", ErrNotPrice, p)
		}
		return p, nil
	case float32:
		return Normalize(float64(p))
	case int:
		return Normalize(float64(p))
	case int64:
		return Normalize(float64(p))
	case string:
		return NormalizeString(p)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotPrice, v)
	}
}

// NormalizeString parses a currency-formatted string into an amount.
// Accepted form: optional "$", digits with optional "," thousands
// separators, optional decimal part. "Not specified" normalizes to 0.
func NormalizeString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrNotPrice)
	}
	if strings.EqualFold(s, NotSpecified) {
		return 0, nil
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	// ParseFloat alone also accepts "nan", "inf" and exponent forms, none
	// of which are prices; gate on the plain digit shape first.
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrNotPrice, s)
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotPrice, s)
	}
	return amount, nil
}

// NormalizeOrZero is the fallback convention the pages rely on: anything
// that fails to parse counts as 0 rather than aborting the render.
func NormalizeOrZero(v interface{}) float64 {
	amount, err := Normalize(v)
	if err != nil {
		return 0
	}
	return amount
}

// Format renders an amount for display with exactly two decimal places.
func Format(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
