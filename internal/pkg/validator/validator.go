package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var clockLayouts = []string{"15:04:05", "15:04", "15:04:05.999999"}

// IsValidClockTime parses a wall-clock time (HH:MM, HH:MM:SS or HH:MM:SS.ffffff).
// The result sits on the zero date and is truncated to whole seconds.
func IsValidClockTime(timeStr string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, timeStr); err == nil {
			return t.Truncate(time.Second), true
		}
	}
	return time.Time{}, false
}

// maxDecimalLength bounds the raw text handed to the decimal parser.
const maxDecimalLength = 32

// ParseDecimal accepts a JSON number or a JSON string holding a number.
// Empty input and JSON null are reported as missing.
func ParseDecimal(raw []byte) (value decimal.Decimal, present bool, ok bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Decimal{}, false, false
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		return decimal.Decimal{}, false, false
	}
	if len(s) > maxDecimalLength {
		return decimal.Decimal{}, true, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, true, false
	}
	return d, true, true
}

// FitsNumeric reports whether d can be stored in a NUMERIC(precision, scale) column
// without rounding.
func FitsNumeric(d decimal.Decimal, precision, scale int32) bool {
	// Rescaling walks 10^|exp|, so out-of-range exponents are rejected before any arithmetic.
	if exp := d.Exponent(); exp > precision || exp < -(precision+scale) {
		return false
	}
	if !d.Equal(d.Truncate(scale)) {
		return false
	}
	limit := decimal.New(1, precision-scale)
	return d.Abs().LessThan(limit)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
