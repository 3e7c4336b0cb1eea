package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
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

// UUID validation (any RFC 4122 version)
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidAmount reports whether s parses as a non-negative decimal.
// Request validation is strict here; the stats engine is the lenient
// side and coerces bad stored values to zero.
func IsValidAmount(s string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTimeOfDay reports whether s is a display time in HH:MM form.
func IsValidTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}
