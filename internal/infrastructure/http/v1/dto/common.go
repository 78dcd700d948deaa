// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/domain/ledger"
)

// DateLayout is the wire format for civil dates.
const DateLayout = ledger.DateLayout

// ParseDate reads a YYYY-MM-DD value as midnight in loc.
func ParseDate(field, value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, apperror.NewValidation("date must be YYYY-MM-DD").
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return t, nil
}

// FormatDate renders the calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
