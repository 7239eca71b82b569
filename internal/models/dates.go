package models

import (
	"fmt"
	"time"
)

// DateParseError reports a date string that could not be interpreted. Date
// ordering drives range filters, recency boosts and delay calculations, so a
// malformed date has to surface instead of silently comparing wrong.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses the wire-format date strings carried on orders and stages.
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &DateParseError{Value: value, Err: lastErr}
}
