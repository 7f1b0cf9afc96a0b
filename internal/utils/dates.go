package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseFlexibleDate accepts any unambiguous date or timestamp representation
// and returns its calendar date as midnight UTC. The date is taken as written,
// so "2024-01-01T00:00:00+02:00" is January 1st.
func ParseFlexibleDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	t, err := dateparse.ParseStrict(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q: %w", value, err)
	}

	return DateOf(t), nil
}

// DateOf truncates t to its calendar date in t's own location, as midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
