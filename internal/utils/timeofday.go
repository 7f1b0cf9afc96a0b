package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesSinceMidnight parses an "H:M" string into hour*60+minute. Values are
// not range checked.
func MinutesSinceMidnight(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", value, err)
	}

	return hours*60 + minutes, nil
}

// DurationHours returns (end - start) in hours. An end before start yields a
// negative duration.
func DurationHours(start, end string) (float64, error) {
	startMinutes, err := MinutesSinceMidnight(start)
	if err != nil {
		return 0, err
	}
	endMinutes, err := MinutesSinceMidnight(end)
	if err != nil {
		return 0, err
	}
	return float64(endMinutes-startMinutes) / 60.0, nil
}

// Round2 rounds to two decimal places. Rounding works on the exact binary
// value and breaks exact ties to even, so 0.125 becomes 0.12.
func Round2(value float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
