package handler

import (
	"fmt"
	"time"
)

const queryDateLayout = "2006-01-02"

// parseDateQuery parses an optional yyyy-mm-dd query value. End-of-range
// values are pushed to the last instant of the day so the filter is
// inclusive.
func parseDateQuery(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(queryDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
