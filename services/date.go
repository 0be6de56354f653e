package services

import (
	"fmt"
	"time"
)

// DateLayout is the day format accepted by the export filters
const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD day as midnight in loc (UTC when nil)
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	parsedTime, err := time.ParseInLocation(DateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return parsedTime, nil
}

// DayRange turns inclusive first and last days into the half-open interval
// [since, until) used by SubmissionFilter. Empty strings leave that end open.
func DayRange(first, last string, loc *time.Location) (since, until time.Time, err error) {
	if first != "" {
		if since, err = ParseDate(first, loc); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if last != "" {
		if until, err = ParseDate(last, loc); err != nil {
			return time.Time{}, time.Time{}, err
		}
		until = until.AddDate(0, 0, 1)
	}
	if !since.IsZero() && !until.IsZero() && !since.Before(until) {
		return time.Time{}, time.Time{}, fmt.Errorf("first day %s is after last day %s", first, last)
	}
	return since, until, nil
}
