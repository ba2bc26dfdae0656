package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for input and display.
const DateLayout = "2006-01-02"

// DateRange is an estimated start/finish pair. A zero endpoint is absent.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates both endpoints to calendar dates in UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDate(start), End: truncateDate(end)}
}

// DefaultDateRange returns the initial form value: today through tomorrow.
func DefaultDateRange(now time.Time) DateRange {
	today := truncateDate(now)
	return DateRange{Start: today, End: today.AddDate(0, 0, 1)}
}

// ValidateDateRange reports ErrIncompleteRange when an endpoint is missing and
// ErrInvalidRange when start is after end. A zero-length range is valid.
func ValidateDateRange(r DateRange) error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrIncompleteRange
	}
	if r.Start.After(r.End) {
		return ErrInvalidRange
	}
	return nil
}

// Days returns the inclusive length of the range in days.
func (r DateRange) Days() int {
	if ValidateDateRange(r) != nil {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{formatDate(r.Start), formatDate(r.End)})
}

func (r *DateRange) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("date range: expected 2 dates, got %d", len(pair))
	}
	var err error
	if r.Start, err = parseDate(pair[0]); err != nil {
		return fmt.Errorf("date range start: %w", err)
	}
	if r.End, err = parseDate(pair[1]); err != nil {
		return fmt.Errorf("date range end: %w", err)
	}
	return nil
}

func truncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}
