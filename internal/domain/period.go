package domain

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates. The engine works with
// date-only granularity; times of day never enter the domain logic.
const DateFormat = "2006-01-02"

// DateRange is an inclusive calendar-date interval. It models both a payout
// period (typically one calendar week) and the validity window of an
// exclusion record.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange from two calendar dates, normalizing both
// to UTC midnight.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: ToDate(start), End: ToDate(end)}
}

// ParseDateRange parses two YYYY-MM-DD strings into a DateRange.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, NewValidationError("start_date", err.Error())
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, NewValidationError("end_date", err.Error())
	}
	return DateRange{Start: s, End: e}, nil
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// ToDate truncates a timestamp to its UTC calendar date.
func ToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks that both dates are set and Start <= End.
// An inverted range fails with ErrInvalidRange.
func (r DateRange) Validate() error {
	if r.Start.IsZero() {
		return NewValidationError("start_date", "required")
	}
	if r.End.IsZero() {
		return NewValidationError("end_date", "required")
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("end %s before start %s: %w",
			r.End.Format(DateFormat), r.Start.Format(DateFormat), ErrInvalidRange)
	}
	return nil
}

// Overlaps reports whether two inclusive date ranges share at least one day.
// The two-sided closed-interval test covers containment, partial overlap and
// exact match, and is symmetric: r.Overlaps(o) == o.Overlaps(r).
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Contains reports whether the given date falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := ToDate(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Key returns a stable string identity for the range, used as a lock key.
func (r DateRange) Key() string {
	return r.Start.Format(DateFormat) + ".." + r.End.Format(DateFormat)
}

func (r DateRange) String() string {
	return r.Start.Format(DateFormat) + " to " + r.End.Format(DateFormat)
}
