package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange is returned when a range ends before it starts.
var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is an effective interval [from, to). A nil upper bound means the range is still in effect.
type DateRange struct {
	from time.Time
	to   *time.Time
}

// NewDateRange creates a date range, rejecting ranges where from is after to.
func NewDateRange(from time.Time, to *time.Time) (DateRange, error) {
	if to != nil && from.After(*to) {
		return DateRange{}, fmt.Errorf("%w: from %s must not be after to %s",
			ErrInvalidDateRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	r := DateRange{from: from}
	if to != nil {
		t := *to
		r.to = &t
	}
	return r, nil
}

// MustDateRange is like NewDateRange but panics on an invalid range.
func MustDateRange(from time.Time, to *time.Time) DateRange {
	r, err := NewDateRange(from, to)
	if err != nil {
		panic(err)
	}
	return r
}

// OpenDateRange creates a range starting at from with no end.
func OpenDateRange(from time.Time) DateRange {
	return DateRange{from: from}
}

// From returns the inclusive lower bound.
func (r DateRange) From() time.Time {
	return r.from
}

// To returns a copy of the exclusive upper bound, or nil for an open range.
func (r DateRange) To() *time.Time {
	if r.to == nil {
		return nil
	}
	t := *r.to
	return &t
}

// IsOpen reports whether the range has no end.
func (r DateRange) IsOpen() bool {
	return r.to == nil
}

// Contains reports whether t lies in [from, to).
func (r DateRange) Contains(t time.Time) bool {
	if t.Before(r.from) {
		return false
	}
	return r.to == nil || t.Before(*r.to)
}

// Close returns a copy of the range ending at to.
func (r DateRange) Close(to time.Time) (DateRange, error) {
	return NewDateRange(r.from, &to)
}

// Equal reports whether both ranges have the same bounds.
func (r DateRange) Equal(other DateRange) bool {
	if !r.from.Equal(other.from) {
		return false
	}
	if r.to == nil || other.to == nil {
		return r.to == nil && other.to == nil
	}
	return r.to.Equal(*other.to)
}

// String formats the range for logs and error messages.
func (r DateRange) String() string {
	if r.to == nil {
		return fmt.Sprintf("[%s, )", r.from.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%s, %s)", r.from.Format(time.RFC3339), r.to.Format(time.RFC3339))
}
