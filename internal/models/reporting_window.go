package models

import (
	"errors"
	"time"
)

// ErrOpenEndedWindow is returned when a reporting window has no end date.
var ErrOpenEndedWindow = errors.New("reporting window must have an end date")

// ReportingWindow is a closed calendar interval in which authorities report on their schemes.
type ReportingWindow struct {
	window DateRange
}

// NewReportingWindow creates a reporting window from a range that must have an end.
func NewReportingWindow(window DateRange) (ReportingWindow, error) {
	if window.IsOpen() {
		return ReportingWindow{}, ErrOpenEndedWindow
	}
	return ReportingWindow{window: window}, nil
}

// Window returns the underlying date range.
func (w ReportingWindow) Window() DateRange {
	return w.window
}

// DaysLeft returns the whole days remaining before the window closes, counting today.
// Callers are expected to check that now lies within the window.
func (w ReportingWindow) DaysLeft(now time.Time) int {
	const day = 24 * time.Hour
	remaining := w.window.to.Sub(now)
	days := remaining / day
	if remaining < 0 && remaining%day != 0 {
		days--
	}
	return int(days) + 1
}
