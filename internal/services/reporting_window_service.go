package services

import (
	"time"

	"github.com/senyabanana/capital-schemes/internal/models"
)

// ReportingWindowService resolves the reporting window that applies at a point in time.
type ReportingWindowService interface {
	GetByDate(date time.Time) *models.ReportingWindow
}

// reportingMonths open a one-month window at the start of each calendar quarter.
var reportingMonths = []time.Month{time.January, time.April, time.July, time.October}

// DefaultReportingWindowService opens a one-month window at the start of every quarter.
type DefaultReportingWindowService struct {
	extraWindows []models.ReportingWindow
}

// ReportingWindowOption configures a DefaultReportingWindowService.
type ReportingWindowOption func(*DefaultReportingWindowService)

// WithDemoWindow adds the February 2024 window used for demonstrations outside the quarterly cycle.
// The window opens and closes at midnight in loc.
func WithDemoWindow(loc *time.Location) ReportingWindowOption {
	return func(s *DefaultReportingWindowService) {
		window, _ := models.NewReportingWindow(models.MustDateRange(
			time.Date(2024, time.February, 1, 0, 0, 0, 0, loc),
			ptr(time.Date(2024, time.March, 1, 0, 0, 0, 0, loc)),
		))
		s.extraWindows = append(s.extraWindows, window)
	}
}

// NewDefaultReportingWindowService creates a service with the given options applied.
func NewDefaultReportingWindowService(opts ...ReportingWindowOption) *DefaultReportingWindowService {
	s := &DefaultReportingWindowService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetByDate returns the window containing date, or nil if date is outside every window.
func (s *DefaultReportingWindowService) GetByDate(date time.Time) *models.ReportingWindow {
	for _, window := range s.windowsFor(date) {
		if window.Window().Contains(date) {
			return &window
		}
	}
	return nil
}

func (s *DefaultReportingWindowService) windowsFor(date time.Time) []models.ReportingWindow {
	windows := make([]models.ReportingWindow, 0, len(reportingMonths)+len(s.extraWindows))
	for _, month := range reportingMonths {
		from := time.Date(date.Year(), month, 1, 0, 0, 0, 0, date.Location())
		window, err := models.NewReportingWindow(models.MustDateRange(from, ptr(from.AddDate(0, 1, 0))))
		if err != nil {
			panic(err)
		}
		windows = append(windows, window)
	}
	return append(windows, s.extraWindows...)
}

func ptr[T any](v T) *T {
	return &v
}
