package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senyabanana/capital-schemes/internal/models"
	"github.com/senyabanana/capital-schemes/internal/services"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func TestGetByDateReturnsQuarterlyWindow(t *testing.T) {
	service := services.NewDefaultReportingWindowService()

	tests := []struct {
		name string
		date time.Time
		from time.Time
		to   time.Time
	}{
		{name: "april", date: date(2020, 4, 24), from: date(2020, 4, 1), to: date(2020, 5, 1)},
		{name: "first instant of january", date: date(2021, 1, 1), from: date(2021, 1, 1), to: date(2021, 2, 1)},
		{name: "last instant of october", date: time.Date(2022, 10, 31, 23, 59, 59, 0, time.UTC), from: date(2022, 10, 1), to: date(2022, 11, 1)},
		{name: "july", date: date(2023, 7, 15), from: date(2023, 7, 1), to: date(2023, 8, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := service.GetByDate(tt.date)

			require.NotNil(t, window)
			assert.True(t, window.Window().Equal(models.MustDateRange(tt.from, ptr(tt.to))), "got %s", window.Window())
		})
	}
}

func TestGetByDateOutsideWindow(t *testing.T) {
	service := services.NewDefaultReportingWindowService()

	assert.Nil(t, service.GetByDate(date(2020, 2, 24)))
	assert.Nil(t, service.GetByDate(date(2020, 5, 1)))
	assert.Nil(t, service.GetByDate(date(2024, 2, 10)))
}

func TestGetByDateDemoWindow(t *testing.T) {
	service := services.NewDefaultReportingWindowService(services.WithDemoWindow(time.UTC))

	window := service.GetByDate(date(2024, 2, 10))

	require.NotNil(t, window)
	assert.True(t, window.Window().Equal(models.MustDateRange(date(2024, 2, 1), ptr(date(2024, 3, 1)))))
	assert.Nil(t, service.GetByDate(date(2025, 2, 10)))
}

func TestGetByDateDemoWindowUsesLocation(t *testing.T) {
	eastern := time.FixedZone("EST", -5*60*60)
	service := services.NewDefaultReportingWindowService(services.WithDemoWindow(eastern))

	assert.Nil(t, service.GetByDate(time.Date(2024, 2, 1, 2, 0, 0, 0, time.UTC)), "still 31 January in the window's zone")

	window := service.GetByDate(time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC))
	require.NotNil(t, window, "still 29 February in the window's zone")
	assert.True(t, window.Window().From().Equal(time.Date(2024, 2, 1, 5, 0, 0, 0, time.UTC)))
}
