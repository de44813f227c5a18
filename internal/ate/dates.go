package ate

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/senyabanana/capital-schemes/internal/models"
)

// DefaultTimezone is the zone naive ATE date-times are read and written in.
const DefaultTimezone = "Europe/London"

const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"
)

// LoadLocation resolves a timezone name, falling back to DefaultTimezone when name is empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}

func (t *Translator) parseDateTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed.In(t.loc), nil
	}
	parsed, err := time.ParseInLocation(dateTimeLayout, value, t.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: %w", value, err)
	}
	return parsed, nil
}

func (t *Translator) formatDateTime(value time.Time) string {
	return value.In(t.loc).Format(dateTimeLayout)
}

// ParseDate reads a calendar date as midnight in the translator's zone.
func (t *Translator) ParseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, value, t.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return parsed, nil
}

func formatDate(value time.Time) string {
	return value.Format(dateLayout)
}

func (t *Translator) dateRange(repr DateRangeRepr) (models.DateRange, error) {
	from, err := t.parseDateTime(repr.DateFrom)
	if err != nil {
		return models.DateRange{}, err
	}
	var to *time.Time
	if repr.DateTo != nil {
		parsed, err := t.parseDateTime(*repr.DateTo)
		if err != nil {
			return models.DateRange{}, err
		}
		to = &parsed
	}
	return models.NewDateRange(from, to)
}

func (t *Translator) dateRangeRepr(r models.DateRange) DateRangeRepr {
	repr := DateRangeRepr{DateFrom: t.formatDateTime(r.From())}
	if to := r.To(); to != nil {
		formatted := t.formatDateTime(*to)
		repr.DateTo = &formatted
	}
	return repr
}
