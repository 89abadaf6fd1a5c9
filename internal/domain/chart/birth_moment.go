package chart

import (
	"fmt"

	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/pkg/errors"
)

// BirthMoment is a validated calendar moment. Immutable once constructed;
// all field validation happens here so downstream conversion never re-checks.
type BirthMoment struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second float64
	// utcOffsetMinutes shifts the local civil time to UTC. Zero means the
	// moment is already UTC.
	utcOffsetMinutes int
}

// NewBirthMoment creates a BirthMoment, validating every field including
// calendar-correct day-of-month (leap years included).
func NewBirthMoment(year, month, day, hour, minute int, second float64, utcOffsetMinutes int) (BirthMoment, error) {
	if year < astro.MinYear || year > astro.MaxYear {
		return BirthMoment{}, errors.NewValidationf("year", "must be between %d and %d, got %d", astro.MinYear, astro.MaxYear, year)
	}
	if month < 1 || month > 12 {
		return BirthMoment{}, errors.NewValidationf("month", "must be between 1 and 12, got %d", month)
	}
	if maxDay := astro.DaysInMonth(year, month); day < 1 || day > maxDay {
		return BirthMoment{}, errors.NewValidationf("day", "must be between 1 and %d for %d-%02d, got %d", maxDay, year, month, day)
	}
	if hour < 0 || hour >= 24 {
		return BirthMoment{}, errors.NewValidationf("hour", "must be between 0 and 23, got %d", hour)
	}
	if minute < 0 || minute >= 60 {
		return BirthMoment{}, errors.NewValidationf("minute", "must be between 0 and 59, got %d", minute)
	}
	if second < 0 || second >= 60 {
		return BirthMoment{}, errors.NewValidationf("second", "must be in [0, 60), got %g", second)
	}
	if utcOffsetMinutes < -14*60 || utcOffsetMinutes > 14*60 {
		return BirthMoment{}, errors.NewValidationf("utcOffsetMinutes", "must be between -840 and 840, got %d", utcOffsetMinutes)
	}

	return BirthMoment{
		year:             year,
		month:            month,
		day:              day,
		hour:             hour,
		minute:           minute,
		second:           second,
		utcOffsetMinutes: utcOffsetMinutes,
	}, nil
}

// Year returns the calendar year.
func (m BirthMoment) Year() int { return m.year }

// Month returns the calendar month (1-12).
func (m BirthMoment) Month() int { return m.month }

// Day returns the day of month.
func (m BirthMoment) Day() int { return m.day }

// Hour returns the hour of day (0-23), local civil time.
func (m BirthMoment) Hour() int { return m.hour }

// Minute returns the minute.
func (m BirthMoment) Minute() int { return m.minute }

// Second returns the second, possibly fractional.
func (m BirthMoment) Second() float64 { return m.second }

// UTCOffsetMinutes returns the offset from UTC in minutes.
func (m BirthMoment) UTCOffsetMinutes() int { return m.utcOffsetMinutes }

// JulianDay converts the moment to a Julian Day in UTC. The UTC offset is
// applied as a fractional-day shift after the calendar conversion, so a local
// moment near midnight lands on the correct astronomical day.
func (m BirthMoment) JulianDay() (float64, error) {
	jd, err := astro.CalendarToJulianDay(m.year, m.month, m.day, m.hour, m.minute, m.second)
	if err != nil {
		return 0, err
	}
	return jd - float64(m.utcOffsetMinutes)/1440, nil
}

// String formats the moment for logging.
func (m BirthMoment) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%06.3f (UTC%+d)",
		m.year, m.month, m.day, m.hour, m.minute, m.second, m.utcOffsetMinutes/60)
}
