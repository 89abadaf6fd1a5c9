package astro

import (
	"math"

	"jyotish-backend/pkg/errors"
)

// J2000 is the Julian Day of the standard J2000.0 epoch
// (2000 January 1, 12:00 TT).
const J2000 = 2451545.0

// Calendar bounds accepted by CalendarToJulianDay. Year -4712 is JD 0.
const (
	MinYear = -4712
	MaxYear = 9999
)

// CalendarToJulianDay converts a calendar moment to a Julian Day. Dates from
// 1582-10-15 onward are read as Gregorian, earlier dates as Julian, matching
// the historical switchover and the inverse conversion. The fractional part
// of the result encodes the time of day. Field ranges are validated;
// out-of-range input returns a validation error naming the field.
func CalendarToJulianDay(year, month, day int, hour, minute int, second float64) (float64, error) {
	if year < MinYear || year > MaxYear {
		return 0, errors.NewValidationf("year", "must be between %d and %d, got %d", MinYear, MaxYear, year)
	}
	if month < 1 || month > 12 {
		return 0, errors.NewValidationf("month", "must be between 1 and 12, got %d", month)
	}
	if day < 1 || day > 31 {
		return 0, errors.NewValidationf("day", "must be between 1 and 31, got %d", day)
	}
	if hour < 0 || hour >= 24 {
		return 0, errors.NewValidationf("hour", "must be between 0 and 23, got %d", hour)
	}
	if minute < 0 || minute >= 60 {
		return 0, errors.NewValidationf("minute", "must be between 0 and 59, got %d", minute)
	}
	if second < 0 || second >= 60 {
		return 0, errors.NewValidationf("second", "must be in [0, 60), got %g", second)
	}

	y := year
	m := month
	// January and February count as months 13 and 14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian century correction; zero in the Julian calendar, which
	// covers everything before the 1582-10-15 switchover.
	b := 0.0
	if year > 1582 || (year == 1582 && (month > 10 || (month == 10 && day >= 15))) {
		a := math.Floor(float64(y) / 100)
		b = 2 - a + math.Floor(a/4)
	}

	jd := math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*(float64(m)+1)) +
		float64(day) + b - 1524.5

	dayFraction := (float64(hour) + float64(minute)/60 + second/3600) / 24
	return jd + dayFraction, nil
}

// JulianDayToCalendar converts a Julian Day back to calendar fields, Julian
// before the 1582-10-15 switchover (JD 2299160.5) and Gregorian after. It is
// the inverse of CalendarToJulianDay to within one second: seconds are
// rounded to the nearest whole second to absorb floating point residue from
// the day-fraction arithmetic.
func JulianDayToCalendar(jd float64) (year, month, day, hour, minute int, second float64) {
	jd += 0.5
	z := math.Floor(jd)
	f := jd - z

	// Round the day fraction to whole seconds before splitting it up, so a
	// value like 11:59:59.9999987 comes back as 12:00:00. Rounding can carry
	// into the next day; pushing the carry into z keeps the calendar math
	// correct across month and year boundaries.
	totalSeconds := math.Round(f * 86400)
	if totalSeconds >= 86400 {
		totalSeconds -= 86400
		z++
	}

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	hour = int(totalSeconds) / 3600
	minute = (int(totalSeconds) % 3600) / 60
	second = totalSeconds - float64(hour*3600) - float64(minute*60)
	return year, month, day, hour, minute, second
}

// IsLeapYear reports whether a Gregorian year is a leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month of the given
// Gregorian year.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}
