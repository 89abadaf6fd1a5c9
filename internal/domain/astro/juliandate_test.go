package astro

import (
	"math"
	"testing"

	"jyotish-backend/pkg/errors"
)

func TestCalendarToJulianDay_KnownEpochs(t *testing.T) {
	tests := []struct {
		name                            string
		year, month, day, hour, minute  int
		second                          float64
		want                            float64
	}{
		{name: "J2000 epoch", year: 2000, month: 1, day: 1, hour: 12, want: 2451545.0},
		{name: "sputnik launch", year: 1957, month: 10, day: 4, hour: 19, minute: 26, second: 24, want: 2436116.31},
		{name: "midnight start of 2024", year: 2024, month: 1, day: 1, want: 2460310.5},
		{name: "julian era anchor", year: 333, month: 1, day: 27, hour: 12, want: 1842713.0},
		{name: "epoch origin", year: -4712, month: 1, day: 1, hour: 12, want: 0.0},
		{name: "last julian day", year: 1582, month: 10, day: 4, want: 2299159.5},
		{name: "first gregorian day", year: 1582, month: 10, day: 15, want: 2299160.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalendarToJulianDay(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("CalendarToJulianDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalendarToJulianDay_Validation(t *testing.T) {
	tests := []struct {
		name                           string
		year, month, day, hour, minute int
		second                         float64
		wantField                      string
	}{
		{name: "year too small", year: -5000, month: 1, day: 1, wantField: "year"},
		{name: "year too large", year: 10000, month: 1, day: 1, wantField: "year"},
		{name: "month zero", year: 2024, month: 0, day: 1, wantField: "month"},
		{name: "month thirteen", year: 2024, month: 13, day: 1, wantField: "month"},
		{name: "day zero", year: 2024, month: 1, day: 0, wantField: "day"},
		{name: "day thirty-two", year: 2024, month: 1, day: 32, wantField: "day"},
		{name: "hour negative", year: 2024, month: 1, day: 1, hour: -1, wantField: "hour"},
		{name: "hour twenty-four", year: 2024, month: 1, day: 1, hour: 24, wantField: "hour"},
		{name: "minute sixty", year: 2024, month: 1, day: 1, minute: 60, wantField: "minute"},
		{name: "second sixty", year: 2024, month: 1, day: 1, second: 60, wantField: "second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalendarToJulianDay(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			if got := errors.FieldOf(err); got != tt.wantField {
				t.Errorf("error field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestJulianDay_RoundTrip(t *testing.T) {
	tests := []struct {
		name                           string
		year, month, day, hour, minute int
		second                         float64
	}{
		{name: "J2000 noon", year: 2000, month: 1, day: 1, hour: 12},
		{name: "leap day", year: 2024, month: 2, day: 29, hour: 23, minute: 59, second: 59},
		{name: "century non-leap", year: 1900, month: 2, day: 28, hour: 6, minute: 30},
		{name: "century leap", year: 2000, month: 2, day: 29, hour: 0, minute: 0, second: 1},
		{name: "year end", year: 1999, month: 12, day: 31, hour: 23, minute: 59, second: 59},
		{name: "early morning", year: 1985, month: 7, day: 14, hour: 3, minute: 45, second: 30},
		{name: "distant past", year: 1600, month: 6, day: 15, hour: 18},
		{name: "distant future", year: 3000, month: 11, day: 5, hour: 9, minute: 15},
		{name: "medieval", year: 1000, month: 1, day: 1, hour: 12},
		{name: "eve of switchover", year: 1582, month: 10, day: 4, hour: 23, minute: 59, second: 59},
		{name: "first day after switchover", year: 1582, month: 10, day: 15},
		{name: "late antiquity", year: 500, month: 6, day: 15, hour: 6},
		{name: "bce", year: -1000, month: 3, day: 10, hour: 18},
		{name: "epoch origin", year: -4712, month: 1, day: 1, hour: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd, err := CalendarToJulianDay(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			y, m, d, h, min, s := JulianDayToCalendar(jd)
			if y != tt.year || m != tt.month || d != tt.day {
				t.Errorf("date round-trip = %d-%02d-%02d, want %d-%02d-%02d", y, m, d, tt.year, tt.month, tt.day)
			}
			if h != tt.hour || min != tt.minute || math.Abs(s-tt.second) > 1.0 {
				t.Errorf("time round-trip = %02d:%02d:%05.2f, want %02d:%02d:%05.2f",
					h, min, s, tt.hour, tt.minute, tt.second)
			}
		})
	}
}

func TestJulianDayToCalendar_MidnightRollover(t *testing.T) {
	// A hair under midnight of Jan 1 must round into Jan 1, not Dec 32.
	jd, err := CalendarToJulianDay(2023, 12, 31, 23, 59, 59)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Push to within half a second of midnight.
	jd += 0.9 / 86400

	y, m, d, h, min, _ := JulianDayToCalendar(jd)
	if y != 2024 || m != 1 || d != 1 || h != 0 || min != 0 {
		t.Errorf("rollover = %d-%02d-%02d %02d:%02d, want 2024-01-01 00:00", y, m, d, h, min)
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{1900, false},
		{2000, true},
		{1600, true},
		{2100, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, 2); got != 29 {
		t.Errorf("DaysInMonth(2024, 2) = %d, want 29", got)
	}
	if got := DaysInMonth(2023, 2); got != 28 {
		t.Errorf("DaysInMonth(2023, 2) = %d, want 28", got)
	}
	if got := DaysInMonth(2023, 4); got != 30 {
		t.Errorf("DaysInMonth(2023, 4) = %d, want 30", got)
	}
	if got := DaysInMonth(2023, 12); got != 31 {
		t.Errorf("DaysInMonth(2023, 12) = %d, want 31", got)
	}
}
