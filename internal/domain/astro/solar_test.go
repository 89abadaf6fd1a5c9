package astro

import (
	"math"
	"testing"
)

func mustJD(t *testing.T, y, m, d, h, min int, s float64) float64 {
	t.Helper()
	jd, err := CalendarToJulianDay(y, m, d, h, min, s)
	if err != nil {
		t.Fatalf("CalendarToJulianDay: %v", err)
	}
	return jd
}

func TestSolarEclipticLongitude_SeasonalAnchors(t *testing.T) {
	// The Sun's apparent longitude hits 0/90/180/270 at the equinoxes and
	// solstices. The low-order series should land within a degree.
	tests := []struct {
		name string
		jd   float64
		want float64
	}{
		{name: "march equinox 2000", jd: mustJD(t, 2000, 3, 20, 7, 35, 0), want: 0},
		{name: "june solstice 2000", jd: mustJD(t, 2000, 6, 21, 1, 48, 0), want: 90},
		{name: "september equinox 2000", jd: mustJD(t, 2000, 9, 22, 17, 28, 0), want: 180},
		{name: "december solstice 2000", jd: mustJD(t, 2000, 12, 21, 13, 37, 0), want: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolarEclipticLongitude(tt.jd)
			if AngularDistance(got, tt.want) > 1.0 {
				t.Errorf("SolarEclipticLongitude(%v) = %v, want within 1 degree of %v", tt.jd, got, tt.want)
			}
		})
	}
}

func TestSolarEclipticLongitude_Normalized(t *testing.T) {
	for _, jd := range []float64{J2000 - 40000, J2000, J2000 + 12345.678} {
		got := SolarEclipticLongitude(jd)
		if got < 0 || got >= 360 {
			t.Errorf("SolarEclipticLongitude(%v) = %v out of [0,360)", jd, got)
		}
	}
}

func TestSiderealTime(t *testing.T) {
	// GMST at the J2000 epoch is about 280.46 degrees.
	got := SiderealTime(J2000, 0)
	if AngularDistance(got, 280.46) > 0.01 {
		t.Errorf("SiderealTime(J2000, 0) = %v, want about 280.46", got)
	}

	// Local sidereal time is offset by the geographic longitude.
	east := SiderealTime(J2000, 77.2)
	if AngularDistance(east, NormalizeAngle(got+77.2)) > 1e-6 {
		t.Errorf("SiderealTime longitude offset wrong: %v vs %v", east, got)
	}
}

func TestAyanamsa_IncreasesSlowly(t *testing.T) {
	a2000 := Ayanamsa(J2000)
	if math.Abs(a2000-23.85) > 0.01 {
		t.Errorf("Ayanamsa(J2000) = %v, want about 23.85", a2000)
	}

	a2050 := Ayanamsa(J2000 + 50*365.25)
	// ~50.27 arcseconds per year of precession.
	if a2050 <= a2000 || a2050-a2000 > 1 {
		t.Errorf("Ayanamsa drift over 50 years = %v, want small positive", a2050-a2000)
	}
}
