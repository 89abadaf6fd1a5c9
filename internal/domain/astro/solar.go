package astro

import (
	"math"
)

// SolarEclipticLongitude returns the apparent ecliptic longitude of the Sun
// in degrees for the given Julian Day. Low-order series: mean longitude plus
// the equation of center (terms in M, 2M, 3M) with an aberration correction.
// Accurate to well under a degree near the J2000 epoch, which is all the
// downstream engines need.
func SolarEclipticLongitude(jd float64) float64 {
	t := (jd - J2000) / 36525 // Julian centuries since J2000

	meanLongitude := 280.46646 + 36000.76983*t + 0.0003032*t*t
	meanAnomaly := 357.52911 + 35999.05029*t - 0.0001537*t*t

	m := Radians(meanAnomaly)
	center := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	trueLongitude := meanLongitude + center

	// Aberration and an approximate nutation term give the apparent place.
	omega := Radians(125.04 - 1934.136*t)
	apparent := trueLongitude - 0.00569 - 0.00478*math.Sin(omega)

	return NormalizeAngle(apparent)
}

// SiderealTime returns the local sidereal time in degrees for the given
// Julian Day and geographic longitude (east positive).
func SiderealTime(jd, geographicLongitude float64) float64 {
	t := (jd - J2000) / 36525

	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000

	return NormalizeAngle(gmst + geographicLongitude)
}

// Ayanamsa returns the Lahiri-style angular offset between the tropical and
// sidereal zodiac reference frames, in degrees. Linear approximation around
// J2000 (23.85 deg, precessing ~50.3 arcsec/year).
func Ayanamsa(jd float64) float64 {
	years := (jd - J2000) / 365.25
	return 23.85 + years*(50.27/3600)
}
