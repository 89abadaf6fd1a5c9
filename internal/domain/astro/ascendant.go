package astro

import "math"

// Obliquity returns the mean obliquity of the ecliptic in degrees.
func Obliquity(jd float64) float64 {
	t := (jd - J2000) / 36525
	return 23.4392911 - 0.0130042*t
}

// Ascendant returns the tropical ecliptic longitude rising on the eastern
// horizon, in degrees, for a Julian Day and geographic coordinate (latitude
// north positive, longitude east positive).
func Ascendant(jd, latitude, longitude float64) float64 {
	ramc := Radians(SiderealTime(jd, longitude))
	eps := Radians(Obliquity(jd))
	phi := Radians(latitude)

	asc := math.Atan2(
		math.Cos(ramc),
		-(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)),
	)
	return NormalizeAngle(Degrees(asc))
}

// SiderealAscendant returns the ascendant shifted into the sidereal frame.
func SiderealAscendant(jd, latitude, longitude float64) float64 {
	return NormalizeAngle(Ascendant(jd, latitude, longitude) - Ayanamsa(jd))
}
