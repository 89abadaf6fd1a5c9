package astro

import (
	"math"
	"testing"
)

func TestAscendant_EquatorQuadrants(t *testing.T) {
	// At the equator the rising point sits 90 degrees of right ascension
	// east of the meridian. Pick instants where the local sidereal time is
	// known and check the quadrant relationship holds.
	jd := J2000

	for lon := -180.0; lon <= 180; lon += 45 {
		asc := Ascendant(jd, 0, lon)
		if asc < 0 || asc >= 360 {
			t.Fatalf("ascendant %v not normalized at lon %v", asc, lon)
		}
		// A quarter day later the ascendant must have advanced roughly a
		// quarter of the zodiac; exact amount varies with obliquity.
		later := Ascendant(jd+0.25, 0, lon)
		advance := Mod(later-asc, 360)
		if advance < 60 || advance > 120 {
			t.Errorf("six sidereal hours advanced the ascendant by %v degrees at lon %v", advance, lon)
		}
	}
}

func TestAscendant_LatitudeShiftsRisingPoint(t *testing.T) {
	jd := 2460310.5 // 2024-01-01 00:00 UTC
	equator := Ascendant(jd, 0, 0)
	north := Ascendant(jd, 50, 0)
	if math.Abs(NormalizeAngle(equator)-NormalizeAngle(north)) < 1e-9 {
		t.Error("latitude must influence the ascendant")
	}
}

func TestSiderealAscendant_OffsetByAyanamsa(t *testing.T) {
	jd := 2451545.0
	tropical := Ascendant(jd, 28.6, 77.2)
	sidereal := SiderealAscendant(jd, 28.6, 77.2)
	diff := Mod(tropical-sidereal, 360)
	if math.Abs(diff-Ayanamsa(jd)) > 1e-9 {
		t.Errorf("sidereal ascendant must trail the tropical by the ayanamsa: diff %v, ayanamsa %v", diff, Ayanamsa(jd))
	}
}

func TestObliquity_NearJ2000(t *testing.T) {
	if eps := Obliquity(J2000); math.Abs(eps-23.4392911) > 1e-9 {
		t.Errorf("obliquity at J2000 = %v", eps)
	}
}
