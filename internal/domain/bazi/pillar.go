package bazi

import (
	"fmt"
	"math"

	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/internal/domain/chart"
)

// Pillar is one stem-branch pair plus the 0..59 cycle index it came from.
// Pillars are only ever built from a cycle index (or from a stem/branch pair
// proven to share parity), so only the 60 valid combinations of the naive
// 120 can exist.
type Pillar struct {
	Stem       Stem   `json:"stem"`
	Branch     Branch `json:"branch"`
	CycleIndex int    `json:"cycleIndex"`
}

// String formats the pillar as "Stem-Branch".
func (p Pillar) String() string {
	return fmt.Sprintf("%s-%s", p.Stem.Name, p.Branch.Name)
}

// FourPillars is the full cycle record for a birth moment.
type FourPillars struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// epochYear is the cycle-zero anchor: year 4 CE opened a sexagenary cycle
// (Jia-Zi), which makes 1984 and 2044 Jia-Zi years as well.
const epochYear = 4

// lichunLongitude is the solar ecliptic longitude of Lichun, the solar-term
// boundary that opens the first month (the Yin month) of the sexagenary year.
const lichunLongitude = 315.0

// dayEpochOffset aligns the Julian Day Number sequence with the day cycle so
// that the cycle index advances one step per civil day.
const dayEpochOffset = 49

// pillarFromIndex builds a pillar from a 0..59 cycle index. Both components
// derive from the one index, which structurally guarantees matching parity.
func pillarFromIndex(idx int) Pillar {
	idx = ((idx % CycleLength) + CycleLength) % CycleLength
	return Pillar{
		Stem:       Stems[idx%10],
		Branch:     Branches[idx%12],
		CycleIndex: idx,
	}
}

// cycleIndexOf recovers the cycle index of a stem/branch pair. The pair must
// share parity (it always does when produced by the stem-seeding rules); a
// mismatched pair has no index and reports ok=false.
func cycleIndexOf(stemIdx, branchIdx int) (int, bool) {
	if stemIdx%2 != branchIdx%2 {
		return 0, false
	}
	for idx := stemIdx; idx < CycleLength; idx += 10 {
		if idx%12 == branchIdx {
			return idx, true
		}
	}
	return 0, false
}

// pillarFromPair builds a pillar from seeded stem and branch indexes. It
// panics on a parity mismatch: the seeding rules cannot produce one, so a
// mismatch is an arithmetic defect, not an input error.
func pillarFromPair(stemIdx, branchIdx int) Pillar {
	idx, ok := cycleIndexOf(stemIdx%10, branchIdx%12)
	if !ok {
		panic(fmt.Sprintf("bazi: stem %d and branch %d have mismatched parity", stemIdx, branchIdx))
	}
	return pillarFromIndex(idx)
}

// YearPillar returns the pillar of a calendar year. Two years exactly 60
// apart share a pillar.
func YearPillar(year int) Pillar {
	return pillarFromIndex(int(astro.Mod(float64(year-epochYear), CycleLength)))
}

// monthsSinceLichun counts completed solar months since the Lichun boundary,
// 0..11, from the Sun's ecliptic longitude.
func monthsSinceLichun(solarLongitude float64) int {
	return int(astro.Mod(solarLongitude-lichunLongitude, 360) / 30)
}

// MonthPillar returns the month pillar for a Julian Day. The branch follows
// the solar-term month (Yin opens the year at Lichun); the stem follows the
// five-tigers rule seeded by the year stem.
func MonthPillar(jd float64, yearStemIdx int) Pillar {
	monthIdx := monthsSinceLichun(astro.SolarEclipticLongitude(jd))
	branchIdx := (monthIdx + 2) % 12 // Yin is branch index 2
	stemIdx := ((yearStemIdx%5)*2 + 2 + monthIdx) % 10
	return pillarFromPair(stemIdx, branchIdx)
}

// DayPillar returns the day pillar for a Julian Day. The civil day is the
// Julian Day Number (noon-anchored), offset to align with the day cycle; the
// index advances exactly one step per day.
func DayPillar(jd float64) Pillar {
	jdn := int(math.Floor(jd + 0.5))
	return pillarFromIndex(int(astro.Mod(float64(jdn+dayEpochOffset), CycleLength)))
}

// HourPillar returns the hour pillar for a local hour 0-23. Each branch
// spans two hours with Zi straddling midnight (23:00-00:59); the stem
// follows the five-rats rule seeded by the day stem.
func HourPillar(hour int, dayStemIdx int) Pillar {
	branchIdx := ((hour + 1) / 2) % 12
	stemIdx := ((dayStemIdx%5)*2 + branchIdx) % 10
	return pillarFromPair(stemIdx, branchIdx)
}

// Compute derives the full four-pillar record for a birth moment. The year
// pillar respects the solar year: a date after New Year's Day but before
// Lichun still belongs to the previous sexagenary year.
func Compute(m chart.BirthMoment) (FourPillars, error) {
	jd, err := m.JulianDay()
	if err != nil {
		return FourPillars{}, err
	}

	solarLongitude := astro.SolarEclipticLongitude(jd)

	year := m.Year()
	// Between the winter solstice and Lichun the Sun runs 270..315 degrees;
	// a January or early-February date in that window precedes the solar
	// new year.
	if m.Month() <= 2 && solarLongitude >= 270 && solarLongitude < lichunLongitude {
		year--
	}

	yearPillar := YearPillar(year)
	dayPillar := DayPillar(jd)

	return FourPillars{
		Year:  yearPillar,
		Month: MonthPillar(jd, yearPillar.CycleIndex%10),
		Day:   dayPillar,
		Hour:  HourPillar(m.Hour(), dayPillar.CycleIndex%10),
	}, nil
}
