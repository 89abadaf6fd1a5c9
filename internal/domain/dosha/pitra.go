package dosha

import (
	"fmt"

	"jyotish-backend/internal/domain/chart"
)

// NamePitra identifies the ancestral-affliction pattern.
const NamePitra = "pitra"

// pitraOrb is the conjunction orb for an afflicted Sun.
const pitraOrb = 8.0

// ninthHouseAfflictors are the malefics whose ninth-house presence raises
// the pattern.
var ninthHouseAfflictors = []chart.Body{chart.Saturn, chart.Rahu, chart.Ketu}

// PitraDetector detects the ancestral-affliction pattern: the ninth house
// (ancestors, dharma) occupied by hard malefics, or the Sun afflicted there.
type PitraDetector struct{}

// Name returns the pattern identifier.
func (PitraDetector) Name() string { return NamePitra }

// Detect runs the shared detector protocol for the ancestral pattern.
func (d PitraDetector) Detect(c *chart.Chart, th Thresholds) Result {
	var afflictors []chart.Body
	for _, body := range ninthHouseAfflictors {
		if inHouses(c, body, 9) {
			afflictors = append(afflictors, body)
		}
	}

	sunInNinth := inHouses(c, chart.Sun, 9)
	sunAfflicted := sunInNinth &&
		(conjunct(c, chart.Sun, chart.Rahu, pitraOrb) ||
			conjunct(c, chart.Sun, chart.Ketu, pitraOrb) ||
			conjunct(c, chart.Sun, chart.Saturn, pitraOrb))

	if len(afflictors) == 0 && !sunAfflicted {
		return absent(NamePitra,
			fmt.Sprintf("0 of %d afflictors occupy the ninth house and the Sun is unafflicted there",
				len(ninthHouseAfflictors)))
	}

	rules := []Rule{
		{
			Name:   "saturn occupies the ninth house",
			Weight: 1.5,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Saturn, 9) },
		},
		{
			Name:   "rahu occupies the ninth house",
			Weight: 1.5,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Rahu, 9) },
		},
		{
			Name:   "ketu occupies the ninth house",
			Weight: 1.5,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Ketu, 9) },
		},
		{
			Name:   "sun afflicted in the ninth house",
			Weight: 2.0,
			When:   func(c *chart.Chart) bool { return sunAfflicted },
		},
		{
			Name:   "sun tightly conjunct rahu",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return conjunct(c, chart.Sun, chart.Rahu, 3) },
		},
		{
			Name:   "moon in a difficult house",
			Weight: 0.5,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Moon, dusthanas...) },
		},
	}

	intensity, indicators := scoreRules(c, 3, rules)
	return Result{
		Name:       NamePitra,
		Present:    true,
		Intensity:  intensity,
		Level:      th.Classify(intensity),
		Indicators: indicators,
		Effects: []string{
			"Recurring obstacles in family undertakings",
			"Strained relations with father or elders",
			"Delayed recognition despite effort",
		},
		Remedies: remediesFor(NamePitra, intensity),
	}
}
