package dosha

import (
	"fmt"

	"jyotish-backend/internal/domain/chart"
)

// NameManglik identifies the Mars placement pattern.
const NameManglik = "manglik"

// manglikHouses are the placements from the ascendant that raise the
// pattern, with the weight each carries. The seventh and eighth bear most on
// partnership, the pattern's traditional focus.
var manglikHouses = map[int]float64{
	1:  1.5,
	2:  0.5,
	4:  1.0,
	7:  2.0,
	8:  2.5,
	12: 1.0,
}

// ManglikDetector detects the Mars placement pattern: Mars in houses
// 1, 2, 4, 7, 8 or 12 from the ascendant.
type ManglikDetector struct{}

// Name returns the pattern identifier.
func (ManglikDetector) Name() string { return NameManglik }

// Detect runs the shared detector protocol for the Mars pattern.
func (d ManglikDetector) Detect(c *chart.Chart, th Thresholds) Result {
	house, ok := c.HouseOfBody(chart.Mars)
	if !ok {
		return absent(NameManglik, "chart missing mars; 1 body required, 0 found")
	}

	houseWeight, afflicting := manglikHouses[house]
	if !afflicting {
		return absent(NameManglik,
			fmt.Sprintf("mars occupies house %d; houses 1, 2, 4, 7, 8 or 12 required", house))
	}

	rules := []Rule{
		{
			Name:   fmt.Sprintf("mars in house %d", house),
			Weight: houseWeight,
			When:   func(c *chart.Chart) bool { return true },
		},
		{
			Name:   "mars conjunct saturn",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return conjunct(c, chart.Mars, chart.Saturn, 8) },
		},
		{
			Name:   "mars conjunct rahu",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return conjunct(c, chart.Mars, chart.Rahu, 8) },
		},
		{
			Name:   "mars retrograde",
			Weight: 0.5,
			When: func(c *chart.Chart) bool {
				pos, ok := c.Position(chart.Mars)
				return ok && pos.Retrograde
			},
		},
	}

	intensity, indicators := scoreRules(c, 4, rules)
	return Result{
		Name:       NameManglik,
		Present:    true,
		Intensity:  intensity,
		Level:      th.Classify(intensity),
		Indicators: indicators,
		Effects: []string{
			"Friction and delay in partnerships",
			"Impulsive expenditure of energy",
			"Strong drive once channeled into discipline",
		},
		Remedies: remediesFor(NameManglik, intensity),
	}
}
