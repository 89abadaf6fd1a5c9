package dosha

import (
	"fmt"

	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/internal/domain/chart"
)

// NameKalaSarpa identifies the nodal-axis hemming pattern.
const NameKalaSarpa = "kala_sarpa"

// nodalAxisOrb is the orb within which the ascendant counts as sitting on
// the Rahu-Ketu axis.
const nodalAxisOrb = 10.0

// KalaSarpaDetector detects the nodal-axis pattern: all seven classical
// planets hemmed within one arc of the Rahu-Ketu axis.
type KalaSarpaDetector struct{}

// Name returns the pattern identifier.
func (KalaSarpaDetector) Name() string { return NameKalaSarpa }

// Detect runs the precondition, scoring, classification and remedy steps.
func (d KalaSarpaDetector) Detect(c *chart.Chart, th Thresholds) Result {
	rahu, okRahu := c.Position(chart.Rahu)
	ketu, okKetu := c.Position(chart.Ketu)
	if !okRahu || !okKetu {
		return absent(NameKalaSarpa, "chart carries no nodal axis (rahu/ketu missing)")
	}

	// Count the classical planets on each side of the axis. The arc tests
	// must be wraparound-correct; the axis rarely sits conveniently inside
	// [0,360).
	var forward, backward, found int
	for _, body := range chart.ClassicalPlanets {
		pos, ok := c.Position(body)
		if !ok {
			continue
		}
		found++
		if astro.ArcContains(pos.Longitude, rahu.Longitude, ketu.Longitude) {
			forward++
		}
		if astro.ArcContains(pos.Longitude, ketu.Longitude, rahu.Longitude) {
			backward++
		}
	}

	required := len(chart.ClassicalPlanets)
	if found < required {
		return absent(NameKalaSarpa,
			fmt.Sprintf("only %d of %d classical planets present in chart", found, required))
	}
	hemmed := forward
	if backward > hemmed {
		hemmed = backward
	}
	if forward != required && backward != required {
		return absent(NameKalaSarpa,
			fmt.Sprintf("%d of %d planets within the nodal arc; all %d required", hemmed, required, required))
	}

	rules := []Rule{
		{
			Name:   "ascendant on nodal axis",
			Weight: 1.5,
			When: func(c *chart.Chart) bool {
				asc := c.Ascendant()
				return angularSeparation(asc, rahu.Longitude) <= nodalAxisOrb ||
					angularSeparation(asc, ketu.Longitude) <= nodalAxisOrb
			},
		},
		{
			Name:   "moon conjunct rahu",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return conjunct(c, chart.Moon, chart.Rahu, 5) },
		},
		{
			Name:   "sun conjunct rahu",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return conjunct(c, chart.Sun, chart.Rahu, 5) },
		},
		{
			Name:   "rahu in difficult house",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Rahu, dusthanas...) },
		},
		{
			Name:   "saturn within the hemmed arc in a difficult house",
			Weight: 0.5,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Saturn, dusthanas...) },
		},
	}

	intensity, indicators := scoreRules(c, 5, rules)
	return Result{
		Name:       NameKalaSarpa,
		Present:    true,
		Intensity:  intensity,
		Level:      th.Classify(intensity),
		Indicators: indicators,
		Effects: []string{
			"Periods of sudden obstruction followed by sudden release",
			"Delays in career and family milestones",
			"Heightened intuition under pressure",
		},
		Remedies: remediesFor(NameKalaSarpa, intensity),
	}
}
