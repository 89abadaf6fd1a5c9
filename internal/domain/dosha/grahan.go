package dosha

import (
	"fmt"

	"jyotish-backend/internal/domain/chart"
)

// NameGrahan identifies the nodal-house / eclipse-conjunction pattern.
const NameGrahan = "grahan"

// grahanOrb is the orb for a luminary-node conjunction.
const grahanOrb = 12.0

// grahanHouses are the placements where a node alone raises the pattern.
var grahanHouses = []int{1, 5, 7, 8, 12}

// GrahanDetector detects the nodal-house pattern: a lunar node conjunct a
// luminary (the natal echo of an eclipse) or occupying a sensitive house.
type GrahanDetector struct{}

// Name returns the pattern identifier.
func (GrahanDetector) Name() string { return NameGrahan }

// Detect runs the shared detector protocol for the nodal pattern.
func (d GrahanDetector) Detect(c *chart.Chart, th Thresholds) Result {
	_, okRahu := c.Position(chart.Rahu)
	_, okKetu := c.Position(chart.Ketu)
	if !okRahu && !okKetu {
		return absent(NameGrahan, "chart carries neither node; at least 1 required, 0 found")
	}

	sunRahu := conjunct(c, chart.Sun, chart.Rahu, grahanOrb)
	sunKetu := conjunct(c, chart.Sun, chart.Ketu, grahanOrb)
	moonRahu := conjunct(c, chart.Moon, chart.Rahu, grahanOrb)
	moonKetu := conjunct(c, chart.Moon, chart.Ketu, grahanOrb)
	eclipseContact := sunRahu || sunKetu || moonRahu || moonKetu

	nodeInSensitiveHouse := inHouses(c, chart.Rahu, grahanHouses...) ||
		inHouses(c, chart.Ketu, grahanHouses...)

	if !eclipseContact && !nodeInSensitiveHouse {
		return absent(NameGrahan,
			fmt.Sprintf("no luminary within %.0f degrees of a node and no node in houses %v", grahanOrb, grahanHouses))
	}

	rules := []Rule{
		{
			Name:   "sun conjunct rahu",
			Weight: 2.0,
			When:   func(c *chart.Chart) bool { return sunRahu },
		},
		{
			Name:   "sun conjunct ketu",
			Weight: 1.5,
			When:   func(c *chart.Chart) bool { return sunKetu },
		},
		{
			Name:   "moon conjunct rahu",
			Weight: 2.0,
			When:   func(c *chart.Chart) bool { return moonRahu },
		},
		{
			Name:   "moon conjunct ketu",
			Weight: 1.5,
			When:   func(c *chart.Chart) bool { return moonKetu },
		},
		{
			Name:   "tight eclipse contact",
			Weight: 1.0,
			When: func(c *chart.Chart) bool {
				return conjunct(c, chart.Sun, chart.Rahu, 3) || conjunct(c, chart.Sun, chart.Ketu, 3) ||
					conjunct(c, chart.Moon, chart.Rahu, 3) || conjunct(c, chart.Moon, chart.Ketu, 3)
			},
		},
		{
			Name:   "rahu in a sensitive house",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Rahu, grahanHouses...) },
		},
		{
			Name:   "ketu in a sensitive house",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Ketu, grahanHouses...) },
		},
	}

	intensity, indicators := scoreRules(c, 3, rules)
	return Result{
		Name:       NameGrahan,
		Present:    true,
		Intensity:  intensity,
		Level:      th.Classify(intensity),
		Indicators: indicators,
		Effects: []string{
			"Emotional turbulence around eclipse seasons",
			"Phases of obscured clarity in decision making",
			"Strong dreams and restless sleep",
		},
		Remedies: remediesFor(NameGrahan, intensity),
	}
}
