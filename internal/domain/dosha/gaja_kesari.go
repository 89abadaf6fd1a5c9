package dosha

import (
	"fmt"

	"jyotish-backend/internal/domain/chart"
)

// NameGajaKesari identifies the benefic Jupiter-Moon yoga.
const NameGajaKesari = "gaja_kesari"

// GajaKesariDetector detects the benefic-conjunction yoga: Jupiter in a
// kendra (1, 4, 7, 10) counted from the Moon. Unlike the dosha families this
// pattern is favorable; intensity measures how strongly it manifests.
type GajaKesariDetector struct{}

// Name returns the pattern identifier.
func (GajaKesariDetector) Name() string { return NameGajaKesari }

// Detect runs the shared detector protocol for the yoga.
func (d GajaKesariDetector) Detect(c *chart.Chart, th Thresholds) Result {
	relative, ok := c.HouseFromBody(chart.Moon, chart.Jupiter)
	if !ok {
		return absent(NameGajaKesari, "chart missing moon or jupiter; 2 bodies required, fewer found")
	}

	isKendra := false
	for _, k := range kendras {
		if relative == k {
			isKendra = true
			break
		}
	}
	if !isKendra {
		return absent(NameGajaKesari,
			fmt.Sprintf("jupiter is %d houses from the moon; a kendra (1, 4, 7, 10) is required", relative))
	}

	rules := []Rule{
		{
			Name:   "jupiter exalted in cancer",
			Weight: 2.0,
			When: func(c *chart.Chart) bool {
				pos, ok := c.Position(chart.Jupiter)
				return ok && pos.Longitude >= 90 && pos.Longitude < 120
			},
		},
		{
			Name:   "jupiter in own sign",
			Weight: 1.5,
			When: func(c *chart.Chart) bool {
				pos, ok := c.Position(chart.Jupiter)
				if !ok {
					return false
				}
				// Sagittarius or Pisces.
				return (pos.Longitude >= 240 && pos.Longitude < 270) ||
					(pos.Longitude >= 330 && pos.Longitude < 360)
			},
		},
		{
			Name:   "jupiter angular from the ascendant",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return inHouses(c, chart.Jupiter, kendras...) },
		},
		{
			Name:   "venus supports jupiter",
			Weight: 1.0,
			When:   func(c *chart.Chart) bool { return conjunct(c, chart.Venus, chart.Jupiter, 10) },
		},
		{
			Name:   "jupiter clear of difficult houses",
			Weight: 0.5,
			When:   func(c *chart.Chart) bool { return !inHouses(c, chart.Jupiter, dusthanas...) },
		},
	}

	intensity, indicators := scoreRules(c, 4, rules)
	return Result{
		Name:       NameGajaKesari,
		Present:    true,
		Intensity:  intensity,
		Level:      th.Classify(intensity),
		Indicators: indicators,
		Effects: []string{
			"Lasting reputation and respect among peers",
			"Sound judgment in adversity",
			"Material comfort through learning",
		},
		Remedies: remediesFor(NameGajaKesari, intensity),
	}
}
