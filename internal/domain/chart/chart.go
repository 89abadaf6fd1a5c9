package chart

import (
	"math"

	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/pkg/errors"
)

// HouseCount is the fixed number of houses in a chart.
const HouseCount = 12

// Chart is the canonical in-memory birth chart: an ascendant, exactly twelve
// house cusps (first cusp equals the ascendant) and one position per body.
// The twelve-cusp invariant is enforced once here at construction; consumers
// never re-validate it.
type Chart struct {
	ascendant float64
	cusps     [HouseCount]float64
	positions map[Body]PlanetaryPosition
}

// NewChart assembles and validates a chart. Cusps and ascendant are
// normalized; positions for all required bodies must be present. A nil or
// short cusp slice, a missing required body, or a non-finite value is a
// validation error attributed to the offending field.
func NewChart(ascendant float64, cusps []float64, positions map[Body]PlanetaryPosition) (*Chart, error) {
	if math.IsNaN(ascendant) || math.IsInf(ascendant, 0) {
		return nil, errors.NewValidation("ascendant", "must be finite")
	}
	if len(cusps) != HouseCount {
		return nil, errors.NewValidationf("cusps", "chart requires exactly %d house cusps, got %d", HouseCount, len(cusps))
	}

	c := &Chart{
		ascendant: astro.NormalizeAngle(ascendant),
		positions: make(map[Body]PlanetaryPosition, len(positions)),
	}
	for i, cusp := range cusps {
		if math.IsNaN(cusp) || math.IsInf(cusp, 0) {
			return nil, errors.NewValidationf("cusps", "cusp %d must be finite", i+1)
		}
		c.cusps[i] = astro.NormalizeAngle(cusp)
	}
	if astro.AngularDistance(c.cusps[0], c.ascendant) > 1e-6 {
		return nil, errors.NewValidation("cusps", "first house cusp must equal the ascendant")
	}

	for body, pos := range positions {
		if math.IsNaN(pos.Longitude) || math.IsInf(pos.Longitude, 0) {
			return nil, errors.NewValidationf(string(body), "longitude must be finite")
		}
		pos.Longitude = astro.NormalizeAngle(pos.Longitude)
		c.positions[body] = pos
	}
	for _, body := range RequiredBodies {
		if _, ok := c.positions[body]; !ok {
			return nil, errors.NewValidationf(string(body), "required body missing from chart")
		}
	}

	return c, nil
}

// EqualHouseCusps derives twelve equal-house cusps from an ascendant, for
// callers that supply no cusp array of their own.
func EqualHouseCusps(ascendant float64) []float64 {
	cusps := make([]float64, HouseCount)
	for i := range cusps {
		cusps[i] = astro.NormalizeAngle(ascendant + float64(i)*30)
	}
	return cusps
}

// Ascendant returns the ascendant longitude.
func (c *Chart) Ascendant() float64 { return c.ascendant }

// Cusps returns a copy of the twelve house cusps.
func (c *Chart) Cusps() []float64 {
	out := make([]float64, HouseCount)
	copy(out, c.cusps[:])
	return out
}

// Position returns the position of a body and whether the chart carries it.
func (c *Chart) Position(body Body) (PlanetaryPosition, bool) {
	pos, ok := c.positions[body]
	return pos, ok
}

// Bodies returns the bodies present in the chart, in canonical order first
// so iteration is deterministic.
func (c *Chart) Bodies() []Body {
	out := make([]Body, 0, len(c.positions))
	seen := make(map[Body]bool, len(c.positions))
	for _, body := range AllBodies {
		if _, ok := c.positions[body]; ok {
			out = append(out, body)
			seen[body] = true
		}
	}
	for body := range c.positions {
		if !seen[body] {
			out = append(out, body)
		}
	}
	return out
}

// HouseOf maps an ecliptic longitude to a house number 1-12. The assignment
// is total and unambiguous across the 360/0 boundary: each house spans the
// half-open arc from its cusp to the next. A degenerate zero-span house would
// be an arithmetic defect upstream; the documented fallback is house 1.
func (c *Chart) HouseOf(longitude float64) int {
	l := astro.NormalizeAngle(longitude)
	for i := 0; i < HouseCount; i++ {
		from := c.cusps[i]
		to := c.cusps[(i+1)%HouseCount]
		span := astro.Mod(to-from, 360)
		if span == 0 {
			continue
		}
		if astro.Mod(l-from, 360) < span {
			return i + 1
		}
	}
	return 1
}

// HouseOfBody maps a body to its house; ok is false when the chart does not
// carry the body.
func (c *Chart) HouseOfBody(body Body) (int, bool) {
	pos, ok := c.positions[body]
	if !ok {
		return 0, false
	}
	return c.HouseOf(pos.Longitude), true
}

// HouseFromBody counts houses from a reference body's house to another
// body's house, 1-12 with 1 meaning "same house". This is the relative-house
// arithmetic yoga detectors use (e.g. "in a kendra from the Moon").
func (c *Chart) HouseFromBody(reference, target Body) (int, bool) {
	refHouse, ok := c.HouseOfBody(reference)
	if !ok {
		return 0, false
	}
	targetHouse, ok := c.HouseOfBody(target)
	if !ok {
		return 0, false
	}
	return ((targetHouse-refHouse)+HouseCount)%HouseCount + 1, true
}
