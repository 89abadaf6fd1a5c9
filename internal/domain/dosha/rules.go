package dosha

import (
	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/internal/domain/chart"
)

// angularSeparation is the shortest separation between two longitudes.
func angularSeparation(a, b float64) float64 {
	return astro.AngularDistance(a, b)
}

// Intensity bounds for a present pattern.
const (
	MinIntensity = 1.0
	MaxIntensity = 10.0
)

// Rule is one declarative contributing factor of a pattern's intensity: a
// predicate over the chart and the weight it adds when it holds. Keeping the
// factors as data separates scoring from chart construction and lets the
// evaluation loop be tested on its own.
type Rule struct {
	Name   string
	Weight float64
	When   func(c *chart.Chart) bool
}

// scoreRules evaluates the rules against the chart, summing base plus every
// matched weight, clamped to [MinIntensity, MaxIntensity]. The names of the
// matched rules come back as the detector's indicator payload, in rule order
// so output is deterministic.
func scoreRules(c *chart.Chart, base float64, rules []Rule) (float64, []string) {
	intensity := base
	var matched []string
	for _, rule := range rules {
		if rule.When(c) {
			intensity += rule.Weight
			matched = append(matched, rule.Name)
		}
	}
	return clampIntensity(intensity), matched
}

func clampIntensity(v float64) float64 {
	if v < MinIntensity {
		return MinIntensity
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}

// conjunct reports whether two bodies sit within orb degrees of each other.
// False when either body is absent from the chart.
func conjunct(c *chart.Chart, a, b chart.Body, orb float64) bool {
	posA, okA := c.Position(a)
	posB, okB := c.Position(b)
	if !okA || !okB {
		return false
	}
	return angularSeparation(posA.Longitude, posB.Longitude) <= orb
}

// inHouses reports whether the body occupies any of the given houses.
func inHouses(c *chart.Chart, body chart.Body, houses ...int) bool {
	house, ok := c.HouseOfBody(body)
	if !ok {
		return false
	}
	for _, h := range houses {
		if house == h {
			return true
		}
	}
	return false
}

// dusthanas are the traditionally difficult houses.
var dusthanas = []int{6, 8, 12}

// kendras are the angular houses.
var kendras = []int{1, 4, 7, 10}
