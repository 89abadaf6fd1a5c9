// Package astrocarto projects natal planetary longitudes onto the Earth's
// surface as meridian-like influence lines and scores coordinates against
// them. The geometry is deliberately simplified: a line is a pure longitude,
// not a paran curve, and the reference outputs depend on keeping it that way.
package astrocarto

import (
	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/internal/domain/chart"
)

// AspectType identifies the angular relationship a line encodes.
type AspectType string

const (
	AspectConjunction AspectType = "conjunction"
	AspectOpposition  AspectType = "opposition"
	AspectSquare      AspectType = "square"
	AspectTrine       AspectType = "trine"
	AspectSextile     AspectType = "sextile"
)

// aspectDef fixes one of the eight line offsets per body. Base strengths
// order conjunction and opposition strongest, sextile weakest; harmonious
// marks the aspects whose influence supports rather than strains.
type aspectDef struct {
	Type       AspectType
	Offset     float64
	Strength   float64
	Harmonious bool
}

var aspectDefs = [8]aspectDef{
	{Type: AspectConjunction, Offset: 0, Strength: 1.0, Harmonious: true},
	{Type: AspectSextile, Offset: 60, Strength: 0.5, Harmonious: true},
	{Type: AspectSquare, Offset: 90, Strength: 0.8, Harmonious: false},
	{Type: AspectTrine, Offset: 120, Strength: 0.7, Harmonious: true},
	{Type: AspectOpposition, Offset: 180, Strength: 0.9, Harmonious: false},
	{Type: AspectTrine, Offset: 240, Strength: 0.7, Harmonious: true},
	{Type: AspectSquare, Offset: 270, Strength: 0.8, Harmonious: false},
	{Type: AspectSextile, Offset: 300, Strength: 0.5, Harmonious: true},
}

// GeoLine is one terrestrial influence line: the meridian where a body's
// natal longitude, offset by an aspect angle, touches down.
type GeoLine struct {
	Body      chart.Body `json:"body"`
	Aspect    AspectType `json:"aspectType"`
	Longitude float64    `json:"longitude"`
	Strength  float64    `json:"strength"`

	harmonious bool
}

// ParallelLine is a latitude-band influence line. Only bodies that supplied
// an ecliptic latitude project parallels; the contraparallel mirrors the
// band across the equator at reduced strength.
type ParallelLine struct {
	Body     chart.Body `json:"body"`
	Latitude float64    `json:"latitude"`
	Strength float64    `json:"strength"`
}

const (
	parallelStrength       = 0.6
	contraparallelStrength = 0.4
)

// LinesFromChart projects every charted body through all eight aspect
// offsets. Line order follows the chart's canonical body order, then the
// fixed aspect table, so output is deterministic.
func LinesFromChart(c *chart.Chart) []GeoLine {
	bodies := c.Bodies()
	lines := make([]GeoLine, 0, len(bodies)*len(aspectDefs))
	for _, body := range bodies {
		pos, _ := c.Position(body)
		for _, def := range aspectDefs {
			lines = append(lines, GeoLine{
				Body:       body,
				Aspect:     def.Type,
				Longitude:  astro.NormalizeAngle(pos.Longitude + def.Offset),
				Strength:   def.Strength,
				harmonious: def.Harmonious,
			})
		}
	}
	return lines
}

// ParallelsFromChart projects a parallel and a contraparallel for each body
// carrying an ecliptic latitude. Bodies without latitude data are skipped
// rather than defaulted.
func ParallelsFromChart(c *chart.Chart) []ParallelLine {
	var parallels []ParallelLine
	for _, body := range c.Bodies() {
		pos, _ := c.Position(body)
		if !pos.HasLatitude {
			continue
		}
		parallels = append(parallels,
			ParallelLine{Body: body, Latitude: pos.Latitude, Strength: parallelStrength},
			ParallelLine{Body: body, Latitude: -pos.Latitude, Strength: contraparallelStrength},
		)
	}
	return parallels
}
