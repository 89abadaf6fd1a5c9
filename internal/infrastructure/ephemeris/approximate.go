// Package ephemeris supplies planetary positions to the chart builder. Two
// adapters implement the provider port: a deterministic built-in
// approximation and a remote HTTP client guarded by a circuit breaker.
package ephemeris

import (
	"context"
	"math"

	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/internal/domain/chart"
)

// meanMotion holds a body's mean ecliptic longitude at J2000 and its mean
// daily motion in degrees. Mean elements only: good to a few degrees, which
// is enough for house-level work; anything ephemeris-grade arrives through
// the remote provider instead.
type meanMotion struct {
	epochLongitude float64
	dailyRate      float64
}

var meanMotions = map[chart.Body]meanMotion{
	chart.Moon:    {218.3164477, 13.17639648},
	chart.Mercury: {252.25084, 4.09233445},
	chart.Venus:   {181.97973, 1.60213034},
	chart.Mars:    {355.45332, 0.52403304},
	chart.Jupiter: {34.40438, 0.08308676},
	chart.Saturn:  {49.94432, 0.03344414},
}

// Mean lunar node elements; the node regresses, hence the negative rate.
const (
	nodeEpochLongitude = 125.04452
	nodeDailyRate      = -0.05295376
)

// Lunar argument-of-latitude elements, used for the Moon's ecliptic latitude.
const (
	moonLatitudeAmplitude = 5.128
	moonArgEpoch          = 93.2720950
	moonArgDailyRate      = 13.22935024
)

// ApproximateProvider computes sidereal positions from mean motions and the
// solar longitude series. Pure arithmetic: no I/O, no state, identical
// output for identical input.
type ApproximateProvider struct{}

// NewApproximateProvider returns the built-in provider.
func NewApproximateProvider() *ApproximateProvider {
	return &ApproximateProvider{}
}

// PositionsAt returns sidereal positions for all nine tracked bodies.
func (p *ApproximateProvider) PositionsAt(_ context.Context, jd float64) (map[chart.Body]chart.PlanetaryPosition, error) {
	days := jd - astro.J2000
	ayanamsa := astro.Ayanamsa(jd)
	sidereal := func(tropical float64) float64 {
		return astro.NormalizeAngle(tropical - ayanamsa)
	}

	positions := make(map[chart.Body]chart.PlanetaryPosition, len(chart.AllBodies))

	sun, err := chart.NewPlanetaryPosition(chart.Sun, sidereal(astro.SolarEclipticLongitude(jd)))
	if err != nil {
		return nil, err
	}
	positions[chart.Sun] = sun.WithSpeed(0.9856)

	for body, m := range meanMotions {
		pos, err := chart.NewPlanetaryPosition(body, sidereal(m.epochLongitude+m.dailyRate*days))
		if err != nil {
			return nil, err
		}
		pos = pos.WithSpeed(m.dailyRate)
		if body == chart.Moon {
			arg := astro.Radians(astro.NormalizeAngle(moonArgEpoch + moonArgDailyRate*days))
			pos = pos.WithLatitude(moonLatitudeAmplitude * math.Sin(arg))
		}
		positions[body] = pos
	}

	nodeLongitude := sidereal(nodeEpochLongitude + nodeDailyRate*days)
	rahu, err := chart.NewPlanetaryPosition(chart.Rahu, nodeLongitude)
	if err != nil {
		return nil, err
	}
	ketu, err := chart.NewPlanetaryPosition(chart.Ketu, nodeLongitude+180)
	if err != nil {
		return nil, err
	}
	positions[chart.Rahu] = rahu.WithSpeed(nodeDailyRate)
	positions[chart.Ketu] = ketu.WithSpeed(nodeDailyRate)

	return positions, nil
}
