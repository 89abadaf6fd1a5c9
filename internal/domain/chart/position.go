package chart

import (
	"math"

	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/pkg/errors"
)

// PlanetaryPosition is one body's place on the ecliptic. Longitude is always
// held normalized in [0,360); whatever arithmetic produced the input value,
// the constructor renormalizes it.
type PlanetaryPosition struct {
	Body      Body
	Longitude float64
	// Latitude is the ecliptic latitude in degrees. Optional: HasLatitude
	// distinguishes "zero latitude" from "not supplied".
	Latitude    float64
	HasLatitude bool
	// Speed is the daily motion in degrees; negative while retrograde.
	Speed      float64
	Retrograde bool
}

// NewPlanetaryPosition builds a normalized position. Non-finite longitudes
// are rejected; the ephemeris collaborator is trusted but verified.
func NewPlanetaryPosition(body Body, longitude float64) (PlanetaryPosition, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return PlanetaryPosition{}, errors.NewValidationf(string(body), "longitude must be finite, got %v", longitude)
	}
	return PlanetaryPosition{
		Body:      body,
		Longitude: astro.NormalizeAngle(longitude),
	}, nil
}

// WithLatitude returns a copy carrying an ecliptic latitude.
func (p PlanetaryPosition) WithLatitude(latitude float64) PlanetaryPosition {
	p.Latitude = latitude
	p.HasLatitude = true
	return p
}

// WithSpeed returns a copy carrying a daily motion; negative speed marks the
// body retrograde.
func (p PlanetaryPosition) WithSpeed(speed float64) PlanetaryPosition {
	p.Speed = speed
	p.Retrograde = speed < 0
	return p
}
