// Package http exposes the service over REST: thin chi handlers that decode
// and validate DTOs, call the application services, and serialize results.
package http

import (
	"jyotish-backend/internal/application/ports"
)

// CreateChartRequest is the body for POST /api/v1/charts. Latitude and
// longitude locate the birthplace; pointers keep zero (the equator, the
// prime meridian) distinguishable from absent.
type CreateChartRequest struct {
	Year             int      `json:"year" validate:"min=-4712,max=9999"`
	Month            int      `json:"month" validate:"required,min=1,max=12"`
	Day              int      `json:"day" validate:"required,min=1,max=31"`
	Hour             int      `json:"hour" validate:"min=0,max=23"`
	Minute           int      `json:"minute" validate:"min=0,max=59"`
	Second           float64  `json:"second" validate:"gte=0,lt=60"`
	UTCOffsetMinutes int      `json:"utcOffsetMinutes" validate:"min=-840,max=840"`
	Latitude         *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// AnalysisRequest selects a stored chart for dosha or pillar analysis.
type AnalysisRequest struct {
	ChartID string `json:"chartId" validate:"required"`
}

// RelocationRequest is the body for POST /api/v1/relocation/score. Purpose
// is validated by the scoring engine so the error names the field.
type RelocationRequest struct {
	ChartID   string   `json:"chartId" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Purpose   string   `json:"purpose,omitempty"`
}

// PositionResponse is one body's placement in a chart response.
type PositionResponse struct {
	Body       string   `json:"body"`
	Longitude  float64  `json:"longitude"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Retrograde bool     `json:"retrograde"`
	House      int      `json:"house"`
}

// ChartResponse is the API representation of a stored chart.
type ChartResponse struct {
	ID        string             `json:"id"`
	Moment    string             `json:"moment"`
	Ascendant float64            `json:"ascendant"`
	Cusps     []float64          `json:"cusps"`
	Positions []PositionResponse `json:"positions"`
	CreatedAt string             `json:"createdAt"`
}

// newChartResponse flattens a stored chart for the wire.
func newChartResponse(record *ports.StoredChart) ChartResponse {
	c := record.Chart
	positions := make([]PositionResponse, 0, len(c.Bodies()))
	for _, body := range c.Bodies() {
		pos, _ := c.Position(body)
		house, _ := c.HouseOfBody(body)
		entry := PositionResponse{
			Body:       string(body),
			Longitude:  pos.Longitude,
			Retrograde: pos.Retrograde,
			House:      house,
		}
		if pos.HasLatitude {
			lat := pos.Latitude
			entry.Latitude = &lat
		}
		positions = append(positions, entry)
	}
	return ChartResponse{
		ID:        record.ID,
		Moment:    record.Moment.String(),
		Ascendant: c.Ascendant(),
		Cusps:     c.Cusps(),
		Positions: positions,
		CreatedAt: record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
