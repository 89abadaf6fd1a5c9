// Package services implements the application use cases: computing charts,
// running analyses, scoring relocations. Services orchestrate the domain
// engines and the ports; they hold no domain logic of their own.
package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jyotish-backend/internal/application/ports"
	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/internal/domain/chart"
	"jyotish-backend/internal/infrastructure/observability"
	"jyotish-backend/pkg/errors"
)

// ChartService turns a birth moment and birthplace into a validated,
// persisted chart.
type ChartService struct {
	provider ports.EphemerisProvider
	repo     ports.ChartRepository
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewChartService wires the chart use case.
func NewChartService(provider ports.EphemerisProvider, repo ports.ChartRepository, metrics *observability.Collector, logger *zap.Logger) *ChartService {
	return &ChartService{provider: provider, repo: repo, metrics: metrics, logger: logger}
}

// Compute builds a chart for a birth moment at a birthplace, stores it, and
// returns the stored record with its ID.
func (s *ChartService) Compute(ctx context.Context, moment chart.BirthMoment, latitude, longitude float64) (*ports.StoredChart, error) {
	if err := validateGeoCoordinate(latitude, longitude); err != nil {
		return nil, err
	}

	jd, err := moment.JulianDay()
	if err != nil {
		return nil, err
	}

	positions, err := s.provider.PositionsAt(ctx, jd)
	if err != nil {
		return nil, errors.Wrap(err, "ephemeris provider failed")
	}

	ascendant := astro.SiderealAscendant(jd, latitude, longitude)
	c, err := chart.NewChart(ascendant, chart.EqualHouseCusps(ascendant), positions)
	if err != nil {
		return nil, err
	}

	record := &ports.StoredChart{
		ID:        uuid.NewString(),
		Moment:    moment,
		Chart:     c,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, errors.Wrap(err, "persist chart")
	}

	s.metrics.ChartsComputed.Inc()
	s.logger.Info("chart computed",
		zap.String("chart_id", record.ID),
		zap.String("moment", moment.String()),
		zap.Float64("ascendant", ascendant))
	return record, nil
}

// Get retrieves a previously computed chart.
func (s *ChartService) Get(ctx context.Context, id string) (*ports.StoredChart, error) {
	return s.repo.FindByID(ctx, id)
}

// validateGeoCoordinate rejects out-of-range birthplace coordinates with the
// offending field named.
func validateGeoCoordinate(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) || latitude < -90 || latitude > 90 {
		return errors.NewValidationf("latitude", "must be between -90 and 90, got %g", latitude)
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || longitude < -180 || longitude > 180 {
		return errors.NewValidationf("longitude", "must be between -180 and 180, got %g", longitude)
	}
	return nil
}
