package services

import (
	"context"

	"go.uber.org/zap"

	"jyotish-backend/internal/application/ports"
	"jyotish-backend/internal/domain/astrocarto"
	"jyotish-backend/internal/infrastructure/observability"
)

// RelocationService scores candidate coordinates against a stored chart's
// planetary lines.
type RelocationService struct {
	repo    ports.ChartRepository
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewRelocationService wires the relocation use case.
func NewRelocationService(repo ports.ChartRepository, metrics *observability.Collector, logger *zap.Logger) *RelocationService {
	return &RelocationService{repo: repo, metrics: metrics, logger: logger}
}

// Score evaluates one coordinate for one purpose. Coordinate and purpose
// validation happens in the domain engine; validation errors pass through
// with the offending field attached.
func (s *RelocationService) Score(ctx context.Context, chartID string, latitude, longitude float64, purpose astrocarto.Purpose) (astrocarto.LocationScore, error) {
	record, err := s.repo.FindByID(ctx, chartID)
	if err != nil {
		return astrocarto.LocationScore{}, err
	}

	score, err := astrocarto.ScoreLocation(record.Chart, latitude, longitude, purpose)
	if err != nil {
		return astrocarto.LocationScore{}, err
	}

	s.metrics.LocationsScored.Inc()
	s.logger.Info("location scored",
		zap.String("chart_id", chartID),
		zap.Float64("latitude", latitude),
		zap.Float64("longitude", longitude),
		zap.String("purpose", string(purpose)),
		zap.Float64("score", score.OverallScore))
	return score, nil
}
