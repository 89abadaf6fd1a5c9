package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"jyotish-backend/internal/application/ports"
	"jyotish-backend/internal/domain/bazi"
	"jyotish-backend/internal/domain/dosha"
	"jyotish-backend/internal/infrastructure/observability"
)

// AnalysisService runs the pattern detectors and the sexagenary engine over
// stored charts. The severity thresholds can be swapped at runtime by the
// configuration watcher.
type AnalysisService struct {
	repo    ports.ChartRepository
	metrics *observability.Collector
	logger  *zap.Logger

	mu       sync.RWMutex
	analyzer *dosha.Analyzer
}

// NewAnalysisService builds the analysis use case with instrumented
// detectors.
func NewAnalysisService(repo ports.ChartRepository, thresholds dosha.Thresholds, metrics *observability.Collector, logger *zap.Logger) *AnalysisService {
	s := &AnalysisService{repo: repo, metrics: metrics, logger: logger}
	s.UpdateThresholds(thresholds)
	return s
}

// UpdateThresholds rebuilds the analyzer with new severity thresholds. Safe
// to call concurrently with analyses; in-flight requests finish on the old
// thresholds.
func (s *AnalysisService) UpdateThresholds(thresholds dosha.Thresholds) {
	detectors := observability.InstrumentDetectors(dosha.DefaultDetectors(), s.metrics)
	analyzer := dosha.NewAnalyzer(detectors, thresholds)

	s.mu.Lock()
	s.analyzer = analyzer
	s.mu.Unlock()
}

// Doshas runs every pattern detector against a stored chart.
func (s *AnalysisService) Doshas(ctx context.Context, chartID string) (dosha.Aggregate, error) {
	record, err := s.repo.FindByID(ctx, chartID)
	if err != nil {
		return dosha.Aggregate{}, err
	}

	s.mu.RLock()
	analyzer := s.analyzer
	s.mu.RUnlock()

	agg := analyzer.Analyze(record.Chart)
	s.metrics.AnalysesRun.Inc()
	s.logger.Info("dosha analysis complete",
		zap.String("chart_id", chartID),
		zap.Int("present", agg.PresentCount),
		zap.Int("failed", agg.FailedCount),
		zap.Float64("average_intensity", agg.AverageIntensity))
	return agg, nil
}

// Pillars derives the four sexagenary pillars for a stored chart's birth
// moment.
func (s *AnalysisService) Pillars(ctx context.Context, chartID string) (bazi.FourPillars, error) {
	record, err := s.repo.FindByID(ctx, chartID)
	if err != nil {
		return bazi.FourPillars{}, err
	}
	return bazi.Compute(record.Moment)
}
