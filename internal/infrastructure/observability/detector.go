package observability

import (
	"time"

	"jyotish-backend/internal/domain/chart"
	"jyotish-backend/internal/domain/dosha"
)

// instrumentedDetector wraps one pattern detector with a duration histogram
// and a detection counter. The domain detectors stay metrics-free; this is
// the injection point the service layer uses.
type instrumentedDetector struct {
	inner   dosha.Detector
	metrics *Collector
}

func (d instrumentedDetector) Name() string { return d.inner.Name() }

func (d instrumentedDetector) Detect(c *chart.Chart, th dosha.Thresholds) dosha.Result {
	start := time.Now()
	result := d.inner.Detect(c, th)
	d.metrics.ObserveDetector(d.inner.Name(), time.Since(start), result.Present)
	return result
}

// InstrumentDetectors wraps every detector with metrics collection.
func InstrumentDetectors(detectors []dosha.Detector, metrics *Collector) []dosha.Detector {
	wrapped := make([]dosha.Detector, len(detectors))
	for i, d := range detectors {
		wrapped[i] = instrumentedDetector{inner: d, metrics: metrics}
	}
	return wrapped
}
