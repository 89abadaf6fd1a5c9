// Package observability holds the Prometheus metrics the service emits. The
// core engines stay metrics-free; everything here wraps their call sites.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds every Prometheus metric for the service, registered on a
// private registry so tests can build collectors freely without duplicate
// registration panics.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	ChartsComputed    prometheus.Counter
	AnalysesRun       prometheus.Counter
	LocationsScored   prometheus.Counter
	DetectorDuration  *prometheus.HistogramVec
	PatternsDetected  *prometheus.CounterVec
	EphemerisFallback prometheus.Counter
}

// NewCollector creates a collector with all metrics registered under the
// given namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ChartsComputed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "charts_computed_total",
				Help:      "Total number of birth charts computed",
			},
		),
		AnalysesRun: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_run_total",
				Help:      "Total number of full pattern analyses run",
			},
		),
		LocationsScored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "locations_scored_total",
				Help:      "Total number of relocation coordinates scored",
			},
		),
		DetectorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "detector_duration_seconds",
				Help:      "Per-detector execution duration in seconds",
				Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
			},
			[]string{"detector"},
		),
		PatternsDetected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "patterns_detected_total",
				Help:      "Total number of patterns reported present, by detector",
			},
			[]string{"detector"},
		),
		EphemerisFallback: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ephemeris_fallback_total",
				Help:      "Times the remote ephemeris was unavailable and the approximate provider served instead",
			},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.ChartsComputed,
		c.AnalysesRun,
		c.LocationsScored,
		c.DetectorDuration,
		c.PatternsDetected,
		c.EphemerisFallback,
	)
	return c
}

// ObserveDetector records one detector run.
func (c *Collector) ObserveDetector(detector string, elapsed time.Duration, present bool) {
	c.DetectorDuration.WithLabelValues(detector).Observe(elapsed.Seconds())
	if present {
		c.PatternsDetected.WithLabelValues(detector).Inc()
	}
}

// Registry exposes the underlying registry for the /metrics handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
