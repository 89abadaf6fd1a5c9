package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"jyotish-backend/internal/application/ports"
	"jyotish-backend/internal/config"
	"jyotish-backend/internal/domain/chart"
	"jyotish-backend/internal/infrastructure/observability"
	"jyotish-backend/pkg/errors"
)

// RemoteProvider fetches positions from an external ephemeris service. Calls
// run through a circuit breaker; while the breaker is open, or when a call
// fails, the approximate provider answers instead so chart computation never
// blocks on a flaky upstream.
type RemoteProvider struct {
	baseURL  string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	fallback ports.EphemerisProvider
	metrics  *observability.Collector
	logger   *zap.Logger
}

// remotePosition is the upstream wire format for one body.
type remotePosition struct {
	Body      string   `json:"body"`
	Longitude float64  `json:"longitude"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
}

var knownBodies = func() map[chart.Body]struct{} {
	m := make(map[chart.Body]struct{}, len(chart.AllBodies))
	for _, b := range chart.AllBodies {
		m[b] = struct{}{}
	}
	return m
}()

// parseBody normalizes an upstream body identifier to the canonical
// lowercase name. Upstreams vary in casing; an identifier that is not a
// graha at all is rejected rather than silently carried as an unknown key.
func parseBody(name string) (chart.Body, error) {
	body := chart.Body(strings.ToLower(name))
	if _, ok := knownBodies[body]; !ok {
		return "", errors.NewValidationf("body", "unknown body %q in ephemeris response", name)
	}
	return body, nil
}

// NewRemoteProvider builds the remote adapter. fallback must not be nil.
func NewRemoteProvider(cfg config.Ephemeris, fallback ports.EphemerisProvider, metrics *observability.Collector, logger *zap.Logger) *RemoteProvider {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ephemeris",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval.Std(),
		Timeout:     cfg.Breaker.OpenDuration.Std(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("ephemeris circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &RemoteProvider{
		baseURL:  cfg.RemoteURL,
		client:   &http.Client{Timeout: cfg.RequestTimeout.Std()},
		breaker:  breaker,
		fallback: fallback,
		metrics:  metrics,
		logger:   logger,
	}
}

// PositionsAt queries the upstream service, falling back to the approximate
// provider on any failure.
func (p *RemoteProvider) PositionsAt(ctx context.Context, jd float64) (map[chart.Body]chart.PlanetaryPosition, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.fetch(ctx, jd)
	})
	if err != nil {
		p.metrics.EphemerisFallback.Inc()
		p.logger.Warn("remote ephemeris unavailable, using approximate positions",
			zap.Float64("jd", jd),
			zap.Error(err))
		return p.fallback.PositionsAt(ctx, jd)
	}
	return result.(map[chart.Body]chart.PlanetaryPosition), nil
}

func (p *RemoteProvider) fetch(ctx context.Context, jd float64) (map[chart.Body]chart.PlanetaryPosition, error) {
	endpoint := fmt.Sprintf("%s?jd=%s", p.baseURL, url.QueryEscape(strconv.FormatFloat(jd, 'f', -1, 64)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build ephemeris request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewUnavailable(fmt.Sprintf("ephemeris request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewUnavailable(fmt.Sprintf("ephemeris returned status %d", resp.StatusCode))
	}

	var payload []remotePosition
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode ephemeris response: %w", err)
	}

	positions := make(map[chart.Body]chart.PlanetaryPosition, len(payload))
	for _, rp := range payload {
		body, err := parseBody(rp.Body)
		if err != nil {
			return nil, err
		}
		pos, err := chart.NewPlanetaryPosition(body, rp.Longitude)
		if err != nil {
			return nil, fmt.Errorf("invalid upstream position for %s: %w", rp.Body, err)
		}
		if rp.Latitude != nil {
			pos = pos.WithLatitude(*rp.Latitude)
		}
		if rp.Speed != nil {
			pos = pos.WithSpeed(*rp.Speed)
		}
		positions[body] = pos
	}

	p.logger.Debug("remote ephemeris responded",
		zap.Float64("jd", jd),
		zap.Int("bodies", len(positions)),
		zap.Duration("elapsed", time.Since(start)))
	return positions, nil
}
