package ephemeris

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"jyotish-backend/internal/config"
	"jyotish-backend/internal/domain/astro"
	"jyotish-backend/internal/domain/chart"
	"jyotish-backend/internal/infrastructure/observability"
)

func TestApproximateProvider_AllBodiesPresent(t *testing.T) {
	positions, err := NewApproximateProvider().PositionsAt(context.Background(), astro.J2000)
	if err != nil {
		t.Fatalf("PositionsAt: %v", err)
	}
	for _, body := range chart.AllBodies {
		pos, ok := positions[body]
		if !ok {
			t.Fatalf("missing %s", body)
		}
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			t.Errorf("%s longitude %v not normalized", body, pos.Longitude)
		}
	}
	if !positions[chart.Moon].HasLatitude {
		t.Error("moon should carry an ecliptic latitude")
	}
	if positions[chart.Sun].HasLatitude {
		t.Error("sun sits on the ecliptic and must not claim a latitude")
	}
}

func TestApproximateProvider_NodesOpposed(t *testing.T) {
	positions, err := NewApproximateProvider().PositionsAt(context.Background(), 2460310.5)
	if err != nil {
		t.Fatalf("PositionsAt: %v", err)
	}
	separation := astro.AngularDistance(positions[chart.Rahu].Longitude, positions[chart.Ketu].Longitude)
	if diff := separation - 180; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("nodes must oppose exactly: separation %v", separation)
	}
}

func TestApproximateProvider_Deterministic(t *testing.T) {
	p := NewApproximateProvider()
	first, err := p.PositionsAt(context.Background(), 2436116.31)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.PositionsAt(context.Background(), 2436116.31)
	if err != nil {
		t.Fatal(err)
	}
	for body, pos := range first {
		if second[body] != pos {
			t.Errorf("%s differs between runs: %v vs %v", body, pos, second[body])
		}
	}
}

func remoteConfig(url string) config.Ephemeris {
	return config.Ephemeris{
		Provider:       "remote",
		RemoteURL:      url,
		RequestTimeout: config.Duration(2 * time.Second),
		Breaker: config.Breaker{
			MaxRequests:      1,
			Interval:         config.Duration(time.Minute),
			OpenDuration:     config.Duration(time.Minute),
			FailureThreshold: 3,
		},
	}
}

func TestRemoteProvider_DecodesUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("jd") == "" {
			t.Error("jd query parameter missing")
		}
		lat := 4.2
		speed := -0.1
		payload := []remotePosition{
			{Body: "Sun", Longitude: 280.5},
			{Body: "Moon", Longitude: 45.0, Latitude: &lat},
			{Body: "Saturn", Longitude: 300.0, Speed: &speed},
		}
		json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	provider := NewRemoteProvider(remoteConfig(server.URL), NewApproximateProvider(), observability.NewCollector("test_decode"), zap.NewNop())
	positions, err := provider.PositionsAt(context.Background(), astro.J2000)
	if err != nil {
		t.Fatalf("PositionsAt: %v", err)
	}
	if len(positions) != 3 {
		t.Fatalf("expected 3 upstream bodies, got %d", len(positions))
	}
	if !positions[chart.Moon].HasLatitude || positions[chart.Moon].Latitude != 4.2 {
		t.Errorf("moon latitude lost: %+v", positions[chart.Moon])
	}
	if !positions[chart.Saturn].Retrograde {
		t.Error("negative speed must mark saturn retrograde")
	}
}

func TestRemoteProvider_RejectsUnknownBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := []remotePosition{
			{Body: "Sun", Longitude: 280.5},
			{Body: "pluto", Longitude: 120.0},
		}
		json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	metrics := observability.NewCollector("test_unknown_body")
	provider := NewRemoteProvider(remoteConfig(server.URL), NewApproximateProvider(), metrics, zap.NewNop())

	positions, err := provider.PositionsAt(context.Background(), astro.J2000)
	if err != nil {
		t.Fatalf("fallback must absorb the rejected payload: %v", err)
	}
	// The malformed payload is discarded wholesale; the approximate
	// provider answers instead.
	if len(positions) != len(chart.AllBodies) {
		t.Errorf("expected the full fallback set, got %d bodies", len(positions))
	}
	if got := testutil.ToFloat64(metrics.EphemerisFallback); got != 1 {
		t.Errorf("fallback counter = %v, want 1", got)
	}
}

func TestRemoteProvider_FallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	metrics := observability.NewCollector("test_fallback")
	provider := NewRemoteProvider(remoteConfig(server.URL), NewApproximateProvider(), metrics, zap.NewNop())

	positions, err := provider.PositionsAt(context.Background(), astro.J2000)
	if err != nil {
		t.Fatalf("fallback must absorb the failure: %v", err)
	}
	if len(positions) != len(chart.AllBodies) {
		t.Errorf("fallback should supply all bodies, got %d", len(positions))
	}
	if got := testutil.ToFloat64(metrics.EphemerisFallback); got != 1 {
		t.Errorf("fallback counter = %v, want 1", got)
	}
}

func TestRemoteProvider_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	metrics := observability.NewCollector("test_breaker")
	provider := NewRemoteProvider(remoteConfig(server.URL), NewApproximateProvider(), metrics, zap.NewNop())

	for i := 0; i < 5; i++ {
		if _, err := provider.PositionsAt(context.Background(), astro.J2000); err != nil {
			t.Fatalf("call %d: fallback must absorb the failure: %v", i, err)
		}
	}
	// Threshold is 3: the last two calls must be rejected by the open
	// breaker without reaching the upstream.
	if hits != 3 {
		t.Errorf("upstream hit %d times, want 3 before the breaker opened", hits)
	}
	if got := testutil.ToFloat64(metrics.EphemerisFallback); got != 5 {
		t.Errorf("fallback counter = %v, want 5", got)
	}
}
