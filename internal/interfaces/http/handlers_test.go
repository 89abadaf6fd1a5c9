package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jyotish-backend/internal/application/services"
	"jyotish-backend/internal/domain/dosha"
	"jyotish-backend/internal/infrastructure/ephemeris"
	"jyotish-backend/internal/infrastructure/observability"
	"jyotish-backend/internal/infrastructure/persistence/memory"
	"jyotish-backend/pkg/api"
)

func newTestServer(t *testing.T, namespace string) *httptest.Server {
	t.Helper()
	metrics := observability.NewCollector(namespace)
	store := memory.NewChartStore(time.Hour, time.Hour, 100)
	t.Cleanup(store.Close)
	logger := zap.NewNop()

	handler := NewHandler(
		services.NewChartService(ephemeris.NewApproximateProvider(), store, metrics, logger),
		services.NewAnalysisService(store, dosha.DefaultThresholds(), metrics, logger),
		services.NewRelocationService(store, metrics, logger),
		logger,
	)
	server := httptest.NewServer(NewRouter(handler, metrics, logger, 5*time.Second))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func validChartBody() map[string]interface{} {
	return map[string]interface{}{
		"year": 1990, "month": 6, "day": 15,
		"hour": 10, "minute": 30,
		"utcOffsetMinutes": 330,
		"latitude":         28.6, "longitude": 77.2,
	}
}

func createChart(t *testing.T, server *httptest.Server) ChartResponse {
	t.Helper()
	resp := postJSON(t, server.URL+"/api/v1/charts", validChartBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var chart ChartResponse
	decode(t, resp, &chart)
	return chart
}

func TestCreateChart(t *testing.T) {
	server := newTestServer(t, "http_create")
	chart := createChart(t, server)

	assert.NotEmpty(t, chart.ID)
	assert.Len(t, chart.Cusps, 12)
	assert.Len(t, chart.Positions, 9)
	for _, pos := range chart.Positions {
		assert.GreaterOrEqual(t, pos.Longitude, 0.0)
		assert.Less(t, pos.Longitude, 360.0)
		assert.GreaterOrEqual(t, pos.House, 1)
		assert.LessOrEqual(t, pos.House, 12)
	}
}

func TestCreateChart_MissingBirthplace(t *testing.T) {
	server := newTestServer(t, "http_create_bad")
	body := validChartBody()
	delete(body, "latitude")

	resp := postJSON(t, server.URL+"/api/v1/charts", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp api.ErrorResponse
	decode(t, resp, &errResp)
	assert.Equal(t, "latitude", errResp.Field)
}

func TestCreateChart_ImpossibleDate(t *testing.T) {
	server := newTestServer(t, "http_create_date")
	body := validChartBody()
	body["month"] = 2
	body["day"] = 30

	resp := postJSON(t, server.URL+"/api/v1/charts", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp api.ErrorResponse
	decode(t, resp, &errResp)
	assert.Equal(t, "day", errResp.Field)
}

func TestGetChart(t *testing.T) {
	server := newTestServer(t, "http_get")
	created := createChart(t, server)

	resp, err := http.Get(server.URL + "/api/v1/charts/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched ChartResponse
	decode(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Ascendant, fetched.Ascendant)
}

func TestGetChart_NotFound(t *testing.T) {
	server := newTestServer(t, "http_get_404")
	resp, err := http.Get(server.URL + "/api/v1/charts/does-not-exist")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnalyzeDoshas(t *testing.T) {
	server := newTestServer(t, "http_doshas")
	chart := createChart(t, server)

	resp := postJSON(t, server.URL+"/api/v1/analysis/doshas", map[string]string{"chartId": chart.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		ChartID  string          `json:"chartId"`
		Analysis dosha.Aggregate `json:"analysis"`
	}
	decode(t, resp, &payload)
	assert.Equal(t, chart.ID, payload.ChartID)
	assert.Len(t, payload.Analysis.Results, len(dosha.DefaultDetectors()))
}

func TestAnalyzePillars(t *testing.T) {
	server := newTestServer(t, "http_pillars")
	chart := createChart(t, server)

	resp := postJSON(t, server.URL+"/api/v1/analysis/pillars", map[string]string{"chartId": chart.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Pillars struct {
			Year struct {
				Stem struct {
					Name string `json:"name"`
				} `json:"stem"`
				Branch struct {
					Animal string `json:"animal"`
				} `json:"branch"`
			} `json:"year"`
		} `json:"pillars"`
	}
	decode(t, resp, &payload)
	assert.Equal(t, "Geng", payload.Pillars.Year.Stem.Name)
	assert.Equal(t, "Horse", payload.Pillars.Year.Branch.Animal)
}

func TestScoreRelocation(t *testing.T) {
	server := newTestServer(t, "http_reloc")
	chart := createChart(t, server)

	resp := postJSON(t, server.URL+"/api/v1/relocation/score", map[string]interface{}{
		"chartId": chart.ID, "latitude": 40.7, "longitude": -74.0, "purpose": "career",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var score struct {
		OverallScore      float64 `json:"overallScore"`
		PurposeMultiplier float64 `json:"purposeMultiplier"`
	}
	decode(t, resp, &score)
	assert.GreaterOrEqual(t, score.OverallScore, 0.0)
	assert.LessOrEqual(t, score.OverallScore, 100.0)
	assert.Equal(t, 1.2, score.PurposeMultiplier)
}

func TestScoreRelocation_UnknownPurpose(t *testing.T) {
	server := newTestServer(t, "http_reloc_bad")
	chart := createChart(t, server)

	resp := postJSON(t, server.URL+"/api/v1/relocation/score", map[string]interface{}{
		"chartId": chart.ID, "latitude": 0.0, "longitude": 0.0, "purpose": "fame",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp api.ErrorResponse
	decode(t, resp, &errResp)
	assert.Equal(t, "purpose", errResp.Field)
}

func TestHealthAndMetrics(t *testing.T) {
	server := newTestServer(t, "http_ops")

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	if got := resp.Header.Get("X-Request-ID"); got == "" {
		t.Error("request ID header missing")
	}
}
