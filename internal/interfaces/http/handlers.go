package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"jyotish-backend/internal/application/services"
	"jyotish-backend/internal/domain/astrocarto"
	"jyotish-backend/internal/domain/chart"
	"jyotish-backend/pkg/api"
)

// Handler carries the application services into the HTTP layer.
type Handler struct {
	charts     *services.ChartService
	analysis   *services.AnalysisService
	relocation *services.RelocationService
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewHandler wires the REST handlers.
func NewHandler(charts *services.ChartService, analysis *services.AnalysisService, relocation *services.RelocationService, logger *zap.Logger) *Handler {
	return &Handler{
		charts:     charts,
		analysis:   analysis,
		relocation: relocation,
		validate:   validator.New(),
		logger:     logger,
	}
}

// CreateChart handles POST /api/v1/charts.
func (h *Handler) CreateChart(w http.ResponseWriter, r *http.Request) {
	var req CreateChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondInvalidBody(w, err)
		return
	}

	moment, err := chart.NewBirthMoment(req.Year, req.Month, req.Day, req.Hour, req.Minute, req.Second, req.UTCOffsetMinutes)
	if err != nil {
		respondError(w, err)
		return
	}

	record, err := h.charts.Compute(r.Context(), moment, *req.Latitude, *req.Longitude)
	if err != nil {
		respondError(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, newChartResponse(record))
}

// GetChart handles GET /api/v1/charts/{id}.
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	record, err := h.charts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, newChartResponse(record))
}

// AnalyzeDoshas handles POST /api/v1/analysis/doshas.
func (h *Handler) AnalyzeDoshas(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondInvalidBody(w, err)
		return
	}

	agg, err := h.analysis.Doshas(r.Context(), req.ChartID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{
		"chartId":  req.ChartID,
		"analysis": agg,
	})
}

// AnalyzePillars handles POST /api/v1/analysis/pillars.
func (h *Handler) AnalyzePillars(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondInvalidBody(w, err)
		return
	}

	pillars, err := h.analysis.Pillars(r.Context(), req.ChartID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{
		"chartId": req.ChartID,
		"pillars": pillars,
	})
}

// ScoreRelocation handles POST /api/v1/relocation/score.
func (h *Handler) ScoreRelocation(w http.ResponseWriter, r *http.Request) {
	var req RelocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondInvalidBody(w, err)
		return
	}

	score, err := h.relocation.Score(r.Context(), req.ChartID, *req.Latitude, *req.Longitude, astrocarto.Purpose(req.Purpose))
	if err != nil {
		respondError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, score)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
