package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/aicharts/backend/internal/models"
	"github.com/bytedance/sonic"
)

type chartsService interface {
	Parse(ctx context.Context, req *models.ChartRequest) (*models.ChartResponse, error)
}

type ChartsHandler struct {
	logger  *log.Logger
	service chartsService
}

func NewChartsHandler(logger *log.Logger, service chartsService) *ChartsHandler {
	return &ChartsHandler{
		logger:  logger,
		service: service,
	}
}

// Parse godoc
// @Summary Parse a chart description
// @Description Renders the prompt into a chart-type-specific template, sends it to the model, and relays the raw completion text.
// @Tags charts
// @Accept json
// @Produce json
// @Param request body models.ChartRequest true "Chart request"
// @Success 200 {object} models.ChartResponse
// @Failure 400 {object} models.DetailResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/charts-parse [post]
func (h *ChartsHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req models.ChartRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Printf("error processing /api/charts-parse: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// Validation failures never reach the model; everything after this point
	// surfaces as a 500.
	if err := req.Validate(); err != nil {
		h.logger.Printf("error processing /api/charts-parse: %v\n", err)
		writeJSON(w, http.StatusBadRequest, models.DetailResponse{Detail: err.Error()})
		return
	}

	resp, err := h.service.Parse(r.Context(), &req)
	if err != nil {
		h.logger.Printf("error processing /api/charts-parse: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(body)
}
