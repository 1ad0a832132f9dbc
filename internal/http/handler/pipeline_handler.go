package handler

import (
	"net/http"

	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/service"
	"go.uber.org/zap"
)

type PipelineHandler struct {
	pipelineService *service.PipelineService
	logger          *zap.Logger
}

func NewPipelineHandler(pipelineService *service.PipelineService, logger *zap.Logger) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
		logger:          logger,
	}
}

// Board godoc
// @Summary Pipeline board
// @Description One column per lead status in board order, each with its leads (most recently updated first), count and total estimated value. Every status has a column, empty or not.
// @Tags Pipeline
// @Produce json
// @Success 200 {object} domain.PipelineBoardDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /pipeline/board [get]
func (h *PipelineHandler) Board(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.pipelineService.Board(r.Context()))
}

// Statuses godoc
// @Summary Status catalog
// @Description Labels and colors of lead statuses, pipeline stages, temperatures, priorities and company statuses
// @Tags Pipeline
// @Produce json
// @Success 200 {object} domain.StatusCatalogDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /pipeline/statuses [get]
func (h *PipelineHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.pipelineService.StatusCatalog())
}

// Refresh godoc
// @Summary Reload the board
// @Description Reload every lead from the database into the board. Service callers only.
// @Tags Pipeline
// @Produce json
// @Success 200 {object} domain.BoardRefreshDTO
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /pipeline/refresh [post]
func (h *PipelineHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	n, err := h.pipelineService.RefreshBoard(r.Context())
	if err != nil {
		requestLogger(h.logger, r).Error("failed to refresh board", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to refresh board")
		return
	}

	respondJSON(w, http.StatusOK, domain.BoardRefreshDTO{Leads: n})
}
