package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/service"
	"go.uber.org/zap"
)

// CompanyHandler serves companies derived from the leads on the board.
// Companies are not stored; the key is the trimmed company name, or the lead
// name for leads without one.
type CompanyHandler struct {
	pipelineService *service.PipelineService
	logger          *zap.Logger
}

func NewCompanyHandler(pipelineService *service.PipelineService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		pipelineService: pipelineService,
		logger:          logger,
	}
}

// List godoc
// @Summary List companies
// @Description Companies grouped from leads, most recently active first, with their general status
// @Tags Companies
// @Produce json
// @Param status query string false "Filter by general status" Enums(closing, negotiation, demo, proposal, qualified, initial, closed, mixed)
// @Param search query string false "Filter by company key"
// @Success 200 {array} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /companies [get]
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := service.CompanyFilters{Search: r.URL.Query().Get("search")}

	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.CompanyStatus(v)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filters.Status = &s
	}

	respondJSON(w, http.StatusOK, h.pipelineService.Companies(r.Context(), filters))
}

// GetByKey godoc
// @Summary Get company
// @Description A company summary with all of its leads
// @Tags Companies
// @Produce json
// @Param key path string true "Company key (URL-encoded company name)"
// @Success 200 {object} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /companies/{key} [get]
func (h *CompanyHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key, err := companyKeyParam(r)
	if err != nil || key == "" {
		respondWithError(w, http.StatusBadRequest, "Invalid company key")
		return
	}

	company, err := h.pipelineService.Company(r.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			respondWithError(w, http.StatusNotFound, "Company not found")
			return
		}
		requestLogger(h.logger, r).Error("failed to get company", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get company")
		return
	}

	respondJSON(w, http.StatusOK, company)
}

// companyKeyParam reads the {key} path parameter. chi matches on the raw path
// when the URL carries one (an escaped slash, for instance), leaving the
// parameter escaped; otherwise it is already decoded.
func companyKeyParam(r *http.Request) (string, error) {
	key := chi.URLParam(r, "key")
	if r.URL.RawPath == "" {
		return key, nil
	}
	return url.PathUnescape(key)
}
