package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/logger"
	"github.com/straye-as/pipeline-api/internal/pipeline"
	"github.com/straye-as/pipeline-api/internal/repository"
	"github.com/straye-as/pipeline-api/internal/service"
	"go.uber.org/zap"
)

type LeadHandler struct {
	leadService *service.LeadService
	logger      *zap.Logger
}

func NewLeadHandler(leadService *service.LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// List godoc
// @Summary List leads
// @Description Get a paginated list of leads with optional filters
// @Tags Leads
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search name, company name or email"
// @Param status query string false "Filter by status" Enums(new, contacted, no_answer, callback, interested, qualified, not_qualified, dormant)
// @Param pipelineStage query string false "Filter by pipeline stage" Enums(none, proposal, demo, negotiation, closing, won, lost)
// @Param temperature query string false "Filter by temperature" Enums(cold, warm, hot)
// @Param priority query string false "Filter by priority" Enums(low, medium, high, urgent)
// @Param country query string false "Filter by country"
// @Param ownerId query string false "Filter by owner"
// @Param activeOnly query bool false "Exclude won and lost leads"
// @Param sortBy query string false "Sort field" Enums(name, companyName, status, pipelineStage, estimatedValue, lastContactDate, nextFollowupDate, contactCount, createdAt, updatedAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.LeadDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads [get]
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := parsePagination(r)

	filters := &repository.LeadFilters{}

	if v := q.Get("status"); v != "" {
		s := domain.LeadStatus(v)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filters.Status = &s
	}
	if v := q.Get("pipelineStage"); v != "" {
		s := domain.PipelineStage(v)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid pipelineStage filter")
			return
		}
		filters.PipelineStage = &s
	}
	if v := q.Get("temperature"); v != "" {
		t := domain.LeadTemperature(v)
		if !t.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid temperature filter")
			return
		}
		filters.Temperature = &t
	}
	if v := q.Get("priority"); v != "" {
		p := domain.LeadPriority(v)
		if !p.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid priority filter")
			return
		}
		filters.Priority = &p
	}
	if v := q.Get("country"); v != "" {
		filters.Country = &v
	}
	if v := q.Get("ownerId"); v != "" {
		filters.OwnerID = &v
	}
	if v := q.Get("search"); v != "" {
		filters.SearchQuery = &v
	}
	filters.ActiveOnly, _ = strconv.ParseBool(q.Get("activeOnly"))

	sort := repository.DefaultSortConfig()
	if v := q.Get("sortBy"); v != "" {
		sort.Field = v
	}
	if v := q.Get("sortOrder"); v != "" {
		sort.Order = repository.ParseSortOrder(v)
	}

	result, err := h.leadService.List(r.Context(), page, pageSize, filters, sort)
	if err != nil {
		requestLogger(h.logger, r).Error("failed to list leads", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create lead
// @Description Create a new lead. Status defaults to new, stage to none.
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body domain.CreateLeadRequest true "Lead data"
// @Success 201 {object} domain.LeadDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads [post]
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lead, err := h.leadService.Create(r.Context(), &req)
	if err != nil {
		h.handleError(w, r, err, "Failed to create lead")
		return
	}

	respondJSON(w, http.StatusCreated, lead)
}

// GetByID godoc
// @Summary Get lead by ID
// @Tags Leads
// @Produce json
// @Param id path string true "Lead ID" format(uuid)
// @Success 200 {object} domain.LeadDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	lead, err := h.leadService.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Failed to get lead")
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

// Update godoc
// @Summary Update lead
// @Description Replace the editable fields of a lead. The status is changed through POST /leads/{id}/status.
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID" format(uuid)
// @Param request body domain.UpdateLeadRequest true "Lead data"
// @Success 200 {object} domain.LeadDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/{id} [put]
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var req domain.UpdateLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lead, err := h.leadService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, r, err, "Failed to update lead")
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

// Delete godoc
// @Summary Delete lead
// @Description Delete a lead and its activities
// @Tags Leads
// @Param id path string true "Lead ID" format(uuid)
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	if err := h.leadService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err, "Failed to delete lead")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeStatus godoc
// @Summary Change lead status
// @Description Move a lead to another status. The board shows the new status at once; if the change cannot be saved it is rolled back and 502 is returned with the restored status. auditRecorded is false when the change was saved but its activity was not.
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID" format(uuid)
// @Param request body domain.ChangeLeadStatusRequest true "Target status"
// @Success 200 {object} domain.StatusTransitionDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 502 {object} domain.StatusChangeFailedDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/{id}/status [post]
func (h *LeadHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var req domain.ChangeLeadStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.leadService.ChangeStatus(r.Context(), id, req.Status)
	if err != nil {
		var persistErr *pipeline.PersistError
		if errors.As(err, &persistErr) {
			respondJSON(w, http.StatusBadGateway, domain.StatusChangeFailedDTO{
				APIError: domain.APIError{
					Type:   domain.ErrorTypeBadGateway,
					Title:  http.StatusText(http.StatusBadGateway),
					Status: http.StatusBadGateway,
					Detail: "The status change could not be saved and was rolled back",
				},
				LeadID:        persistErr.LeadID,
				CurrentStatus: persistErr.Previous,
			})
			return
		}
		h.handleError(w, r, err, "Failed to change lead status")
		return
	}

	if result.Changed && !result.AuditRecorded {
		logger.WithLead(requestLogger(h.logger, r), id).Warn("status changed without activity record")
	}

	respondJSON(w, http.StatusOK, result)
}

// LogContact godoc
// @Summary Log a contact
// @Description Record a call, email, meeting, WhatsApp message or note. Increments the contact count, sets the last contact date and optionally the next follow-up date.
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID" format(uuid)
// @Param request body domain.LogContactRequest true "Contact details"
// @Success 200 {object} domain.LeadDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/{id}/contacts [post]
func (h *LeadHandler) LogContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var req domain.LogContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lead, err := h.leadService.LogContact(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, r, err, "Failed to log contact")
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

// ListActivities godoc
// @Summary List lead activities
// @Description Get the activity trail of a lead, newest first
// @Tags Leads
// @Produce json
// @Param id path string true "Lead ID" format(uuid)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.LeadActivityDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/{id}/activities [get]
func (h *LeadHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	page, pageSize := parsePagination(r)
	result, err := h.leadService.ListActivities(r.Context(), id, page, pageSize)
	if err != nil {
		h.handleError(w, r, err, "Failed to list activities")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Followups godoc
// @Summary Follow-ups due
// @Description Open leads whose next follow-up date is today or earlier, oldest first
// @Tags Leads
// @Produce json
// @Success 200 {array} domain.LeadDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /followups [get]
func (h *LeadHandler) Followups(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.FollowupsDue(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Failed to list follow-ups")
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) handleError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrLeadNotFound):
		respondWithError(w, http.StatusNotFound, "Lead not found")
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		requestLogger(h.logger, r).Error(fallback, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, fallback)
	}
}
