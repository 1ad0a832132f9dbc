package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/auth"
	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/events"
	applog "github.com/straye-as/pipeline-api/internal/logger"
	"github.com/straye-as/pipeline-api/internal/mapper"
	"github.com/straye-as/pipeline-api/internal/pipeline"
	"github.com/straye-as/pipeline-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LeadService handles lead CRUD, status transitions and contact logging. Every
// write is mirrored onto the pipeline board.
type LeadService struct {
	leadRepo        *repository.LeadRepository
	activityRepo    *repository.LeadActivityRepository
	coordinator     *pipeline.Coordinator
	publisher       events.Publisher
	persistTimeout  time.Duration
	defaultCurrency string
	now             func() time.Time
	logger          *zap.Logger
}

// LeadServiceConfig holds the pipeline settings the service needs
type LeadServiceConfig struct {
	PersistTimeout  time.Duration
	DefaultCurrency string
}

func NewLeadService(
	leadRepo *repository.LeadRepository,
	activityRepo *repository.LeadActivityRepository,
	coordinator *pipeline.Coordinator,
	publisher events.Publisher,
	cfg LeadServiceConfig,
	logger *zap.Logger,
) *LeadService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "EUR"
	}
	return &LeadService{
		leadRepo:        leadRepo,
		activityRepo:    activityRepo,
		coordinator:     coordinator,
		publisher:       publisher,
		persistTimeout:  cfg.PersistTimeout,
		defaultCurrency: cfg.DefaultCurrency,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *LeadService) Create(ctx context.Context, req *domain.CreateLeadRequest) (*domain.LeadDTO, error) {
	nextFollowup, err := parseOptionalDate(req.NextFollowupDate)
	if err != nil {
		return nil, err
	}

	lead := &domain.Lead{
		Name:             strings.TrimSpace(req.Name),
		CompanyName:      strings.TrimSpace(req.CompanyName),
		Email:            req.Email,
		Phone:            req.Phone,
		Country:          req.Country,
		ServiceInterest:  req.ServiceInterest,
		Status:           req.Status,
		PipelineStage:    req.PipelineStage,
		Temperature:      req.Temperature,
		Priority:         req.Priority,
		EstimatedValue:   req.EstimatedValue,
		Currency:         strings.ToUpper(req.Currency),
		Notes:            req.Notes,
		NextFollowupDate: nextFollowup,
	}
	if lead.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}
	if lead.PipelineStage == "" {
		lead.PipelineStage = domain.PipelineStageNone
	}
	if lead.Temperature == "" {
		lead.Temperature = domain.LeadTemperatureCold
	}
	if lead.Priority == "" {
		lead.Priority = domain.LeadPriorityMedium
	}
	if lead.Currency == "" {
		lead.Currency = s.defaultCurrency
	}

	actor := actorFromContext(ctx)
	lead.OwnerID = actor.ID

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	s.coordinator.Board().Upsert(*lead)

	s.appendActivity(ctx, &domain.LeadActivity{
		LeadID:       lead.ID,
		UserID:       actor.ID,
		UserName:     actor.Name,
		ActivityType: domain.LeadActivityCreated,
		Description:  fmt.Sprintf("Lead '%s' was created", lead.Name),
	})

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeadDTO, error) {
	lead, err := s.getLead(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

// Update replaces the editable fields of a lead. A change of pipeline stage is
// recorded as a stage_change activity.
func (s *LeadService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateLeadRequest) (*domain.LeadDTO, error) {
	lead, err := s.getLead(ctx, id)
	if err != nil {
		return nil, err
	}

	nextFollowup, err := parseOptionalDate(req.NextFollowupDate)
	if err != nil {
		return nil, err
	}

	previousStage := lead.PipelineStage

	lead.Name = strings.TrimSpace(req.Name)
	lead.CompanyName = strings.TrimSpace(req.CompanyName)
	lead.Email = req.Email
	lead.Phone = req.Phone
	lead.Country = req.Country
	lead.ServiceInterest = req.ServiceInterest
	lead.PipelineStage = req.PipelineStage
	lead.Temperature = req.Temperature
	lead.Priority = req.Priority
	lead.EstimatedValue = req.EstimatedValue
	lead.Notes = req.Notes
	lead.NextFollowupDate = nextFollowup
	if req.Currency != "" {
		lead.Currency = strings.ToUpper(req.Currency)
	}
	if lead.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	updated, err := s.getLead(ctx, id)
	if err != nil {
		return nil, err
	}
	s.coordinator.Board().Upsert(*updated)

	if previousStage != updated.PipelineStage {
		actor := actorFromContext(ctx)
		s.appendActivity(ctx, &domain.LeadActivity{
			LeadID:       id,
			UserID:       actor.ID,
			UserName:     actor.Name,
			ActivityType: domain.LeadActivityStageChange,
			Description:  fmt.Sprintf("Stage changed from %s to %s", previousStage.Label(), updated.PipelineStage.Label()),
		})
	}

	dto := mapper.ToLeadDTO(updated)
	return &dto, nil
}

func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	s.coordinator.Board().Remove(id)
	return nil
}

// List returns a filtered, sorted page of leads from the store
func (s *LeadService) List(ctx context.Context, page, pageSize int, filters *repository.LeadFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	leads, total, err := s.leadRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return &domain.PaginatedResponse{
		Data:       mapper.ToLeadDTOs(leads),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// ChangeStatus moves a lead to a new status through the transition coordinator.
//
// A persistence failure is returned as a *pipeline.PersistError after the board
// has been rolled back, except for a lead deleted in the store, which is
// dropped from the board and reported as ErrLeadNotFound. A committed change whose activity could not be
// recorded is still a success; the DTO reports auditRecorded=false.
func (s *LeadService) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus) (*domain.StatusTransitionDTO, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	board := s.coordinator.Board()
	if _, ok := board.Get(id); !ok {
		// The board may be behind the store; load the lead before giving up.
		lead, err := s.getLead(ctx, id)
		if err != nil {
			return nil, err
		}
		board.Upsert(*lead)
	}

	persistCtx := ctx
	if s.persistTimeout > 0 {
		var cancel context.CancelFunc
		persistCtx, cancel = context.WithTimeout(ctx, s.persistTimeout)
		defer cancel()
	}

	result, err := s.coordinator.Transition(persistCtx, id, status, actorFromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrLeadNotFound):
			return nil, ErrLeadNotFound
		case errors.Is(err, pipeline.ErrInvalidStatus):
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}

		var persistErr *pipeline.PersistError
		if errors.As(err, &persistErr) {
			if errors.Is(persistErr.Err, gorm.ErrRecordNotFound) {
				// Deleted in the store since the board was loaded
				board.Remove(id)
				return nil, ErrLeadNotFound
			}
			applog.WithTransition(s.logger, id, persistErr.Previous, status).
				Error("lead status change rolled back", zap.Error(persistErr.Err))
		}
		return nil, err
	}

	if result.Changed {
		s.publishStatusChanged(ctx, &result)
	}

	dto := mapper.ToStatusTransitionDTO(&result)
	return &dto, nil
}

// LogContact records a contact with the lead: an activity, a bumped contact
// count, today's last contact date and optionally a new follow-up date.
func (s *LeadService) LogContact(ctx context.Context, id uuid.UUID, req *domain.LogContactRequest) (*domain.LeadDTO, error) {
	if !req.ActivityType.IsContact() {
		return nil, fmt.Errorf("%w: %q is not a contact activity", ErrInvalidInput, req.ActivityType)
	}

	nextFollowup, err := parseOptionalDate(req.NextFollowupDate)
	if err != nil {
		return nil, err
	}

	updated, err := s.leadRepo.RecordContact(ctx, id, s.now(), nextFollowup)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to record contact: %w", err)
	}
	s.coordinator.Board().Upsert(*updated)

	actor := actorFromContext(ctx)
	s.appendActivity(ctx, &domain.LeadActivity{
		LeadID:       id,
		UserID:       actor.ID,
		UserName:     actor.Name,
		ActivityType: req.ActivityType,
		Description:  req.Description,
		Outcome:      req.Outcome,
	})

	dto := mapper.ToLeadDTO(updated)
	return &dto, nil
}

// ListActivities returns the audit trail of a lead, newest first
func (s *LeadService) ListActivities(ctx context.Context, leadID uuid.UUID, page, pageSize int) (*domain.PaginatedResponse, error) {
	if _, err := s.getLead(ctx, leadID); err != nil {
		return nil, err
	}

	page, pageSize = repository.NormalizePagination(page, pageSize)
	activities, total, err := s.activityRepo.ListByLead(ctx, leadID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	dtos := make([]domain.LeadActivityDTO, len(activities))
	for i := range activities {
		dtos[i] = mapper.ToLeadActivityDTO(&activities[i])
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// FollowupsDue returns open leads whose follow-up date is today or earlier
func (s *LeadService) FollowupsDue(ctx context.Context) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.ListFollowupsDue(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}
	return mapper.ToLeadDTOs(leads), nil
}

func (s *LeadService) getLead(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

// appendActivity records an activity that is not part of a status transition.
// Failures are logged and do not fail the request.
func (s *LeadService) appendActivity(ctx context.Context, activity *domain.LeadActivity) {
	if err := s.activityRepo.AppendActivity(context.WithoutCancel(ctx), activity); err != nil {
		applog.WithLead(s.logger, activity.LeadID).Warn("failed to record lead activity",
			zap.String("activity_type", string(activity.ActivityType)),
			zap.Error(err))
	}
}

func (s *LeadService) publishStatusChanged(ctx context.Context, result *pipeline.TransitionResult) {
	event := events.LeadStatusChanged{
		LeadID:       result.Lead.ID,
		CompanyKey:   result.Lead.CompanyKey(),
		From:         result.From,
		To:           result.To,
		ContactCount: result.Lead.ContactCount,
		ActorID:      actorFromContext(ctx).ID,
		OccurredAt:   result.Lead.UpdatedAt,
	}
	if err := s.publisher.PublishStatusChanged(context.WithoutCancel(ctx), event); err != nil {
		applog.WithTransition(s.logger, result.Lead.ID, result.From, result.To).
			Warn("failed to publish status change", zap.Error(err))
	}
}

func actorFromContext(ctx context.Context) pipeline.Actor {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return pipeline.Actor{}
	}
	return pipeline.Actor{ID: userCtx.UserID.String(), Name: userCtx.Name()}
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, *s)
	}
	return &t, nil
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
