package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeadFilters contains all filter options for listing leads
type LeadFilters struct {
	Status        *domain.LeadStatus
	PipelineStage *domain.PipelineStage
	Temperature   *domain.LeadTemperature
	Priority      *domain.LeadPriority
	Country       *string
	OwnerID       *string
	ActiveOnly    bool
	SearchQuery   *string
}

// leadSortFields whitelists sortable API fields
var leadSortFields = map[string]string{
	"name":             "name",
	"companyName":      "company_name",
	"status":           "status",
	"pipelineStage":    "pipeline_stage",
	"estimatedValue":   "estimated_value",
	"lastContactDate":  "last_contact_date",
	"nextFollowupDate": "next_followup_date",
	"contactCount":     "contact_count",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

var closedStages = []domain.PipelineStage{domain.PipelineStageWon, domain.PipelineStageLost}

// LeadRepository handles database operations for leads.
//
// It is the remote lead store behind the pipeline board.
type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(lead).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update saves every editable column of the lead. Status and contact counters
// are left alone; they change through UpdateLeadStatus and RecordContact.
func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Where("id = ?", lead.ID).
		Updates(map[string]interface{}{
			"name":               lead.Name,
			"company_name":       lead.CompanyName,
			"email":              lead.Email,
			"phone":              lead.Phone,
			"country":            lead.Country,
			"service_interest":   lead.ServiceInterest,
			"pipeline_stage":     lead.PipelineStage,
			"temperature":        lead.Temperature,
			"priority":           lead.Priority,
			"estimated_value":    lead.EstimatedValue,
			"currency":           lead.Currency,
			"notes":              lead.Notes,
			"next_followup_date": lead.NextFollowupDate,
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a lead and its activities
func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lead_id = ?", id).Delete(&domain.LeadActivity{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Lead{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *LeadRepository) List(ctx context.Context, page, pageSize int, filters *LeadFilters, sort SortConfig) ([]domain.Lead, int64, error) {
	var leads []domain.Lead
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Lead{})
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(BuildOrderClause(sort, leadSortFields, "updated_at")).Order("id")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Find(&leads).Error

	return leads, total, err
}

// ListAll returns every lead, most recently updated first. Used to load the board.
func (r *LeadRepository) ListAll(ctx context.Context) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&leads).Error
	return leads, err
}

// UpdateLeadStatus sets the status, stamps the contact date and increments the
// contact count in one statement, then returns the stored lead.
func (r *LeadRepository) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus, contactDate time.Time) (*domain.Lead, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            status,
			"last_contact_date": domain.DateOnly(contactDate),
			"contact_count":     gorm.Expr("contact_count + ?", 1),
			"updated_at":        contactDate.UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// RecordContact stamps a contact on the lead without changing its status.
// A nil nextFollowup keeps the current follow-up date.
func (r *LeadRepository) RecordContact(ctx context.Context, id uuid.UUID, contactDate time.Time, nextFollowup *time.Time) (*domain.Lead, error) {
	updates := map[string]interface{}{
		"last_contact_date": domain.DateOnly(contactDate),
		"contact_count":     gorm.Expr("contact_count + ?", 1),
		"updated_at":        contactDate.UTC(),
	}
	if nextFollowup != nil {
		updates["next_followup_date"] = domain.DateOnly(*nextFollowup)
	}

	result := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// ListFollowupsDue returns open leads whose follow-up date is on or before asOf,
// oldest follow-up first
func (r *LeadRepository) ListFollowupsDue(ctx context.Context, asOf time.Time) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Where("next_followup_date IS NOT NULL AND next_followup_date <= ?", domain.DateOnly(asOf)).
		Where("pipeline_stage NOT IN ?", closedStages).
		Order("next_followup_date ASC").
		Order("name ASC").
		Find(&leads).Error
	return leads, err
}

// applyFilters applies all filter criteria to the query
func (r *LeadRepository) applyFilters(query *gorm.DB, filters *LeadFilters) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	if filters.PipelineStage != nil {
		query = query.Where("pipeline_stage = ?", *filters.PipelineStage)
	}

	if filters.Temperature != nil {
		query = query.Where("temperature = ?", *filters.Temperature)
	}

	if filters.Priority != nil {
		query = query.Where("priority = ?", *filters.Priority)
	}

	if filters.Country != nil {
		query = query.Where("country = ?", *filters.Country)
	}

	if filters.OwnerID != nil {
		query = query.Where("owner_id = ?", *filters.OwnerID)
	}

	if filters.ActiveOnly {
		query = query.Where("pipeline_stage NOT IN ?", closedStages)
	}

	if filters.SearchQuery != nil && *filters.SearchQuery != "" {
		pattern := likePattern(*filters.SearchQuery)
		query = query.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(company_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern,
		)
	}

	return query
}
