package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/domain"
	"gorm.io/gorm"
)

// LeadActivityRepository handles the append-only lead audit trail.
//
// Index recommendations:
// - CREATE INDEX idx_lead_activities_lead_created ON lead_activities(lead_id, created_at DESC);
type LeadActivityRepository struct {
	db *gorm.DB
}

func NewLeadActivityRepository(db *gorm.DB) *LeadActivityRepository {
	return &LeadActivityRepository{db: db}
}

// AppendActivity inserts an audit entry. Entries are never updated.
func (r *LeadActivityRepository) AppendActivity(ctx context.Context, activity *domain.LeadActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListByLead returns the activities of a lead, newest first
func (r *LeadActivityRepository) ListByLead(ctx context.Context, leadID uuid.UUID, page, pageSize int) ([]domain.LeadActivity, int64, error) {
	var activities []domain.LeadActivity
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.LeadActivity{}).Where("lead_id = ?", leadID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Order("id").Offset(offset).Limit(pageSize).Find(&activities).Error

	return activities, total, err
}

// CountByType counts the activities of a lead with the given type
func (r *LeadActivityRepository) CountByType(ctx context.Context, leadID uuid.UUID, activityType domain.LeadActivityType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.LeadActivity{}).
		Where("lead_id = ? AND activity_type = ?", leadID, activityType).
		Count(&count).Error
	return count, err
}
