package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID when the caller did not set one
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Lead is a prospective or active customer contact tracked through the pipeline
type Lead struct {
	BaseModel
	Name             string          `gorm:"type:varchar(200);not null"`
	CompanyName      string          `gorm:"type:varchar(200);index;column:company_name"`
	Email            string          `gorm:"type:varchar(255)"`
	Phone            string          `gorm:"type:varchar(50)"`
	Country          string          `gorm:"type:varchar(100)"`
	ServiceInterest  string          `gorm:"type:varchar(200);column:service_interest"`
	Status           LeadStatus      `gorm:"type:varchar(50);not null;default:'new';index"`
	PipelineStage    PipelineStage   `gorm:"type:varchar(50);not null;default:'none';index;column:pipeline_stage"`
	Temperature      LeadTemperature `gorm:"type:varchar(20);not null;default:'cold'"`
	Priority         LeadPriority    `gorm:"type:varchar(20);not null;default:'medium'"`
	EstimatedValue   *float64        `gorm:"type:decimal(15,2);column:estimated_value"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'EUR'"`
	Notes            string          `gorm:"type:text"`
	OwnerID          string          `gorm:"type:varchar(100);index;column:owner_id"`
	LastContactDate  *time.Time      `gorm:"type:date;column:last_contact_date"`
	NextFollowupDate *time.Time      `gorm:"type:date;index;column:next_followup_date"`
	ContactCount     int             `gorm:"not null;default:0;column:contact_count"`
	Activities       []LeadActivity  `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// IsActive reports whether the lead is still open in the pipeline
func (l *Lead) IsActive() bool {
	return !l.PipelineStage.IsClosed()
}

// CompanyKey is the grouping key of the company a lead belongs to:
// the trimmed company name, or the lead name when no company is set.
func (l *Lead) CompanyKey() string {
	return CompanyKeyFor(l.CompanyName, l.Name)
}

// CompanyKeyFor derives a company grouping key from a company name and a lead name
func CompanyKeyFor(companyName, name string) string {
	if key := strings.TrimSpace(companyName); key != "" {
		return key
	}
	return strings.TrimSpace(name)
}

// LeadActivity is an immutable audit entry attached to a lead
type LeadActivity struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	LeadID       uuid.UUID        `gorm:"type:uuid;not null;index;column:lead_id"`
	UserID       string           `gorm:"type:varchar(100);column:user_id"`
	UserName     string           `gorm:"type:varchar(200);column:user_name"`
	ActivityType LeadActivityType `gorm:"type:varchar(50);not null;index;column:activity_type"`
	Description  string           `gorm:"type:varchar(2000);not null"`
	Outcome      string           `gorm:"type:varchar(500)"`
	CreatedAt    time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

// TableName keeps the audit trail table name stable
func (LeadActivity) TableName() string {
	return "lead_activities"
}

// BeforeCreate assigns an ID when the caller did not set one
func (a *LeadActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
