package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with the lead schema
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "failed to open test database")

	// Every pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Lead{}, &domain.LeadActivity{}))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// LeadOption customizes a test lead
type LeadOption func(*domain.Lead)

// WithStatus sets the lead status
func WithStatus(s domain.LeadStatus) LeadOption {
	return func(l *domain.Lead) { l.Status = s }
}

// WithStage sets the pipeline stage
func WithStage(s domain.PipelineStage) LeadOption {
	return func(l *domain.Lead) { l.PipelineStage = s }
}

// WithCompany sets the company name
func WithCompany(name string) LeadOption {
	return func(l *domain.Lead) { l.CompanyName = name }
}

// WithValue sets the estimated value
func WithValue(v float64) LeadOption {
	return func(l *domain.Lead) { l.EstimatedValue = &v }
}

// WithFollowup sets the next follow-up date
func WithFollowup(d time.Time) LeadOption {
	return func(l *domain.Lead) {
		day := domain.DateOnly(d)
		l.NextFollowupDate = &day
	}
}

// CreateTestLead inserts a lead with sensible defaults
func CreateTestLead(t *testing.T, db *gorm.DB, name string, opts ...LeadOption) *domain.Lead {
	t.Helper()

	lead := &domain.Lead{
		Name:          name,
		Email:         "lead@example.com",
		Country:       "Portugal",
		Status:        domain.LeadStatusNew,
		PipelineStage: domain.PipelineStageNone,
		Temperature:   domain.LeadTemperatureCold,
		Priority:      domain.LeadPriorityMedium,
		Currency:      "EUR",
	}
	for _, opt := range opts {
		opt(lead)
	}

	require.NoError(t, db.WithContext(context.Background()).Create(lead).Error)
	return lead
}
