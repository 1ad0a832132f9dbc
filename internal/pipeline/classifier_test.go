package pipeline_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lead(status domain.LeadStatus, stage domain.PipelineStage) domain.Lead {
	return domain.Lead{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		Name:          "Lead",
		Status:        status,
		PipelineStage: stage,
	}
}

func valuePtr(v float64) *float64 {
	return &v
}

// =============================================================================
// ClassifyCompany
// =============================================================================

func TestClassifyCompany(t *testing.T) {
	tests := []struct {
		name     string
		leads    []domain.Lead
		expected domain.CompanyStatus
	}{
		{
			name:     "empty list is closed",
			leads:    nil,
			expected: domain.CompanyStatusClosed,
		},
		{
			name: "all won or lost is closed",
			leads: []domain.Lead{
				lead(domain.LeadStatusQualified, domain.PipelineStageWon),
				lead(domain.LeadStatusContacted, domain.PipelineStageLost),
			},
			expected: domain.CompanyStatusClosed,
		},
		{
			name: "closing beats qualified and proposal",
			leads: []domain.Lead{
				lead(domain.LeadStatusQualified, domain.PipelineStageProposal),
				lead(domain.LeadStatusNew, domain.PipelineStageClosing),
			},
			expected: domain.CompanyStatusClosing,
		},
		{
			name: "negotiation beats demo",
			leads: []domain.Lead{
				lead(domain.LeadStatusNew, domain.PipelineStageDemo),
				lead(domain.LeadStatusNew, domain.PipelineStageNegotiation),
			},
			expected: domain.CompanyStatusNegotiation,
		},
		{
			name: "demo beats proposal",
			leads: []domain.Lead{
				lead(domain.LeadStatusNew, domain.PipelineStageProposal),
				lead(domain.LeadStatusNew, domain.PipelineStageDemo),
			},
			expected: domain.CompanyStatusDemo,
		},
		{
			name: "proposal alone",
			leads: []domain.Lead{
				lead(domain.LeadStatusDormant, domain.PipelineStageProposal),
			},
			expected: domain.CompanyStatusProposal,
		},
		{
			name: "qualified status on a closed lead still counts",
			leads: []domain.Lead{
				lead(domain.LeadStatusNew, domain.PipelineStageNone),
				lead(domain.LeadStatusQualified, domain.PipelineStageWon),
			},
			expected: domain.CompanyStatusQualified,
		},
		{
			name: "won and lost stages never name the company",
			leads: []domain.Lead{
				lead(domain.LeadStatusNew, domain.PipelineStageNone),
				lead(domain.LeadStatusContacted, domain.PipelineStageLost),
				lead(domain.LeadStatusContacted, domain.PipelineStageWon),
			},
			expected: domain.CompanyStatusInitial,
		},
		{
			name: "qualified without stage",
			leads: []domain.Lead{
				lead(domain.LeadStatusNew, domain.PipelineStageNone),
				lead(domain.LeadStatusQualified, domain.PipelineStageNone),
			},
			expected: domain.CompanyStatusQualified,
		},
		{
			name: "new and contacted are initial",
			leads: []domain.Lead{
				lead(domain.LeadStatusNew, domain.PipelineStageNone),
				lead(domain.LeadStatusContacted, domain.PipelineStageNone),
			},
			expected: domain.CompanyStatusInitial,
		},
		{
			name: "new with not_qualified is mixed",
			leads: []domain.Lead{
				lead(domain.LeadStatusNew, domain.PipelineStageNone),
				lead(domain.LeadStatusNotQualified, domain.PipelineStageNone),
			},
			expected: domain.CompanyStatusMixed,
		},
		{
			name: "closed lead statuses still count against initial",
			leads: []domain.Lead{
				lead(domain.LeadStatusNew, domain.PipelineStageNone),
				lead(domain.LeadStatusDormant, domain.PipelineStageLost),
			},
			expected: domain.CompanyStatusMixed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pipeline.ClassifyCompany(tt.leads))
		})
	}
}

func TestClassifyCompany_OrderIndependent(t *testing.T) {
	leads := []domain.Lead{
		lead(domain.LeadStatusNew, domain.PipelineStageProposal),
		lead(domain.LeadStatusQualified, domain.PipelineStageNone),
		lead(domain.LeadStatusContacted, domain.PipelineStageNegotiation),
		lead(domain.LeadStatusDormant, domain.PipelineStageWon),
	}
	reversed := []domain.Lead{leads[3], leads[2], leads[1], leads[0]}

	assert.Equal(t, domain.CompanyStatusNegotiation, pipeline.ClassifyCompany(leads))
	assert.Equal(t, pipeline.ClassifyCompany(leads), pipeline.ClassifyCompany(reversed))
}

// =============================================================================
// GroupCompanies
// =============================================================================

func TestGroupCompanies(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	acmeOld := lead(domain.LeadStatusNew, domain.PipelineStageNone)
	acmeOld.CompanyName = "Acme"
	acmeOld.Name = "Ana"
	acmeOld.EstimatedValue = valuePtr(1000)
	acmeOld.UpdatedAt = base

	acmeNew := lead(domain.LeadStatusQualified, domain.PipelineStageWon)
	acmeNew.CompanyName = " Acme "
	acmeNew.Name = "Bruno"
	acmeNew.EstimatedValue = valuePtr(500)
	acmeNew.UpdatedAt = base.Add(2 * time.Hour)

	solo := lead(domain.LeadStatusContacted, domain.PipelineStageNone)
	solo.Name = "Carla"
	solo.UpdatedAt = base.Add(time.Hour)

	companies := pipeline.GroupCompanies([]domain.Lead{acmeOld, solo, acmeNew})
	require.Len(t, companies, 2)

	acme := companies[0]
	assert.Equal(t, "Acme", acme.Key)
	assert.Equal(t, 2, acme.TotalLeads)
	assert.Equal(t, 1, acme.ActiveLeads)
	assert.Equal(t, 1500.0, acme.TotalEstimatedValue)
	assert.Equal(t, acmeNew.ID, acme.MainContact.ID)
	assert.Equal(t, acmeNew.UpdatedAt, acme.LastActivity)
	assert.Equal(t, domain.CompanyStatusQualified, acme.GeneralStatus)

	carla := companies[1]
	assert.Equal(t, "Carla", carla.Key)
	assert.Equal(t, 1, carla.TotalLeads)
	assert.Equal(t, 0.0, carla.TotalEstimatedValue)
	assert.Equal(t, domain.CompanyStatusInitial, carla.GeneralStatus)
}

func TestFindCompany(t *testing.T) {
	a := lead(domain.LeadStatusNew, domain.PipelineStageDemo)
	a.CompanyName = "Globex"
	b := lead(domain.LeadStatusNew, domain.PipelineStageNone)
	b.CompanyName = "Initech"

	summary, ok := pipeline.FindCompany([]domain.Lead{a, b}, "Globex")
	require.True(t, ok)
	assert.Equal(t, 1, summary.TotalLeads)
	assert.Equal(t, domain.CompanyStatusDemo, summary.GeneralStatus)

	_, ok = pipeline.FindCompany([]domain.Lead{a, b}, "Umbrella")
	assert.False(t, ok)
}

// =============================================================================
// PartitionColumns
// =============================================================================

func TestPartitionColumns(t *testing.T) {
	n1 := lead(domain.LeadStatusNew, domain.PipelineStageNone)
	n1.EstimatedValue = valuePtr(100)
	n2 := lead(domain.LeadStatusNew, domain.PipelineStageNone)
	n2.EstimatedValue = valuePtr(50)
	q := lead(domain.LeadStatusQualified, domain.PipelineStageDemo)

	columns := pipeline.PartitionColumns([]domain.Lead{n1, q, n2})
	require.Len(t, columns, len(domain.AllLeadStatuses()))

	for i, s := range domain.AllLeadStatuses() {
		assert.Equal(t, s, columns[i].Status)
	}

	assert.Len(t, columns[0].Leads, 2)
	assert.Equal(t, n1.ID, columns[0].Leads[0].ID)
	assert.Equal(t, n2.ID, columns[0].Leads[1].ID)
	assert.Equal(t, 150.0, columns[0].TotalEstimatedValue)

	total := 0
	for _, c := range columns {
		total += len(c.Leads)
		for _, l := range c.Leads {
			assert.Equal(t, c.Status, l.Status)
		}
	}
	assert.Equal(t, 3, total)
}

func TestPartitionColumns_Idempotent(t *testing.T) {
	leads := []domain.Lead{
		lead(domain.LeadStatusCallback, domain.PipelineStageNone),
		lead(domain.LeadStatusDormant, domain.PipelineStageLost),
		lead(domain.LeadStatusCallback, domain.PipelineStageProposal),
	}

	assert.Equal(t, pipeline.PartitionColumns(leads), pipeline.PartitionColumns(leads))
}

func TestPartitionColumns_Empty(t *testing.T) {
	columns := pipeline.PartitionColumns(nil)
	require.Len(t, columns, len(domain.AllLeadStatuses()))
	for _, c := range columns {
		assert.NotNil(t, c.Leads)
		assert.Empty(t, c.Leads)
	}
}
