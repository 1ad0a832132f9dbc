package mapper

import (
	"time"

	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/pipeline"
)

const timestampLayout = "2006-01-02T15:04:05Z"

// ToLeadDTO converts Lead to LeadDTO
func ToLeadDTO(lead *domain.Lead) domain.LeadDTO {
	return domain.LeadDTO{
		ID:               lead.ID,
		Name:             lead.Name,
		CompanyName:      lead.CompanyName,
		CompanyKey:       lead.CompanyKey(),
		Email:            lead.Email,
		Phone:            lead.Phone,
		Country:          lead.Country,
		ServiceInterest:  lead.ServiceInterest,
		Status:           lead.Status,
		StatusLabel:      lead.Status.Label(),
		PipelineStage:    lead.PipelineStage,
		StageLabel:       lead.PipelineStage.Label(),
		Temperature:      lead.Temperature,
		Priority:         lead.Priority,
		EstimatedValue:   lead.EstimatedValue,
		Currency:         lead.Currency,
		Notes:            lead.Notes,
		OwnerID:          lead.OwnerID,
		LastContactDate:  formatDate(lead.LastContactDate),
		NextFollowupDate: formatDate(lead.NextFollowupDate),
		ContactCount:     lead.ContactCount,
		CreatedAt:        lead.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:        lead.UpdatedAt.UTC().Format(timestampLayout),
	}
}

// ToLeadDTOs converts a slice of leads
func ToLeadDTOs(leads []domain.Lead) []domain.LeadDTO {
	dtos := make([]domain.LeadDTO, len(leads))
	for i := range leads {
		dtos[i] = ToLeadDTO(&leads[i])
	}
	return dtos
}

// ToLeadActivityDTO converts LeadActivity to LeadActivityDTO
func ToLeadActivityDTO(activity *domain.LeadActivity) domain.LeadActivityDTO {
	return domain.LeadActivityDTO{
		ID:           activity.ID,
		LeadID:       activity.LeadID,
		UserID:       activity.UserID,
		UserName:     activity.UserName,
		ActivityType: activity.ActivityType,
		Description:  activity.Description,
		Outcome:      activity.Outcome,
		CreatedAt:    activity.CreatedAt.UTC().Format(timestampLayout),
	}
}

// ToCompanyDTO converts a company summary. Leads are included only when withLeads is set.
func ToCompanyDTO(summary *pipeline.CompanySummary, withLeads bool) domain.CompanyDTO {
	dto := domain.CompanyDTO{
		Key:                 summary.Key,
		TotalLeads:          summary.TotalLeads,
		ActiveLeads:         summary.ActiveLeads,
		TotalEstimatedValue: summary.TotalEstimatedValue,
		GeneralStatus:       summary.GeneralStatus,
		GeneralStatusLabel:  summary.GeneralStatus.Label(),
		GeneralStatusColor:  summary.GeneralStatus.Color(),
	}

	if summary.TotalLeads > 0 {
		main := ToLeadDTO(&summary.MainContact)
		dto.MainContact = &main
	}
	if !summary.LastActivity.IsZero() {
		dto.LastActivity = summary.LastActivity.UTC().Format(timestampLayout)
	}
	if withLeads {
		dto.Leads = ToLeadDTOs(summary.Leads)
	}

	return dto
}

// ToPipelineBoardDTO converts the column partition of a board
func ToPipelineBoardDTO(columns []pipeline.Column) domain.PipelineBoardDTO {
	board := domain.PipelineBoardDTO{
		Columns: make([]domain.PipelineColumnDTO, len(columns)),
	}
	for i, col := range columns {
		board.Columns[i] = domain.PipelineColumnDTO{
			Status:              col.Status,
			Label:               col.Status.Label(),
			Color:               col.Status.Color(),
			Count:               len(col.Leads),
			TotalEstimatedValue: col.TotalEstimatedValue,
			Leads:               ToLeadDTOs(col.Leads),
		}
		board.TotalLeads += len(col.Leads)
	}
	return board
}

// ToStatusTransitionDTO converts the outcome of a status transition
func ToStatusTransitionDTO(result *pipeline.TransitionResult) domain.StatusTransitionDTO {
	return domain.StatusTransitionDTO{
		Lead:          ToLeadDTO(&result.Lead),
		FromStatus:    result.From,
		ToStatus:      result.To,
		Changed:       result.Changed,
		AuditRecorded: result.AuditRecorded(),
	}
}

// ToStatusCatalogDTO builds the label tables of every pipeline enumeration
func ToStatusCatalogDTO() domain.StatusCatalogDTO {
	catalog := domain.StatusCatalogDTO{}
	for _, s := range domain.AllLeadStatuses() {
		catalog.Statuses = append(catalog.Statuses, domain.EnumOptionDTO{Value: string(s), Label: s.Label(), Color: s.Color()})
	}
	for _, s := range domain.AllPipelineStages() {
		catalog.Stages = append(catalog.Stages, domain.EnumOptionDTO{Value: string(s), Label: s.Label(), Color: s.Color()})
	}
	for _, t := range domain.AllLeadTemperatures() {
		catalog.Temperatures = append(catalog.Temperatures, domain.EnumOptionDTO{Value: string(t), Label: t.Label(), Color: t.Color()})
	}
	for _, p := range domain.AllLeadPriorities() {
		catalog.Priorities = append(catalog.Priorities, domain.EnumOptionDTO{Value: string(p), Label: p.Label(), Color: p.Color()})
	}
	for _, c := range domain.AllCompanyStatuses() {
		catalog.CompanyStatuses = append(catalog.CompanyStatuses, domain.EnumOptionDTO{Value: string(c), Label: c.Label(), Color: c.Color()})
	}
	return catalog
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}
