package domain

import (
	"github.com/google/uuid"
)

// DTOs for API requests and responses

type LeadDTO struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	CompanyName      string          `json:"companyName,omitempty"`
	CompanyKey       string          `json:"companyKey"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Country          string          `json:"country,omitempty"`
	ServiceInterest  string          `json:"serviceInterest,omitempty"`
	Status           LeadStatus      `json:"status"`
	StatusLabel      string          `json:"statusLabel"`
	PipelineStage    PipelineStage   `json:"pipelineStage"`
	StageLabel       string          `json:"stageLabel"`
	Temperature      LeadTemperature `json:"temperature"`
	Priority         LeadPriority    `json:"priority"`
	EstimatedValue   *float64        `json:"estimatedValue,omitempty"`
	Currency         string          `json:"currency"`
	Notes            string          `json:"notes,omitempty"`
	OwnerID          string          `json:"ownerId,omitempty"`
	LastContactDate  *string         `json:"lastContactDate,omitempty"`  // YYYY-MM-DD
	NextFollowupDate *string         `json:"nextFollowupDate,omitempty"` // YYYY-MM-DD
	ContactCount     int             `json:"contactCount"`
	CreatedAt        string          `json:"createdAt"` // ISO 8601
	UpdatedAt        string          `json:"updatedAt"` // ISO 8601
}

type LeadActivityDTO struct {
	ID           uuid.UUID        `json:"id"`
	LeadID       uuid.UUID        `json:"leadId"`
	UserID       string           `json:"userId,omitempty"`
	UserName     string           `json:"userName,omitempty"`
	ActivityType LeadActivityType `json:"activityType"`
	Description  string           `json:"description"`
	Outcome      string           `json:"outcome,omitempty"`
	CreatedAt    string           `json:"createdAt"` // ISO 8601
}

// CompanyDTO is a company summary derived from the leads that share a company key
type CompanyDTO struct {
	Key                 string        `json:"key"`
	TotalLeads          int           `json:"totalLeads"`
	ActiveLeads         int           `json:"activeLeads"`
	TotalEstimatedValue float64       `json:"totalEstimatedValue"`
	GeneralStatus       CompanyStatus `json:"generalStatus"`
	GeneralStatusLabel  string        `json:"generalStatusLabel"`
	GeneralStatusColor  string        `json:"generalStatusColor"`
	MainContact         *LeadDTO      `json:"mainContact,omitempty"`
	LastActivity        string        `json:"lastActivity,omitempty"` // ISO 8601
	Leads               []LeadDTO     `json:"leads,omitempty"`
}

// PipelineColumnDTO is one status column of the board
type PipelineColumnDTO struct {
	Status              LeadStatus `json:"status"`
	Label               string     `json:"label"`
	Color               string     `json:"color"`
	Count               int        `json:"count"`
	TotalEstimatedValue float64    `json:"totalEstimatedValue"`
	Leads               []LeadDTO  `json:"leads"`
}

type PipelineBoardDTO struct {
	Columns    []PipelineColumnDTO `json:"columns"`
	TotalLeads int                 `json:"totalLeads"`
}

// StatusTransitionDTO reports the outcome of a status change request
type StatusTransitionDTO struct {
	Lead          LeadDTO    `json:"lead"`
	FromStatus    LeadStatus `json:"fromStatus"`
	ToStatus      LeadStatus `json:"toStatus"`
	Changed       bool       `json:"changed"`
	AuditRecorded bool       `json:"auditRecorded"`
}

// EnumOptionDTO is a value of an enumeration with its display label and color
type EnumOptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// StatusCatalogDTO lists the label tables of every pipeline enumeration
type StatusCatalogDTO struct {
	Statuses        []EnumOptionDTO `json:"statuses"`
	Stages          []EnumOptionDTO `json:"stages"`
	Temperatures    []EnumOptionDTO `json:"temperatures"`
	Priorities      []EnumOptionDTO `json:"priorities"`
	CompanyStatuses []EnumOptionDTO `json:"companyStatuses"`
}

// PaginatedResponse wraps list results
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Request DTOs

type CreateLeadRequest struct {
	Name             string          `json:"name" validate:"required,max=200"`
	CompanyName      string          `json:"companyName,omitempty" validate:"max=200"`
	Email            string          `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone            string          `json:"phone,omitempty" validate:"max=50"`
	Country          string          `json:"country,omitempty" validate:"max=100"`
	ServiceInterest  string          `json:"serviceInterest,omitempty" validate:"max=200"`
	Status           LeadStatus      `json:"status,omitempty" validate:"omitempty,oneof=new contacted no_answer callback interested qualified not_qualified dormant"`
	PipelineStage    PipelineStage   `json:"pipelineStage,omitempty" validate:"omitempty,oneof=none proposal demo negotiation closing won lost"`
	Temperature      LeadTemperature `json:"temperature,omitempty" validate:"omitempty,oneof=cold warm hot"`
	Priority         LeadPriority    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedValue   *float64        `json:"estimatedValue,omitempty" validate:"omitempty,gte=0"`
	Currency         string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes            string          `json:"notes,omitempty"`
	NextFollowupDate *string         `json:"nextFollowupDate,omitempty"` // YYYY-MM-DD
}

// UpdateLeadRequest replaces the editable fields of a lead. Status changes go
// through the status endpoint so they are audited.
type UpdateLeadRequest struct {
	Name             string          `json:"name" validate:"required,max=200"`
	CompanyName      string          `json:"companyName,omitempty" validate:"max=200"`
	Email            string          `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone            string          `json:"phone,omitempty" validate:"max=50"`
	Country          string          `json:"country,omitempty" validate:"max=100"`
	ServiceInterest  string          `json:"serviceInterest,omitempty" validate:"max=200"`
	PipelineStage    PipelineStage   `json:"pipelineStage" validate:"required,oneof=none proposal demo negotiation closing won lost"`
	Temperature      LeadTemperature `json:"temperature" validate:"required,oneof=cold warm hot"`
	Priority         LeadPriority    `json:"priority" validate:"required,oneof=low medium high urgent"`
	EstimatedValue   *float64        `json:"estimatedValue,omitempty" validate:"omitempty,gte=0"`
	Currency         string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes            string          `json:"notes,omitempty"`
	NextFollowupDate *string         `json:"nextFollowupDate,omitempty"` // YYYY-MM-DD
}

type ChangeLeadStatusRequest struct {
	Status LeadStatus `json:"status" validate:"required,oneof=new contacted no_answer callback interested qualified not_qualified dormant"`
}

type LogContactRequest struct {
	ActivityType     LeadActivityType `json:"activityType" validate:"required,oneof=call email meeting whatsapp note"`
	Description      string           `json:"description" validate:"required,max=2000"`
	Outcome          string           `json:"outcome,omitempty" validate:"max=500"`
	NextFollowupDate *string          `json:"nextFollowupDate,omitempty"` // YYYY-MM-DD
}

// PipelineSnapshotDTO is the exported state of the board at a point in time
type PipelineSnapshotDTO struct {
	GeneratedAt string           `json:"generatedAt"` // ISO 8601
	Board       PipelineBoardDTO `json:"board"`
	Companies   []CompanyDTO     `json:"companies"`
}

// BoardRefreshDTO reports a reload of the board from the store
type BoardRefreshDTO struct {
	Leads int `json:"leads"`
}

// StatusChangeFailedDTO is returned when a status change could not be persisted.
// CurrentStatus is the status the lead was restored to.
type StatusChangeFailedDTO struct {
	APIError
	LeadID        uuid.UUID  `json:"leadId"`
	CurrentStatus LeadStatus `json:"currentStatus"`
}
