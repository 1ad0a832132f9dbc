package domain

// LeadStatus is the contact status of a lead. The declaration order is the
// column order of the pipeline board.
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusNoAnswer     LeadStatus = "no_answer"
	LeadStatusCallback     LeadStatus = "callback"
	LeadStatusInterested   LeadStatus = "interested"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusNotQualified LeadStatus = "not_qualified"
	LeadStatusDormant      LeadStatus = "dormant"
)

// AllLeadStatuses returns every lead status in board column order
func AllLeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusNoAnswer,
		LeadStatusCallback,
		LeadStatusInterested,
		LeadStatusQualified,
		LeadStatusNotQualified,
		LeadStatusDormant,
	}
}

// IsValid checks if the LeadStatus is a valid enum value
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusNoAnswer, LeadStatusCallback,
		LeadStatusInterested, LeadStatusQualified, LeadStatusNotQualified, LeadStatusDormant:
		return true
	}
	return false
}

// IsInitial reports whether no meaningful conversation has happened yet
func (s LeadStatus) IsInitial() bool {
	return s == LeadStatusNew || s == LeadStatusContacted
}

// PipelineStage is the sales stage of a lead, orthogonal to its contact status
type PipelineStage string

const (
	PipelineStageNone        PipelineStage = "none"
	PipelineStageProposal    PipelineStage = "proposal"
	PipelineStageDemo        PipelineStage = "demo"
	PipelineStageNegotiation PipelineStage = "negotiation"
	PipelineStageClosing     PipelineStage = "closing"
	PipelineStageWon         PipelineStage = "won"
	PipelineStageLost        PipelineStage = "lost"
)

// AllPipelineStages returns every pipeline stage in sales order
func AllPipelineStages() []PipelineStage {
	return []PipelineStage{
		PipelineStageNone,
		PipelineStageProposal,
		PipelineStageDemo,
		PipelineStageNegotiation,
		PipelineStageClosing,
		PipelineStageWon,
		PipelineStageLost,
	}
}

// IsValid checks if the PipelineStage is a valid enum value
func (s PipelineStage) IsValid() bool {
	switch s {
	case PipelineStageNone, PipelineStageProposal, PipelineStageDemo, PipelineStageNegotiation,
		PipelineStageClosing, PipelineStageWon, PipelineStageLost:
		return true
	}
	return false
}

// IsClosed reports whether the stage is terminal (won or lost)
func (s PipelineStage) IsClosed() bool {
	return s == PipelineStageWon || s == PipelineStageLost
}

// LeadTemperature is the perceived buying interest of a lead
type LeadTemperature string

const (
	LeadTemperatureCold LeadTemperature = "cold"
	LeadTemperatureWarm LeadTemperature = "warm"
	LeadTemperatureHot  LeadTemperature = "hot"
)

// AllLeadTemperatures returns every temperature from cold to hot
func AllLeadTemperatures() []LeadTemperature {
	return []LeadTemperature{LeadTemperatureCold, LeadTemperatureWarm, LeadTemperatureHot}
}

// IsValid checks if the LeadTemperature is a valid enum value
func (t LeadTemperature) IsValid() bool {
	switch t {
	case LeadTemperatureCold, LeadTemperatureWarm, LeadTemperatureHot:
		return true
	}
	return false
}

// LeadPriority is the follow-up urgency of a lead
type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "low"
	LeadPriorityMedium LeadPriority = "medium"
	LeadPriorityHigh   LeadPriority = "high"
	LeadPriorityUrgent LeadPriority = "urgent"
)

// AllLeadPriorities returns every priority from low to urgent
func AllLeadPriorities() []LeadPriority {
	return []LeadPriority{LeadPriorityLow, LeadPriorityMedium, LeadPriorityHigh, LeadPriorityUrgent}
}

// IsValid checks if the LeadPriority is a valid enum value
func (p LeadPriority) IsValid() bool {
	switch p {
	case LeadPriorityLow, LeadPriorityMedium, LeadPriorityHigh, LeadPriorityUrgent:
		return true
	}
	return false
}

// CompanyStatus is the representative status derived for a company from its leads
type CompanyStatus string

const (
	CompanyStatusClosing     CompanyStatus = "closing"
	CompanyStatusNegotiation CompanyStatus = "negotiation"
	CompanyStatusDemo        CompanyStatus = "demo"
	CompanyStatusProposal    CompanyStatus = "proposal"
	CompanyStatusQualified   CompanyStatus = "qualified"
	CompanyStatusInitial     CompanyStatus = "initial"
	CompanyStatusClosed      CompanyStatus = "closed"
	CompanyStatusMixed       CompanyStatus = "mixed"
)

// AllCompanyStatuses returns every company status, most advanced first
func AllCompanyStatuses() []CompanyStatus {
	return []CompanyStatus{
		CompanyStatusClosing,
		CompanyStatusNegotiation,
		CompanyStatusDemo,
		CompanyStatusProposal,
		CompanyStatusQualified,
		CompanyStatusInitial,
		CompanyStatusClosed,
		CompanyStatusMixed,
	}
}

// IsValid checks if the CompanyStatus is a valid enum value
func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusClosing, CompanyStatusNegotiation, CompanyStatusDemo, CompanyStatusProposal,
		CompanyStatusQualified, CompanyStatusInitial, CompanyStatusClosed, CompanyStatusMixed:
		return true
	}
	return false
}

// LeadActivityType tags an audit entry. Values outside the constants below are
// accepted when read back from storage.
type LeadActivityType string

const (
	LeadActivityStatusChange LeadActivityType = "status_change"
	LeadActivityStageChange  LeadActivityType = "stage_change"
	LeadActivityCreated      LeadActivityType = "created"
	LeadActivityCall         LeadActivityType = "call"
	LeadActivityEmail        LeadActivityType = "email"
	LeadActivityMeeting      LeadActivityType = "meeting"
	LeadActivityWhatsApp     LeadActivityType = "whatsapp"
	LeadActivityNote         LeadActivityType = "note"
)

// IsContact reports whether the activity type records a contact with the lead
func (t LeadActivityType) IsContact() bool {
	switch t {
	case LeadActivityCall, LeadActivityEmail, LeadActivityMeeting, LeadActivityWhatsApp, LeadActivityNote:
		return true
	}
	return false
}
