package domain

// Label and color tables. Every switch lists all enum values; adding a value
// without a case falls through to the raw value and is caught by labels_test.go.

// Label returns the display name of the status
func (s LeadStatus) Label() string {
	switch s {
	case LeadStatusNew:
		return "New"
	case LeadStatusContacted:
		return "Contacted"
	case LeadStatusNoAnswer:
		return "No answer"
	case LeadStatusCallback:
		return "Call back"
	case LeadStatusInterested:
		return "Interested"
	case LeadStatusQualified:
		return "Qualified"
	case LeadStatusNotQualified:
		return "Not qualified"
	case LeadStatusDormant:
		return "Dormant"
	}
	return string(s)
}

// Color returns the presentation class of the status badge
func (s LeadStatus) Color() string {
	switch s {
	case LeadStatusNew:
		return "bg-blue-100 text-blue-800"
	case LeadStatusContacted:
		return "bg-indigo-100 text-indigo-800"
	case LeadStatusNoAnswer:
		return "bg-gray-100 text-gray-800"
	case LeadStatusCallback:
		return "bg-yellow-100 text-yellow-800"
	case LeadStatusInterested:
		return "bg-teal-100 text-teal-800"
	case LeadStatusQualified:
		return "bg-green-100 text-green-800"
	case LeadStatusNotQualified:
		return "bg-red-100 text-red-800"
	case LeadStatusDormant:
		return "bg-slate-100 text-slate-600"
	}
	return defaultColor
}

// Label returns the display name of the stage
func (s PipelineStage) Label() string {
	switch s {
	case PipelineStageNone:
		return "No stage"
	case PipelineStageProposal:
		return "Proposal"
	case PipelineStageDemo:
		return "Demo"
	case PipelineStageNegotiation:
		return "Negotiation"
	case PipelineStageClosing:
		return "Closing"
	case PipelineStageWon:
		return "Won"
	case PipelineStageLost:
		return "Lost"
	}
	return string(s)
}

// Color returns the presentation class of the stage badge
func (s PipelineStage) Color() string {
	switch s {
	case PipelineStageNone:
		return "bg-gray-100 text-gray-600"
	case PipelineStageProposal:
		return "bg-sky-100 text-sky-800"
	case PipelineStageDemo:
		return "bg-violet-100 text-violet-800"
	case PipelineStageNegotiation:
		return "bg-amber-100 text-amber-800"
	case PipelineStageClosing:
		return "bg-orange-100 text-orange-800"
	case PipelineStageWon:
		return "bg-green-100 text-green-800"
	case PipelineStageLost:
		return "bg-red-100 text-red-800"
	}
	return defaultColor
}

// Label returns the display name of the temperature
func (t LeadTemperature) Label() string {
	switch t {
	case LeadTemperatureCold:
		return "Cold"
	case LeadTemperatureWarm:
		return "Warm"
	case LeadTemperatureHot:
		return "Hot"
	}
	return string(t)
}

// Color returns the presentation class of the temperature badge
func (t LeadTemperature) Color() string {
	switch t {
	case LeadTemperatureCold:
		return "bg-blue-100 text-blue-700"
	case LeadTemperatureWarm:
		return "bg-orange-100 text-orange-700"
	case LeadTemperatureHot:
		return "bg-red-100 text-red-700"
	}
	return defaultColor
}

// Label returns the display name of the priority
func (p LeadPriority) Label() string {
	switch p {
	case LeadPriorityLow:
		return "Low"
	case LeadPriorityMedium:
		return "Medium"
	case LeadPriorityHigh:
		return "High"
	case LeadPriorityUrgent:
		return "Urgent"
	}
	return string(p)
}

// Color returns the presentation class of the priority badge
func (p LeadPriority) Color() string {
	switch p {
	case LeadPriorityLow:
		return "bg-gray-100 text-gray-700"
	case LeadPriorityMedium:
		return "bg-blue-100 text-blue-700"
	case LeadPriorityHigh:
		return "bg-orange-100 text-orange-700"
	case LeadPriorityUrgent:
		return "bg-red-100 text-red-700"
	}
	return defaultColor
}

// Label returns the display name of the company status
func (s CompanyStatus) Label() string {
	switch s {
	case CompanyStatusClosing:
		return "Closing"
	case CompanyStatusNegotiation:
		return "Negotiation"
	case CompanyStatusDemo:
		return "Demo"
	case CompanyStatusProposal:
		return "Proposal"
	case CompanyStatusQualified:
		return "Qualified"
	case CompanyStatusInitial:
		return "Initial contact"
	case CompanyStatusClosed:
		return "Closed"
	case CompanyStatusMixed:
		return "Mixed"
	}
	return string(s)
}

// Color returns the presentation class of the company status badge
func (s CompanyStatus) Color() string {
	switch s {
	case CompanyStatusClosing:
		return "bg-orange-100 text-orange-800"
	case CompanyStatusNegotiation:
		return "bg-amber-100 text-amber-800"
	case CompanyStatusDemo:
		return "bg-violet-100 text-violet-800"
	case CompanyStatusProposal:
		return "bg-sky-100 text-sky-800"
	case CompanyStatusQualified:
		return "bg-green-100 text-green-800"
	case CompanyStatusInitial:
		return "bg-blue-100 text-blue-800"
	case CompanyStatusClosed:
		return "bg-gray-100 text-gray-600"
	case CompanyStatusMixed:
		return "bg-purple-100 text-purple-800"
	}
	return defaultColor
}

const defaultColor = "bg-gray-100 text-gray-800"
