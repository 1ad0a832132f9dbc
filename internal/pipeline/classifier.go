package pipeline

import (
	"sort"
	"time"

	"github.com/straye-as/pipeline-api/internal/domain"
)

// stagePriority lists the stages that name a company, most advanced first
var stagePriority = []struct {
	stage  domain.PipelineStage
	status domain.CompanyStatus
}{
	{domain.PipelineStageClosing, domain.CompanyStatusClosing},
	{domain.PipelineStageNegotiation, domain.CompanyStatusNegotiation},
	{domain.PipelineStageDemo, domain.CompanyStatusDemo},
	{domain.PipelineStageProposal, domain.CompanyStatusProposal},
}

// ClassifyCompany derives the representative status of a company from its leads.
//
// A company without open leads is closed. Otherwise the most advanced stage
// present on any lead wins, then a qualified lead, then "initial" when every
// lead is new or contacted. Anything else is mixed. Stage and status checks
// scan all leads, including won and lost ones. The result does not depend on
// the order of leads.
func ClassifyCompany(leads []domain.Lead) domain.CompanyStatus {
	stages := make(map[domain.PipelineStage]bool, len(leads))
	hasActive := false
	hasQualified := false
	allInitial := true

	for i := range leads {
		l := &leads[i]
		stages[l.PipelineStage] = true
		if l.IsActive() {
			hasActive = true
		}
		if l.Status == domain.LeadStatusQualified {
			hasQualified = true
		}
		if !l.Status.IsInitial() {
			allInitial = false
		}
	}

	if !hasActive {
		return domain.CompanyStatusClosed
	}

	for _, p := range stagePriority {
		if stages[p.stage] {
			return p.status
		}
	}

	if hasQualified {
		return domain.CompanyStatusQualified
	}
	if allInitial {
		return domain.CompanyStatusInitial
	}
	return domain.CompanyStatusMixed
}

// CompanySummary is a company derived from the leads sharing a company key
type CompanySummary struct {
	Key                 string
	Leads               []domain.Lead
	TotalLeads          int
	ActiveLeads         int
	TotalEstimatedValue float64
	GeneralStatus       domain.CompanyStatus
	// MainContact is the most recently updated lead
	MainContact  domain.Lead
	LastActivity time.Time
}

// SummarizeCompany builds the summary of one company. Leads must share the key.
func SummarizeCompany(key string, leads []domain.Lead) CompanySummary {
	members := make([]domain.Lead, len(leads))
	copy(members, leads)
	sortByRecency(members)

	s := CompanySummary{
		Key:           key,
		Leads:         members,
		TotalLeads:    len(members),
		GeneralStatus: ClassifyCompany(members),
	}

	for i := range members {
		l := &members[i]
		if l.IsActive() {
			s.ActiveLeads++
		}
		if l.EstimatedValue != nil {
			s.TotalEstimatedValue += *l.EstimatedValue
		}
	}

	if len(members) > 0 {
		s.MainContact = members[0]
		s.LastActivity = members[0].UpdatedAt
	}

	return s
}

// GroupCompanies groups leads by company key and summarizes every group.
// Companies are ordered by last activity, most recent first, then by key.
func GroupCompanies(leads []domain.Lead) []CompanySummary {
	groups := make(map[string][]domain.Lead)
	for _, l := range leads {
		key := l.CompanyKey()
		groups[key] = append(groups[key], l)
	}

	out := make([]CompanySummary, 0, len(groups))
	for key, members := range groups {
		out = append(out, SummarizeCompany(key, members))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastActivity.Equal(out[j].LastActivity) {
			return out[i].LastActivity.After(out[j].LastActivity)
		}
		return out[i].Key < out[j].Key
	})

	return out
}

// FindCompany returns the summary of the company with the given key
func FindCompany(leads []domain.Lead, key string) (CompanySummary, bool) {
	var members []domain.Lead
	for _, l := range leads {
		if l.CompanyKey() == key {
			members = append(members, l)
		}
	}
	if len(members) == 0 {
		return CompanySummary{}, false
	}
	return SummarizeCompany(key, members), true
}
