package pipeline

import "github.com/straye-as/pipeline-api/internal/domain"

// Column is one status column of the pipeline board
type Column struct {
	Status              domain.LeadStatus
	Leads               []domain.Lead
	TotalEstimatedValue float64
}

// PartitionColumns groups leads into one column per status, in board order.
// Every known status gets a column, empty or not, and leads keep their input order.
// Leads with a status outside the enumeration are left out.
func PartitionColumns(leads []domain.Lead) []Column {
	statuses := domain.AllLeadStatuses()
	index := make(map[domain.LeadStatus]int, len(statuses))
	columns := make([]Column, len(statuses))
	for i, s := range statuses {
		index[s] = i
		columns[i] = Column{Status: s, Leads: []domain.Lead{}}
	}

	for _, l := range leads {
		i, ok := index[l.Status]
		if !ok {
			continue
		}
		columns[i].Leads = append(columns[i].Leads, l)
		if l.EstimatedValue != nil {
			columns[i].TotalEstimatedValue += *l.EstimatedValue
		}
	}

	return columns
}
