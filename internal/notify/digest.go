package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/straye-as/pipeline-api/internal/domain"
)

var digestTemplate = template.Must(template.New("digest").Parse(`<h2>Follow-ups due {{.Date}}</h2>
<table>
<tr><th>Lead</th><th>Company</th><th>Status</th><th>Due</th></tr>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Company}}</td><td>{{.Status}}</td><td>{{.Due}}</td></tr>
{{end}}</table>
`))

type digestRow struct {
	Name    string
	Company string
	Status  string
	Due     string
}

// FollowupDigest builds the daily reminder for leads whose follow-up is due.
// It returns false when there is nothing to send.
func FollowupDigest(leads []domain.Lead, recipients []string, today time.Time) (Message, bool, error) {
	if len(leads) == 0 || len(recipients) == 0 {
		return Message{}, false, nil
	}

	date := today.Format(domain.DateLayout)
	rows := make([]digestRow, 0, len(leads))
	var text strings.Builder
	fmt.Fprintf(&text, "Follow-ups due %s\n\n", date)

	for _, l := range leads {
		due := ""
		if l.NextFollowupDate != nil {
			due = l.NextFollowupDate.Format(domain.DateLayout)
		}
		row := digestRow{
			Name:    l.Name,
			Company: l.CompanyKey(),
			Status:  l.Status.Label(),
			Due:     due,
		}
		rows = append(rows, row)
		fmt.Fprintf(&text, "- %s (%s), %s, due %s\n", row.Name, row.Company, row.Status, row.Due)
	}

	var html bytes.Buffer
	if err := digestTemplate.Execute(&html, struct {
		Date string
		Rows []digestRow
	}{date, rows}); err != nil {
		return Message{}, false, fmt.Errorf("failed to render digest: %w", err)
	}

	return Message{
		To:      recipients,
		Subject: fmt.Sprintf("%d follow-up(s) due %s", len(leads), date),
		Text:    text.String(),
		HTML:    html.String(),
	}, true, nil
}
