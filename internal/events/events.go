package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/domain"
)

// Routing keys of lead events
const (
	RoutingKeyStatusChanged = "lead.status_changed"
)

// LeadStatusChanged is published after a status change has been persisted
type LeadStatusChanged struct {
	LeadID       uuid.UUID         `json:"leadId"`
	CompanyKey   string            `json:"companyKey"`
	From         domain.LeadStatus `json:"from"`
	To           domain.LeadStatus `json:"to"`
	ContactCount int               `json:"contactCount"`
	ActorID      string            `json:"actorId,omitempty"`
	OccurredAt   time.Time         `json:"occurredAt"`
}

// Publisher delivers lead events to downstream consumers
type Publisher interface {
	PublishStatusChanged(ctx context.Context, event LeadStatusChanged) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishStatusChanged(ctx context.Context, event LeadStatusChanged) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
