package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/domain"
	applog "github.com/straye-as/pipeline-api/internal/logger"
	"go.uber.org/zap"
)

var (
	// ErrLeadNotFound is returned when the lead is not on the board
	ErrLeadNotFound = errors.New("lead not found on board")
	// ErrInvalidStatus is returned for a status outside the enumeration
	ErrInvalidStatus = errors.New("invalid lead status")
)

// PersistError reports a failed status persistence. The board has been rolled
// back to Previous when it returns.
type PersistError struct {
	LeadID   uuid.UUID
	Previous domain.LeadStatus
	Err      error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist status of lead %s: %v", e.LeadID, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// LeadStore persists status changes. UpdateLeadStatus sets the status, sets the
// last contact date, increments the contact count by one and returns the stored lead.
type LeadStore interface {
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus, contactDate time.Time) (*domain.Lead, error)
}

// ActivityStore appends audit entries
type ActivityStore interface {
	AppendActivity(ctx context.Context, activity *domain.LeadActivity) error
}

// AuditSink receives audit failures. They never fail the transition.
type AuditSink interface {
	AuditFailed(ctx context.Context, activity *domain.LeadActivity, err error)
}

// LogAuditSink logs audit failures
type LogAuditSink struct {
	logger *zap.Logger
}

// NewLogAuditSink creates an AuditSink writing to logger
func NewLogAuditSink(logger *zap.Logger) *LogAuditSink {
	return &LogAuditSink{logger: logger}
}

// AuditFailed implements AuditSink
func (s *LogAuditSink) AuditFailed(ctx context.Context, activity *domain.LeadActivity, err error) {
	applog.WithLead(s.logger, activity.LeadID).Warn("failed to record lead activity",
		zap.String("activity_type", string(activity.ActivityType)),
		zap.Error(err))
}

// Actor identifies who requested a transition
type Actor struct {
	ID   string
	Name string
}

// TransitionResult describes a completed transition
type TransitionResult struct {
	// Lead is the board state after the transition
	Lead    domain.Lead
	From    domain.LeadStatus
	To      domain.LeadStatus
	Changed bool
	// AuditErr is set when the status change was committed but its activity was not recorded
	AuditErr error
}

// AuditRecorded reports whether a status_change activity was appended
func (r TransitionResult) AuditRecorded() bool {
	return r.Changed && r.AuditErr == nil
}

// Coordinator moves leads between statuses on a board and keeps the remote
// store and audit trail in step with it.
type Coordinator struct {
	board      *Board
	leads      LeadStore
	activities ActivityStore
	audit      AuditSink
	now        func() time.Time
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// NewCoordinator creates a coordinator over board
func NewCoordinator(board *Board, leads LeadStore, activities ActivityStore, audit AuditSink, opts ...Option) *Coordinator {
	c := &Coordinator{
		board:      board,
		leads:      leads,
		activities: activities,
		audit:      audit,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Board returns the board the coordinator operates on
func (c *Coordinator) Board() *Board {
	return c.board
}

// Transition moves a lead to status to.
//
// The new status is applied to the board before the store is called, so readers
// see it immediately. When the store fails the board is reverted and a
// *PersistError is returned; no activity is recorded. When the store succeeds
// a status_change activity is appended; a failure there is reported to the
// AuditSink and in the result, not as an error.
//
// Requesting the current status is a no-op.
func (c *Coordinator) Transition(ctx context.Context, id uuid.UUID, to domain.LeadStatus, actor Actor) (TransitionResult, error) {
	if !to.IsValid() {
		return TransitionResult{}, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}

	current, ok := c.board.Get(id)
	if !ok {
		return TransitionResult{}, ErrLeadNotFound
	}

	from := current.Status
	if from == to {
		return TransitionResult{Lead: current, From: from, To: to}, nil
	}

	now := c.now()
	var (
		persisted *domain.Lead
		token     uint64
	)

	tx := &transaction{}
	tx.add("apply",
		func(ctx context.Context) error {
			prev, gen, ok := c.board.setStatus(id, to, now)
			if !ok {
				return ErrLeadNotFound
			}
			from, token = prev, gen
			return nil
		},
		func() {
			c.board.revertStatus(id, token, to, from)
		})
	tx.add("persist",
		func(ctx context.Context) error {
			var err error
			persisted, err = c.leads.UpdateLeadStatus(ctx, id, to, now)
			return err
		},
		nil)

	if err := tx.execute(ctx); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			return TransitionResult{}, ErrLeadNotFound
		}
		return TransitionResult{}, &PersistError{LeadID: id, Previous: from, Err: errors.Unwrap(err)}
	}

	after := c.settle(id, token, persisted)
	result := TransitionResult{Lead: after, From: from, To: to, Changed: true}

	activity := &domain.LeadActivity{
		LeadID:       id,
		UserID:       actor.ID,
		UserName:     actor.Name,
		ActivityType: domain.LeadActivityStatusChange,
		Description:  StatusChangeDescription(from, to),
	}
	// The status is committed; the audit append must not be cut short by the caller going away.
	if err := c.activities.AppendActivity(context.WithoutCancel(ctx), activity); err != nil {
		result.AuditErr = err
		c.audit.AuditFailed(ctx, activity, err)
	}

	return result, nil
}

// settle brings the board entry in line with the persisted row. A board reload
// that raced the store call may have put the pre-transition row back; the
// persisted status replaces it unless a newer transition has taken over.
func (c *Coordinator) settle(id uuid.UUID, token uint64, persisted *domain.Lead) domain.Lead {
	if persisted == nil {
		l, _ := c.board.Get(id)
		return l
	}
	return c.board.settleStatus(id, token, *persisted)
}

// StatusChangeDescription is the audit text of a status change
func StatusChangeDescription(from, to domain.LeadStatus) string {
	return fmt.Sprintf("Status changed from %s to %s", from.Label(), to.Label())
}
