package pipeline

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/domain"
)

// Board is the in-memory lead snapshot that the kanban, the companies view and
// the transition coordinator read from. The remote store stays the source of
// truth; the board is reloaded from it with Replace.
//
// Leads go in and come out as deep copies, pointer fields included, so callers
// may keep and modify results without holding a lock.
type Board struct {
	mu    sync.RWMutex
	leads map[uuid.UUID]domain.Lead
	// gen counts optimistic status writes per lead. It survives Replace so a
	// transition can tell a reload of the same lead from a newer transition.
	gen map[uuid.UUID]uint64
}

// NewBoard creates a board holding the given leads
func NewBoard(leads []domain.Lead) *Board {
	b := &Board{gen: make(map[uuid.UUID]uint64)}
	b.Replace(leads)
	return b
}

// Replace swaps the whole snapshot
func (b *Board) Replace(leads []domain.Lead) {
	next := make(map[uuid.UUID]domain.Lead, len(leads))
	for _, l := range leads {
		next[l.ID] = cloneLead(l)
	}

	b.mu.Lock()
	b.leads = next
	b.mu.Unlock()
}

// Upsert inserts or replaces one lead
func (b *Board) Upsert(lead domain.Lead) {
	lead = cloneLead(lead)

	b.mu.Lock()
	b.leads[lead.ID] = lead
	b.mu.Unlock()
}

// Remove drops a lead from the snapshot
func (b *Board) Remove(id uuid.UUID) {
	b.mu.Lock()
	delete(b.leads, id)
	b.mu.Unlock()
}

// Get returns the lead with the given id
func (b *Board) Get(id uuid.UUID) (domain.Lead, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	l, ok := b.leads[id]
	if !ok {
		return domain.Lead{}, false
	}
	return cloneLead(l), true
}

// Len returns the number of leads on the board
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.leads)
}

// Leads returns all leads, most recently updated first
func (b *Board) Leads() []domain.Lead {
	b.mu.RLock()
	out := make([]domain.Lead, 0, len(b.leads))
	for _, l := range b.leads {
		out = append(out, cloneLead(l))
	}
	b.mu.RUnlock()

	sortByRecency(out)
	return out
}

// setStatus applies a status optimistically. It returns the status it replaced
// and a token identifying this write for revertStatus and settleStatus.
func (b *Board) setStatus(id uuid.UUID, status domain.LeadStatus, now time.Time) (domain.LeadStatus, uint64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.leads[id]
	if !ok {
		return "", 0, false
	}
	prev := l.Status
	l.Status = status
	l.UpdatedAt = now
	b.leads[id] = l
	b.gen[id]++
	return prev, b.gen[id], true
}

// revertStatus restores prev only while the board still shows applied and no
// newer status write has happened since the one identified by token.
// updated_at is left as is.
func (b *Board) revertStatus(id uuid.UUID, token uint64, applied, prev domain.LeadStatus) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.leads[id]
	if !ok || b.gen[id] != token || l.Status != applied {
		return false
	}
	l.Status = prev
	b.leads[id] = l
	return true
}

// settleStatus copies a persisted row onto the board entry. The persisted
// status and updated_at win unless a newer status write has happened since the
// one identified by token; the counters are always taken from the row.
// A lead removed from the board in the meantime is not added back.
func (b *Board) settleStatus(id uuid.UUID, token uint64, persisted domain.Lead) domain.Lead {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.leads[id]
	if !ok {
		return cloneLead(persisted)
	}
	l.ContactCount = persisted.ContactCount
	l.LastContactDate = cloneTime(persisted.LastContactDate)
	if b.gen[id] == token {
		l.Status = persisted.Status
		if !persisted.UpdatedAt.IsZero() {
			l.UpdatedAt = persisted.UpdatedAt
		}
	}
	b.leads[id] = l
	return cloneLead(l)
}

func cloneLead(l domain.Lead) domain.Lead {
	l.Activities = nil
	if l.EstimatedValue != nil {
		v := *l.EstimatedValue
		l.EstimatedValue = &v
	}
	l.LastContactDate = cloneTime(l.LastContactDate)
	l.NextFollowupDate = cloneTime(l.NextFollowupDate)
	return l
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// sortByRecency orders leads by updated_at descending, ties broken by id
func sortByRecency(leads []domain.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		if !leads[i].UpdatedAt.Equal(leads[j].UpdatedAt) {
			return leads[i].UpdatedAt.After(leads[j].UpdatedAt)
		}
		return leads[i].ID.String() < leads[j].ID.String()
	})
}
