package pipeline

import (
	"context"
	"fmt"
)

// step is one operation of an optimistic transaction. undo may be nil for
// steps that have nothing to compensate (the last remote call, typically).
type step struct {
	name string
	do   func(ctx context.Context) error
	undo func()
}

// transaction runs steps in order. When a step fails, the undo of every
// step that already completed runs in reverse order and the failure is returned.
type transaction struct {
	steps []step
}

func (t *transaction) add(name string, do func(ctx context.Context) error, undo func()) {
	t.steps = append(t.steps, step{name: name, do: do, undo: undo})
}

func (t *transaction) execute(ctx context.Context) error {
	for i, s := range t.steps {
		if err := s.do(ctx); err != nil {
			t.compensate(i)
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func (t *transaction) compensate(failedAt int) {
	for i := failedAt - 1; i >= 0; i-- {
		if undo := t.steps[i].undo; undo != nil {
			undo()
		}
	}
}
