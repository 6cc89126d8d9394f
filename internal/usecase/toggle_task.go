package usecase

import (
	"context"

	"timetally/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task's
// enabled flag.
type ToggleTaskInput struct {
	List  string // Target list name (empty = active list)
	Index int    // Task position (required)
}

// ToggleTaskOutput contains the result of the toggle.
type ToggleTaskOutput struct {
	Enabled bool
}

// ToggleTask is the use case for enabling or disabling a task.
type ToggleTask struct {
	tx domain.StateTx
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tx domain.StateTx) *ToggleTask {
	return &ToggleTask{tx: tx}
}

// Execute flips the task's enabled flag. Disabled tasks are skipped by
// the scheduler but keep their remaining time.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	out := &ToggleTaskOutput{}
	err := uc.tx.Transact(func(st *domain.State) error {
		list, err := targetList(st, in.List)
		if err != nil {
			return err
		}
		if in.Index < 0 || in.Index >= len(list.Tasks) {
			return domain.ErrTaskNotFound
		}
		list.Tasks[in.Index].Enabled = !list.Tasks[in.Index].Enabled
		out.Enabled = list.Tasks[in.Index].Enabled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
