package usecase

import (
	"context"
	"strings"

	"timetally/internal/domain"
)

// EditTaskInput contains the parameters for editing a task. Nil fields
// are left unchanged.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Name     *string // New name (nil = no change)
	Duration *int    // New duration; resets remaining to full (nil = no change)
	List     string  // Target list name (empty = active list)
	Index    int     // Task position (required)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	tx domain.StateTx
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tx domain.StateTx) *EditTask {
	return &EditTask{tx: tx}
}

// Execute edits a task. A name change re-runs media inference; a
// duration change resets the remaining time to the new full duration.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrEmptyTaskName
	}
	if in.Duration != nil && *in.Duration < 1 {
		return nil, domain.ErrInvalidDuration
	}

	out := &EditTaskOutput{}
	err := uc.tx.Transact(func(st *domain.State) error {
		list, err := targetList(st, in.List)
		if err != nil {
			return err
		}
		if in.Index < 0 || in.Index >= len(list.Tasks) {
			return domain.ErrTaskNotFound
		}

		task := &list.Tasks[in.Index]
		if in.Name != nil {
			task.Name = strings.TrimSpace(*in.Name)
			task.Media = domain.InferMedia(task.Name)
		}
		if in.Duration != nil {
			task.Duration = *in.Duration
			task.ResetRemaining()
		}
		out.Task = *task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
