package usecase

import (
	"context"

	"timetally/internal/domain"
)

// SelectTaskInput contains the parameters for moving the active-task
// cursor.
type SelectTaskInput struct {
	Index int // Task position in the active list
}

// SelectTask is the use case for moving the active-task cursor.
type SelectTask struct {
	tx domain.StateTx
}

// NewSelectTask creates a new SelectTask use case.
func NewSelectTask(tx domain.StateTx) *SelectTask {
	return &SelectTask{tx: tx}
}

// Execute points the cursor at the given task of the active list.
func (uc *SelectTask) Execute(_ context.Context, in SelectTaskInput) error {
	return uc.tx.Transact(func(st *domain.State) error {
		if in.Index < 0 || in.Index >= len(st.ActiveTaskList().Tasks) {
			return domain.ErrTaskNotFound
		}
		st.ActiveTask = in.Index
		return nil
	})
}
