package usecase

import (
	"context"

	"timetally/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	List  string // Target list name (empty = active list)
	Index int    // Task position (required)
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tx domain.StateTx
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tx domain.StateTx) *DeleteTask {
	return &DeleteTask{tx: tx}
}

// Execute removes the task and recomputes the active-task cursor so it
// keeps pointing at the same logical task where possible.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	return uc.tx.Transact(func(st *domain.State) error {
		list, err := targetList(st, in.List)
		if err != nil {
			return err
		}
		if in.Index < 0 || in.Index >= len(list.Tasks) {
			return domain.ErrTaskNotFound
		}

		list.Tasks = append(list.Tasks[:in.Index], list.Tasks[in.Index+1:]...)

		// The cursor only tracks the active list.
		if list == st.ActiveTaskList() {
			st.ActiveTask = domain.CursorAfterDelete(st.ActiveTask, in.Index, list.Tasks)
		}
		return nil
	})
}
