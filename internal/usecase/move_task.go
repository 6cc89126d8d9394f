package usecase

import (
	"context"

	"timetally/internal/domain"
)

// MoveTaskInput contains the parameters for reordering a task.
// Fields are ordered to minimize memory padding.
type MoveTaskInput struct {
	List string // Target list name (empty = active list)
	From int    // Current position
	To   int    // Destination position
}

// MoveTask is the use case for reordering a task within its list.
type MoveTask struct {
	tx domain.StateTx
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(tx domain.StateTx) *MoveTask {
	return &MoveTask{tx: tx}
}

// Execute moves the task and adjusts the active-task cursor so it
// keeps denoting the same logical task. Out-of-range indices are a
// silent no-op; a stale drag must never corrupt state.
func (uc *MoveTask) Execute(_ context.Context, in MoveTaskInput) error {
	return uc.tx.Transact(func(st *domain.State) error {
		list, err := targetList(st, in.List)
		if err != nil {
			return err
		}

		tasks, moved := domain.Move(list.Tasks, in.From, in.To)
		if !moved {
			return nil
		}
		list.Tasks = tasks

		if list == st.ActiveTaskList() {
			st.ActiveTask = domain.AdjustCursor(st.ActiveTask, in.From, in.To)
		}
		return nil
	})
}
