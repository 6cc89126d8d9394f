package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetally/internal/domain"
)

func TestDeleteTask_ShiftsCursorLeft(t *testing.T) {
	st := seededStore(
		domain.NewTask("a", 10),
		domain.NewTask("b", 10),
		domain.NewTask("c", 10),
		domain.NewTask("d", 10),
	)
	require.NoError(t, NewSelectTask(st).Execute(context.Background(), SelectTaskInput{Index: 2}))

	require.NoError(t, NewDeleteTask(st).Execute(context.Background(), DeleteTaskInput{Index: 0}))

	snap := st.Snapshot()
	assert.Equal(t, 1, snap.ActiveTask)
	assert.Equal(t, "c", snap.ActiveTaskList().Tasks[snap.ActiveTask].Name)
}

func TestDeleteTask_DeletingCursorResetsToFirstEnabled(t *testing.T) {
	b := domain.NewTask("b", 10)
	b.Enabled = false
	st := seededStore(domain.NewTask("a", 10), b, domain.NewTask("c", 10))
	require.NoError(t, NewSelectTask(st).Execute(context.Background(), SelectTaskInput{Index: 0}))

	require.NoError(t, NewDeleteTask(st).Execute(context.Background(), DeleteTaskInput{Index: 0}))

	// b (now index 0) is disabled, so the cursor lands on c.
	assert.Equal(t, 1, st.Snapshot().ActiveTask)
}

func TestDeleteTask_OutOfRange(t *testing.T) {
	st := seededStore(domain.NewTask("a", 10))
	err := NewDeleteTask(st).Execute(context.Background(), DeleteTaskInput{Index: 3})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Len(t, st.Snapshot().ActiveTaskList().Tasks, 1)
}
