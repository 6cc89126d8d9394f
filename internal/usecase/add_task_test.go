package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetally/internal/domain"
)

func TestAddTask_AppendsWithFullRemaining(t *testing.T) {
	st := seededStore()
	uc := NewAddTask(st)

	out, err := uc.Execute(context.Background(), AddTaskInput{Name: "Warmup", Duration: 300})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Index)
	assert.Equal(t, float64(300), out.Task.Remaining)
	assert.True(t, out.Task.Enabled)

	tasks := st.Snapshot().ActiveTaskList().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "Warmup", tasks[0].Name)
}

func TestAddTask_InfersMediaFromName(t *testing.T) {
	st := seededStore()
	uc := NewAddTask(st)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		Name:     "Stretch https://youtu.be/dQw4w9WgXcQ",
		Duration: 60,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Task.Media)
	assert.Equal(t, "dQw4w9WgXcQ", out.Task.Media.ID)
}

func TestAddTask_RejectsInvalidInput(t *testing.T) {
	st := seededStore()
	uc := NewAddTask(st)

	_, err := uc.Execute(context.Background(), AddTaskInput{Name: "  ", Duration: 10})
	assert.ErrorIs(t, err, domain.ErrEmptyTaskName)

	_, err = uc.Execute(context.Background(), AddTaskInput{Name: "x", Duration: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	assert.Empty(t, st.Snapshot().ActiveTaskList().Tasks)
}

func TestAddTask_NamedListNotFound(t *testing.T) {
	st := seededStore()
	uc := NewAddTask(st)

	_, err := uc.Execute(context.Background(), AddTaskInput{List: "gone", Name: "x", Duration: 10})
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}
