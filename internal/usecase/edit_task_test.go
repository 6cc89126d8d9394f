package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetally/internal/domain"
)

func TestEditTask_RenameReRunsMediaInference(t *testing.T) {
	st := seededStore(domain.NewTask("plain", 60))
	uc := NewEditTask(st)

	out, err := uc.Execute(context.Background(), EditTaskInput{
		Index: 0,
		Name:  ptr("cooldown https://youtu.be/dQw4w9WgXcQ"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Task.Media)
	assert.Equal(t, "dQw4w9WgXcQ", out.Task.Media.ID)
}

func TestEditTask_DurationChangeResetsRemaining(t *testing.T) {
	task := domain.NewTask("run", 60)
	task.Remaining = 10
	st := seededStore(task)
	uc := NewEditTask(st)

	out, err := uc.Execute(context.Background(), EditTaskInput{Index: 0, Duration: ptr(120)})
	require.NoError(t, err)
	assert.Equal(t, 120, out.Task.Duration)
	assert.Equal(t, float64(120), out.Task.Remaining)
}

func TestEditTask_NilFieldsUnchanged(t *testing.T) {
	task := domain.NewTask("keep", 60)
	task.Remaining = 30
	st := seededStore(task)
	uc := NewEditTask(st)

	out, err := uc.Execute(context.Background(), EditTaskInput{Index: 0})
	require.NoError(t, err)
	assert.Equal(t, "keep", out.Task.Name)
	assert.Equal(t, float64(30), out.Task.Remaining)
}

func TestEditTask_Validation(t *testing.T) {
	st := seededStore(domain.NewTask("a", 10))
	uc := NewEditTask(st)

	_, err := uc.Execute(context.Background(), EditTaskInput{Index: 0, Name: ptr(" ")})
	assert.ErrorIs(t, err, domain.ErrEmptyTaskName)

	_, err = uc.Execute(context.Background(), EditTaskInput{Index: 0, Duration: ptr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = uc.Execute(context.Background(), EditTaskInput{Index: 5, Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
