// Package usecase contains application use cases.
package usecase

import (
	"context"
	"strings"

	"timetally/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	List     string // Target list name (empty = active list)
	Name     string // Task name (required)
	Duration int    // Total duration in seconds (>= 1)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  domain.Task
	Index int
}

// AddTask is the use case for appending a task to a list.
type AddTask struct {
	tx domain.StateTx
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tx domain.StateTx) *AddTask {
	return &AddTask{tx: tx}
}

// Execute appends a task with a full remaining time and inferred media
// metadata.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyTaskName
	}
	if in.Duration < 1 {
		return nil, domain.ErrInvalidDuration
	}

	out := &AddTaskOutput{}
	err := uc.tx.Transact(func(st *domain.State) error {
		list, err := targetList(st, in.List)
		if err != nil {
			return err
		}
		task := domain.NewTask(name, in.Duration)
		list.Tasks = append(list.Tasks, task)
		out.Task = task
		out.Index = len(list.Tasks) - 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// targetList resolves a list by name, defaulting to the active list.
func targetList(st *domain.State, name string) (*domain.TaskList, error) {
	if name == "" {
		return st.ActiveTaskList(), nil
	}
	return st.ListByName(name)
}
