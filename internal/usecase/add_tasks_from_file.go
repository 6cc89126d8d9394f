package usecase

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"timetally/internal/domain"
)

// AddTasksFromFileInput contains the parameters for bulk task
// creation from a YAML document.
type AddTasksFromFileInput struct {
	Content string // YAML file content
	List    string // Target list name (empty = active list)
}

// AddTasksFromFileOutput contains the tasks that were created.
type AddTasksFromFileOutput struct {
	Tasks []domain.Task
}

// taskDraft is one entry of the YAML document:
//
//	tasks:
//	  - name: Warmup
//	    duration: 300
//	    enabled: true
type taskDraft struct {
	Name     string `yaml:"name"`
	Duration int    `yaml:"duration"`
	Enabled  *bool  `yaml:"enabled"`
}

type taskDraftFile struct {
	Tasks []taskDraft `yaml:"tasks"`
}

// AddTasksFromFile is the use case for creating many tasks at once.
type AddTasksFromFile struct {
	tx     domain.StateTx
	logger domain.Logger
}

// NewAddTasksFromFile creates a new AddTasksFromFile use case.
func NewAddTasksFromFile(tx domain.StateTx, logger domain.Logger) *AddTasksFromFile {
	return &AddTasksFromFile{tx: tx, logger: logger}
}

// Execute parses the document and appends every draft to the target
// list. Any invalid draft rejects the whole file; no partial append.
func (uc *AddTasksFromFile) Execute(_ context.Context, in AddTasksFromFileInput) (*AddTasksFromFileOutput, error) {
	var file taskDraftFile
	if err := yaml.Unmarshal([]byte(in.Content), &file); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if len(file.Tasks) == 0 {
		return nil, domain.ErrNoTaskDrafts
	}

	tasks := make([]domain.Task, 0, len(file.Tasks))
	for i, draft := range file.Tasks {
		name := strings.TrimSpace(draft.Name)
		if name == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, domain.ErrEmptyTaskName)
		}
		if draft.Duration < 1 {
			return nil, fmt.Errorf("task %d: %w", i+1, domain.ErrInvalidDuration)
		}
		task := domain.NewTask(name, draft.Duration)
		if draft.Enabled != nil {
			task.Enabled = *draft.Enabled
		}
		tasks = append(tasks, task)
	}

	err := uc.tx.Transact(func(st *domain.State) error {
		list, err := targetList(st, in.List)
		if err != nil {
			return err
		}
		list.Tasks = append(list.Tasks, tasks...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added %d tasks from file", len(tasks)))
	}
	return &AddTasksFromFileOutput{Tasks: tasks}, nil
}
