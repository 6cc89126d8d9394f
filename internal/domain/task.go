// Package domain contains core business entities and interfaces.
package domain

import "fmt"

// MediaRef identifies an embeddable media resource derived from or
// attached to a task.
type MediaRef struct {
	ID        string `json:"id"`
	SourceURL string `json:"sourceUrl"`
}

// Task is one countdown unit in a playlist.
// Fields are ordered to minimize memory padding.
type Task struct {
	Media     *MediaRef `json:"media,omitempty"`
	Name      string    `json:"name"`
	Remaining float64   `json:"remaining"` // seconds, 0 <= Remaining <= Duration
	Duration  int       `json:"duration"`  // total seconds, >= 1
	Enabled   bool      `json:"enabled"`
}

// NewTask creates a task with a full remaining time and inferred media
// metadata.
func NewTask(name string, duration int) Task {
	return Task{
		Name:      name,
		Duration:  duration,
		Remaining: float64(duration),
		Enabled:   true,
		Media:     InferMedia(name),
	}
}

// ResetRemaining restores the task to its full duration.
func (t *Task) ResetRemaining() {
	t.Remaining = float64(t.Duration)
}

// TaskList is a named ordered sequence of tasks plus one notification
// config.
type TaskList struct {
	Name   string     `json:"name"`
	Tasks  []Task     `json:"tasks"`
	Config ListConfig `json:"config"`
}

// NextEnabled returns the index of the first enabled task at or after
// from, scanning strictly forward without wrapping. Returns -1 if no
// enabled task exists in [from, len).
func NextEnabled(tasks []Task, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(tasks); i++ {
		if tasks[i].Enabled {
			return i
		}
	}
	return -1
}

// MediaKey is the stable addressing key for a rendered media embed,
// derived from the list name and the task position within it.
type MediaKey struct {
	List  string
	Index int
}

// String returns the key in "list:index" form.
func (k MediaKey) String() string {
	return fmt.Sprintf("%s:%d", k.List, k.Index)
}
