package task

import (
	"strings"
	"time"
)

// Task is a single todo item. DueDate and DeletedAt are nil when unset;
// an empty ProjectID means the task is not assigned to any project.
type Task struct {
	ID          string
	Content     string
	Description string
	ProjectID   string
	Labels      []Label
	DueDate     *time.Time
	Priority    int
	Completed   bool
	DeletedAt   *time.Time
	Recurrence  string // raw recurrence rule text, e.g. "every day"; empty = not recurring
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active reports whether the task should be visible at all.
// Completed and soft-deleted tasks are never shown, regardless of filters.
func (t *Task) Active() bool {
	return !t.Completed && t.DeletedAt == nil
}

// Recurring reports whether the task carries a recurrence rule.
func (t *Task) Recurring() bool {
	return strings.TrimSpace(t.Recurrence) != ""
}

// HasLabel reports whether the task carries a label with the given name
// (case-insensitive). Labels must be populated for this to work.
func (t *Task) HasLabel(name string) bool {
	for _, l := range t.Labels {
		if strings.EqualFold(l.Name, name) {
			return true
		}
	}
	return false
}

// Project is a named grouping of tasks.
type Project struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// Label is a tag attached to tasks. Tasks reference labels by name in
// storage; the populated Label carries the catalog ID as well.
type Label struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}
