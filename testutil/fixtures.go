package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hunterjackson/todoer-sub002/task"
)

// CreateTaskFile writes a markdown task file with YAML frontmatter into
// dir, the way the file store lays them out.
func CreateTaskFile(dir, id, content string, priority int, due *time.Time) error {
	filename := strings.ToLower(id) + ".md"
	path := filepath.Join(dir, filename)

	var fm strings.Builder
	fm.WriteString("---\n")
	fmt.Fprintf(&fm, "content: %s\n", content)
	fmt.Fprintf(&fm, "priority: %d\n", priority)
	if due != nil {
		fmt.Fprintf(&fm, "due: %s\n", due.Format(time.RFC3339))
	}
	fm.WriteString("---\n")
	fm.WriteString(content)
	fm.WriteString("\n")

	return os.WriteFile(path, []byte(fm.String()), 0644)
}

// NewTask builds a task with sensible defaults for tests
func NewTask(id, content string, opts ...TaskOption) *task.Task {
	t := &task.Task{
		ID:       id,
		Content:  content,
		Priority: task.DefaultPriority,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TaskOption mutates a test task during construction
type TaskOption func(*task.Task)

// WithPriority sets the priority
func WithPriority(p int) TaskOption {
	return func(t *task.Task) { t.Priority = p }
}

// WithDue sets the due date
func WithDue(due time.Time) TaskOption {
	return func(t *task.Task) { t.DueDate = &due }
}

// WithProject sets the project ID
func WithProject(id string) TaskOption {
	return func(t *task.Task) { t.ProjectID = id }
}

// WithLabels attaches populated labels (ID derived from name)
func WithLabels(names ...string) TaskOption {
	return func(t *task.Task) {
		for _, name := range names {
			t.Labels = append(t.Labels, task.Label{
				ID:   "lbl-" + strings.ToLower(name),
				Name: name,
			})
		}
	}
}

// Completed marks the task completed
func Completed() TaskOption {
	return func(t *task.Task) { t.Completed = true }
}

// Deleted soft-deletes the task
func Deleted(at time.Time) TaskOption {
	return func(t *task.Task) { t.DeletedAt = &at }
}
