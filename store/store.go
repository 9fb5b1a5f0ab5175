package store

import (
	"github.com/hunterjackson/todoer-sub002/task"
)

// Store is the interface for task storage engines.
// Implementations must be thread-safe and notify listeners on changes.
// Tasks returned by a Store always have their Labels populated from the
// label catalog; the filter engine depends on that.
type Store interface {
	// AddListener registers a callback for change notifications.
	// returns a listener ID that can be used to remove the listener.
	AddListener(listener ChangeListener) int

	// RemoveListener removes a previously registered listener by ID
	RemoveListener(id int)

	// CreateTask adds a new task to the store, generating an ID if the
	// task has none. Returns error if save fails.
	CreateTask(t *task.Task) error

	// GetTask retrieves a task by ID
	GetTask(id string) *task.Task

	// UpdateTask updates an existing task.
	// Returns error if the task is unknown or save fails.
	UpdateTask(t *task.Task) error

	// CompleteTask marks a task completed
	CompleteTask(id string) bool

	// ReopenTask clears the completed flag
	ReopenTask(id string) bool

	// DeleteTask soft-deletes a task by stamping DeletedAt.
	// The task stays in storage and can be inspected, but it never
	// appears in filter results again.
	DeleteTask(id string) bool

	// PurgeTask removes a task from storage entirely
	PurgeTask(id string) bool

	// AllTasks returns every task, including completed and soft-deleted
	// ones, ordered by creation time then ID.
	AllTasks() []*task.Task

	// ActiveTasks returns tasks that are neither completed nor deleted,
	// in the same order as AllTasks.
	ActiveTasks() []*task.Task

	// Projects returns the project catalog
	Projects() []task.Project

	// CreateProject adds a project to the catalog
	CreateProject(name, color string) (task.Project, error)

	// Labels returns the label catalog
	Labels() []task.Label

	// CreateLabel adds a label to the catalog
	CreateLabel(name, color string) (task.Label, error)

	// Filters returns the saved filters ordered by SortOrder then name.
	// Query strings are returned exactly as stored, never validated.
	Filters() []task.Filter

	// SaveFilter creates or updates a saved filter, generating an ID for
	// new ones. The query string is stored verbatim.
	SaveFilter(f *task.Filter) error

	// DeleteFilter removes a saved filter by ID
	DeleteFilter(id string) bool

	// Reload reloads all data from the backing store
	Reload() error
}

// ChangeListener is called when the store's data changes
type ChangeListener func()
