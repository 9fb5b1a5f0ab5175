package todostore

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hunterjackson/todoer-sub002/config"
	taskpkg "github.com/hunterjackson/todoer-sub002/task"
)

// CreateTask adds a new task and saves it to a file
func (s *TodoStore) CreateTask(t *taskpkg.Task) error {
	s.mu.Lock()

	// generate ID if not provided
	if t.ID == "" {
		// Generate random ID with collision check
		for {
			t.ID = config.NewTaskID()
			if _, err := os.Stat(s.taskFilePath(t.ID)); os.IsNotExist(err) {
				break // No collision, use this ID
			}
			slog.Debug("ID collision detected, regenerating", "id", t.ID)
		}
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Priority = taskpkg.NormalizePriority(t.Priority)
	s.populateLabelsLocked(t)

	s.tasks[t.ID] = t
	if err := s.saveTask(t); err != nil {
		// Rollback on failure
		delete(s.tasks, t.ID)
		s.mu.Unlock()
		slog.Error("failed to save new task after creation", "task_id", t.ID, "error", err)
		return fmt.Errorf("failed to save task: %w", err)
	}
	if err := s.saveLabels(); err != nil {
		slog.Warn("failed to save label catalog", "error", err)
	}
	s.mu.Unlock()

	slog.Info("task created", "task_id", t.ID, "priority", t.Priority)
	s.notifyListeners()
	return nil
}

// GetTask retrieves a task by ID
func (s *TodoStore) GetTask(id string) *taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks[id]
}

// UpdateTask updates an existing task and saves it
func (s *TodoStore) UpdateTask(t *taskpkg.Task) error {
	s.mu.Lock()

	oldTask, exists := s.tasks[t.ID]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("task not found: %s", t.ID)
	}

	t.UpdatedAt = time.Now()
	s.populateLabelsLocked(t)
	s.tasks[t.ID] = t
	if err := s.saveTask(t); err != nil {
		// Rollback on failure
		s.tasks[t.ID] = oldTask
		s.mu.Unlock()
		slog.Error("failed to save updated task", "task_id", t.ID, "error", err)
		return fmt.Errorf("failed to save task: %w", err)
	}
	s.mu.Unlock()

	slog.Info("task updated", "task_id", t.ID)
	s.notifyListeners()
	return nil
}

// CompleteTask marks a task completed
func (s *TodoStore) CompleteTask(id string) bool {
	return s.setCompleted(id, true)
}

// ReopenTask clears the completed flag
func (s *TodoStore) ReopenTask(id string) bool {
	return s.setCompleted(id, false)
}

func (s *TodoStore) setCompleted(id string, completed bool) bool {
	s.mu.Lock()

	t, exists := s.tasks[id]
	if !exists || t.Completed == completed {
		s.mu.Unlock()
		return false
	}

	t.Completed = completed
	t.UpdatedAt = time.Now()
	if err := s.saveTask(t); err != nil {
		slog.Error("failed to save task after completion change", "task_id", id, "error", err)
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	slog.Info("task completion changed", "task_id", id, "completed", completed)
	// notify outside lock to prevent deadlock when listeners call back into store
	s.notifyListeners()
	return true
}

// DeleteTask soft-deletes a task by stamping DeletedAt. The file stays on
// disk so the deletion can be audited or undone by hand.
func (s *TodoStore) DeleteTask(id string) bool {
	s.mu.Lock()

	t, exists := s.tasks[id]
	if !exists || t.DeletedAt != nil {
		s.mu.Unlock()
		return false
	}

	now := time.Now()
	t.DeletedAt = &now
	t.UpdatedAt = now
	if err := s.saveTask(t); err != nil {
		t.DeletedAt = nil
		slog.Error("failed to save task after soft delete", "task_id", id, "error", err)
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	slog.Info("task soft-deleted", "task_id", id)
	s.notifyListeners()
	return true
}

// PurgeTask removes a task and its file entirely
func (s *TodoStore) PurgeTask(id string) bool {
	s.mu.Lock()

	if _, exists := s.tasks[id]; !exists {
		s.mu.Unlock()
		return false
	}

	path := s.taskFilePath(id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Error("file deletion failed, task preserved in memory", "task_id", id, "path", path, "error", err)
		s.mu.Unlock()
		return false // Don't modify in-memory state if file deletion failed
	}

	delete(s.tasks, id)
	s.mu.Unlock()
	slog.Info("task purged", "task_id", id)
	s.notifyListeners()
	return true
}

// AllTasks returns all tasks ordered by creation time then ID
func (s *TodoStore) AllTasks() []*taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allTasksLocked()
}

func (s *TodoStore) allTasksLocked() []*taskpkg.Task {
	tasks := make([]*taskpkg.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}

// ActiveTasks returns tasks that are neither completed nor soft-deleted
func (s *TodoStore) ActiveTasks() []*taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*taskpkg.Task
	for _, t := range s.allTasksLocked() {
		if t.Active() {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Projects returns the project catalog
func (s *TodoStore) Projects() []taskpkg.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]taskpkg.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// CreateProject adds a project to the catalog and saves it
func (s *TodoStore) CreateProject(name, color string) (taskpkg.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return taskpkg.Project{}, fmt.Errorf("project name is required")
	}

	s.mu.Lock()
	for _, p := range s.projects {
		if strings.EqualFold(p.Name, name) {
			s.mu.Unlock()
			return taskpkg.Project{}, fmt.Errorf("project already exists: %s", name)
		}
	}
	p := taskpkg.Project{ID: config.NewProjectID(), Name: name, Color: color}
	s.projects = append(s.projects, p)
	if err := s.saveProjects(); err != nil {
		s.projects = s.projects[:len(s.projects)-1]
		s.mu.Unlock()
		return taskpkg.Project{}, err
	}
	s.mu.Unlock()

	slog.Info("project created", "project_id", p.ID, "name", p.Name)
	s.notifyListeners()
	return p, nil
}

// Labels returns the label catalog
func (s *TodoStore) Labels() []taskpkg.Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]taskpkg.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// CreateLabel adds a label to the catalog and saves it
func (s *TodoStore) CreateLabel(name, color string) (taskpkg.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return taskpkg.Label{}, fmt.Errorf("label name is required")
	}

	s.mu.Lock()
	l := s.ensureLabelLocked(name)
	l.Color = color
	for i := range s.labels {
		if s.labels[i].ID == l.ID {
			s.labels[i] = l
		}
	}
	if err := s.saveLabels(); err != nil {
		s.mu.Unlock()
		return taskpkg.Label{}, err
	}
	s.mu.Unlock()

	slog.Info("label created", "label_id", l.ID, "name", l.Name)
	s.notifyListeners()
	return l, nil
}

// Filters returns the saved filters ordered by SortOrder then name
func (s *TodoStore) Filters() []taskpkg.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]taskpkg.Filter, len(s.filters))
	copy(out, s.filters)
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SaveFilter creates or updates a saved filter. The query string is
// persisted exactly as the user typed it; a malformed query only shows
// itself when evaluated.
func (s *TodoStore) SaveFilter(f *taskpkg.Filter) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("filter name is required")
	}

	s.mu.Lock()
	if f.ID == "" {
		f.ID = config.NewFilterID()
	}
	replaced := false
	for i, existing := range s.filters {
		if existing.ID == f.ID {
			s.filters[i] = *f
			replaced = true
			break
		}
	}
	if !replaced {
		s.filters = append(s.filters, *f)
	}
	if err := s.saveFilters(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	slog.Info("filter saved", "filter_id", f.ID, "name", f.Name)
	s.notifyListeners()
	return nil
}

// DeleteFilter removes a saved filter by ID
func (s *TodoStore) DeleteFilter(id string) bool {
	s.mu.Lock()
	for i, f := range s.filters {
		if f.ID == id {
			s.filters = append(s.filters[:i], s.filters[i+1:]...)
			if err := s.saveFilters(); err != nil {
				slog.Error("failed to save filters after delete", "filter_id", id, "error", err)
			}
			s.mu.Unlock()
			s.notifyListeners()
			return true
		}
	}
	s.mu.Unlock()
	return false
}
