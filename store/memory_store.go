package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hunterjackson/todoer-sub002/config"
	"github.com/hunterjackson/todoer-sub002/task"
)

// InMemoryStore is an in-memory implementation of Store.
// Useful for testing and as a reference implementation.
type InMemoryStore struct {
	mu             sync.RWMutex
	tasks          map[string]*task.Task
	projects       []task.Project
	labels         []task.Label
	filters        []task.Filter
	listeners      map[int]ChangeListener
	nextListenerID int
}

// NewInMemoryStore creates a new in-memory task store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		tasks:          make(map[string]*task.Task),
		listeners:      make(map[int]ChangeListener),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
	}
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *InMemoryStore) AddListener(listener ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *InMemoryStore) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// notifyListeners calls all registered listeners outside the lock
func (s *InMemoryStore) notifyListeners() {
	s.mu.RLock()
	listeners := make([]ChangeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// CreateTask adds a new task to the store
func (s *InMemoryStore) CreateTask(t *task.Task) error {
	s.mu.Lock()

	if t.ID == "" {
		t.ID = config.NewTaskID()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Priority = task.NormalizePriority(t.Priority)
	s.populateLabelsLocked(t)
	s.tasks[t.ID] = t
	s.mu.Unlock()
	s.notifyListeners()
	return nil
}

// GetTask retrieves a task by ID
func (s *InMemoryStore) GetTask(id string) *task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks[id]
}

// UpdateTask updates an existing task
func (s *InMemoryStore) UpdateTask(t *task.Task) error {
	s.mu.Lock()

	if _, exists := s.tasks[t.ID]; !exists {
		s.mu.Unlock()
		return fmt.Errorf("task not found: %s", t.ID)
	}

	t.UpdatedAt = time.Now()
	s.populateLabelsLocked(t)
	s.tasks[t.ID] = t
	s.mu.Unlock()
	s.notifyListeners()
	return nil
}

// CompleteTask marks a task completed
func (s *InMemoryStore) CompleteTask(id string) bool {
	return s.setCompleted(id, true)
}

// ReopenTask clears the completed flag
func (s *InMemoryStore) ReopenTask(id string) bool {
	return s.setCompleted(id, false)
}

func (s *InMemoryStore) setCompleted(id string, completed bool) bool {
	s.mu.Lock()
	t, exists := s.tasks[id]
	if !exists || t.Completed == completed {
		s.mu.Unlock()
		return false
	}
	t.Completed = completed
	t.UpdatedAt = time.Now()
	s.mu.Unlock()
	s.notifyListeners()
	return true
}

// DeleteTask soft-deletes a task by stamping DeletedAt
func (s *InMemoryStore) DeleteTask(id string) bool {
	s.mu.Lock()
	t, exists := s.tasks[id]
	if !exists || t.DeletedAt != nil {
		s.mu.Unlock()
		return false
	}
	now := time.Now()
	t.DeletedAt = &now
	t.UpdatedAt = now
	s.mu.Unlock()
	s.notifyListeners()
	return true
}

// PurgeTask removes a task from the store entirely
func (s *InMemoryStore) PurgeTask(id string) bool {
	s.mu.Lock()
	if _, exists := s.tasks[id]; !exists {
		s.mu.Unlock()
		return false
	}
	delete(s.tasks, id)
	s.mu.Unlock()
	s.notifyListeners()
	return true
}

// AllTasks returns all tasks ordered by creation time then ID
func (s *InMemoryStore) AllTasks() []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allTasksLocked()
}

func (s *InMemoryStore) allTasksLocked() []*task.Task {
	tasks := make([]*task.Task, 0, len(s.tasks))
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
func (s *InMemoryStore) ActiveTasks() []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*task.Task
	for _, t := range s.allTasksLocked() {
		if t.Active() {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Projects returns the project catalog
func (s *InMemoryStore) Projects() []task.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// CreateProject adds a project to the catalog
func (s *InMemoryStore) CreateProject(name, color string) (task.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return task.Project{}, fmt.Errorf("project name is required")
	}

	s.mu.Lock()
	for _, p := range s.projects {
		if strings.EqualFold(p.Name, name) {
			s.mu.Unlock()
			return task.Project{}, fmt.Errorf("project already exists: %s", name)
		}
	}
	p := task.Project{ID: config.NewProjectID(), Name: name, Color: color}
	s.projects = append(s.projects, p)
	s.mu.Unlock()
	s.notifyListeners()
	return p, nil
}

// Labels returns the label catalog
func (s *InMemoryStore) Labels() []task.Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// CreateLabel adds a label to the catalog
func (s *InMemoryStore) CreateLabel(name, color string) (task.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return task.Label{}, fmt.Errorf("label name is required")
	}

	s.mu.Lock()
	l := s.ensureLabelLocked(name)
	l.Color = color
	for i := range s.labels {
		if s.labels[i].ID == l.ID {
			s.labels[i] = l
		}
	}
	s.mu.Unlock()
	s.notifyListeners()
	return l, nil
}

// ensureLabelLocked returns the catalog entry for name, creating one when
// it does not exist yet. Caller must hold s.mu.
func (s *InMemoryStore) ensureLabelLocked(name string) task.Label {
	for _, l := range s.labels {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	l := task.Label{ID: config.NewLabelID(), Name: name}
	s.labels = append(s.labels, l)
	return l
}

// populateLabelsLocked resolves the task's label names against the
// catalog, registering unknown names. Filter predicates on labels only
// work on populated labels, so every task that enters the store goes
// through here. Caller must hold s.mu.
func (s *InMemoryStore) populateLabelsLocked(t *task.Task) {
	for i, l := range t.Labels {
		if l.Name == "" {
			continue
		}
		t.Labels[i] = s.ensureLabelLocked(l.Name)
	}
}

// Filters returns the saved filters ordered by SortOrder then name
func (s *InMemoryStore) Filters() []task.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Filter, len(s.filters))
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
// stored verbatim; it is never parsed or validated here.
func (s *InMemoryStore) SaveFilter(f *task.Filter) error {
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
	s.mu.Unlock()
	s.notifyListeners()
	return nil
}

// DeleteFilter removes a saved filter by ID
func (s *InMemoryStore) DeleteFilter(id string) bool {
	s.mu.Lock()
	for i, f := range s.filters {
		if f.ID == id {
			s.filters = append(s.filters[:i], s.filters[i+1:]...)
			s.mu.Unlock()
			s.notifyListeners()
			return true
		}
	}
	s.mu.Unlock()
	return false
}

// Reload is a no-op for in-memory store (no disk backing)
func (s *InMemoryStore) Reload() error {
	s.notifyListeners()
	return nil
}

// ensure InMemoryStore implements Store
var _ Store = (*InMemoryStore)(nil)
