package todostore

// TodoStore is a file-based Store implementation. Tasks persist as
// markdown files with YAML frontmatter, one file per task; the project,
// label and saved-filter catalogs persist as YAML files next to them.

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/hunterjackson/todoer-sub002/config"
	"github.com/hunterjackson/todoer-sub002/store"
	taskpkg "github.com/hunterjackson/todoer-sub002/task"
)

// TodoStore stores tasks as markdown files in dir/tasks plus catalog
// YAML files in dir.
type TodoStore struct {
	mu             sync.RWMutex
	dir            string
	tasks          map[string]*taskpkg.Task
	projects       []taskpkg.Project
	labels         []taskpkg.Label
	filters        []taskpkg.Filter
	listeners      map[int]store.ChangeListener
	nextListenerID int
}

// NewTodoStore creates a new TodoStore rooted at dir, loading all
// existing data. Corrupt task files are logged and skipped.
func NewTodoStore(dir string) (*TodoStore, error) {
	slog.Debug("creating new TodoStore", "dir", dir)
	s := &TodoStore{
		dir:            dir,
		tasks:          make(map[string]*taskpkg.Task),
		listeners:      make(map[int]store.ChangeListener),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
	}

	s.mu.Lock()
	if err := s.loadLocked(); err != nil {
		s.mu.Unlock()
		slog.Error("failed to load data during store initialization", "dir", dir, "error", err)
		return nil, fmt.Errorf("loading store: %w", err)
	}
	s.mu.Unlock()

	slog.Info("todoStore initialized", "dir", dir, "num_tasks", len(s.tasks))
	return s, nil
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *TodoStore) AddListener(listener store.ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *TodoStore) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// notifyListeners calls all registered listeners outside the lock
func (s *TodoStore) notifyListeners() {
	s.mu.RLock()
	listeners := make([]store.ChangeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// ensureLabelLocked returns the catalog entry for name, creating one when
// it does not exist yet. Caller must hold s.mu.
func (s *TodoStore) ensureLabelLocked(name string) taskpkg.Label {
	for _, l := range s.labels {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	l := taskpkg.Label{ID: config.NewLabelID(), Name: name}
	s.labels = append(s.labels, l)
	return l
}

// populateLabelsLocked resolves the task's label names against the
// catalog, registering unknown names. The filter engine only sees labels
// that are populated here. Caller must hold s.mu.
func (s *TodoStore) populateLabelsLocked(t *taskpkg.Task) {
	for i, l := range t.Labels {
		if l.Name == "" {
			continue
		}
		t.Labels[i] = s.ensureLabelLocked(l.Name)
	}
}

// ensure TodoStore implements Store
var _ store.Store = (*TodoStore)(nil)
