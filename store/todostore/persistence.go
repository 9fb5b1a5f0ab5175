package todostore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hunterjackson/todoer-sub002/store"
	taskpkg "github.com/hunterjackson/todoer-sub002/task"

	"gopkg.in/yaml.v3"
)

// taskFrontmatter represents the YAML frontmatter in task files.
// The markdown body below the frontmatter is the task description.
type taskFrontmatter struct {
	Content    string     `yaml:"content"`
	Project    string     `yaml:"project,omitempty"`  // project ID
	Labels     []string   `yaml:"labels,omitempty"`   // label names, resolved at load
	Due        *time.Time `yaml:"due,omitempty"`
	Priority   int        `yaml:"priority,omitempty"`
	Completed  bool       `yaml:"completed,omitempty"`
	Deleted    *time.Time `yaml:"deleted,omitempty"`
	Recurrence string     `yaml:"recurrence,omitempty"`
	Created    time.Time  `yaml:"created,omitempty"`
	Updated    time.Time  `yaml:"updated,omitempty"`
}

const (
	projectsFile = "projects.yaml"
	labelsFile   = "labels.yaml"
	filtersFile  = "filters.yaml"
)

func (s *TodoStore) taskDir() string {
	return filepath.Join(s.dir, "tasks")
}

// taskFilePath returns the file path for a task ID
func (s *TodoStore) taskFilePath(id string) string {
	return filepath.Join(s.taskDir(), id+".md")
}

// loadLocked reads catalogs and all task files from the directory.
// Caller must hold s.mu lock.
func (s *TodoStore) loadLocked() error {
	slog.Debug("loading store from directory", "dir", s.dir)
	//nolint:gosec // G301: 0755 is appropriate for task storage directory
	if err := os.MkdirAll(s.taskDir(), 0755); err != nil {
		slog.Error("failed to create task directory", "dir", s.taskDir(), "error", err)
		return fmt.Errorf("creating directory: %w", err)
	}

	if err := s.loadCatalogsLocked(); err != nil {
		return err
	}

	entries, err := os.ReadDir(s.taskDir())
	if err != nil {
		slog.Error("failed to read task directory", "dir", s.taskDir(), "error", err)
		return fmt.Errorf("reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		filePath := filepath.Join(s.taskDir(), entry.Name())
		t, err := s.loadTaskFile(filePath)
		if err != nil {
			// log error but continue loading other files
			slog.Error("failed to load task file", "file", filePath, "error", err)
			continue
		}

		s.tasks[t.ID] = t
		slog.Debug("loaded task", "task_id", t.ID, "file", filePath)
	}
	slog.Info("finished loading tasks", "num_tasks", len(s.tasks))
	return nil
}

// loadTaskFile parses a single markdown file into a Task.
// Caller must hold s.mu lock (label resolution touches the catalog).
func (s *TodoStore) loadTaskFile(path string) (*taskpkg.Task, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	frontmatter, body, err := store.ParseFrontmatter(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	var fm taskFrontmatter
	if err := yaml.Unmarshal([]byte(frontmatter), &fm); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	// The filename is authoritative for the ID: "todo-abc123.md" -> "todo-abc123"
	taskID := strings.TrimSuffix(filepath.Base(path), ".md")

	t := &taskpkg.Task{
		ID:          taskID,
		Content:     fm.Content,
		Description: strings.TrimSpace(body),
		ProjectID:   fm.Project,
		DueDate:     fm.Due,
		Priority:    fm.Priority,
		Completed:   fm.Completed,
		DeletedAt:   fm.Deleted,
		Recurrence:  fm.Recurrence,
		CreatedAt:   fm.Created,
		UpdatedAt:   fm.Updated,
	}

	if t.Priority < taskpkg.MinPriority || t.Priority > taskpkg.MaxPriority {
		slog.Debug("invalid priority value, using default", "task_id", t.ID, "file", path, "invalid_value", t.Priority, "default", taskpkg.DefaultPriority)
		t.Priority = taskpkg.DefaultPriority
	}

	// Resolve label names to catalog entries so the task comes out
	// label-populated; filter predicates depend on this.
	for _, name := range fm.Labels {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t.Labels = append(t.Labels, s.ensureLabelLocked(name))
	}

	// Fall back to file metadata when timestamps are missing
	if t.CreatedAt.IsZero() {
		if info, err := os.Stat(path); err == nil {
			t.CreatedAt = info.ModTime()
		}
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}

	return t, nil
}

// saveTask writes a task to its markdown file
func (s *TodoStore) saveTask(t *taskpkg.Task) error {
	path := s.taskFilePath(t.ID)
	slog.Debug("attempting to save task", "task_id", t.ID, "path", path)

	labelNames := make([]string, 0, len(t.Labels))
	for _, l := range t.Labels {
		labelNames = append(labelNames, l.Name)
	}
	// sort labels for consistent output
	sort.Strings(labelNames)

	fm := taskFrontmatter{
		Content:    t.Content,
		Project:    t.ProjectID,
		Labels:     labelNames,
		Due:        t.DueDate,
		Priority:   t.Priority,
		Completed:  t.Completed,
		Deleted:    t.DeletedAt,
		Recurrence: t.Recurrence,
		Created:    t.CreatedAt,
		Updated:    t.UpdatedAt,
	}

	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		slog.Error("failed to marshal frontmatter for task", "task_id", t.ID, "error", err)
		return fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var content strings.Builder
	content.WriteString("---\n")
	content.Write(yamlBytes)
	content.WriteString("---\n")
	if t.Description != "" {
		content.WriteString(t.Description)
		content.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(content.String()), 0644); err != nil {
		slog.Error("failed to write task file", "task_id", t.ID, "path", path, "error", err)
		return fmt.Errorf("writing file: %w", err)
	}

	slog.Info("task saved", "task_id", t.ID, "path", path)
	return nil
}

// loadCatalogsLocked reads the project/label/filter catalogs.
// Missing files are fine; a fresh store has none.
func (s *TodoStore) loadCatalogsLocked() error {
	if err := readYAMLFile(filepath.Join(s.dir, projectsFile), &s.projects); err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}
	if err := readYAMLFile(filepath.Join(s.dir, labelsFile), &s.labels); err != nil {
		return fmt.Errorf("loading labels: %w", err)
	}
	if err := readYAMLFile(filepath.Join(s.dir, filtersFile), &s.filters); err != nil {
		return fmt.Errorf("loading filters: %w", err)
	}
	return nil
}

func (s *TodoStore) saveProjects() error {
	return writeYAMLFile(filepath.Join(s.dir, projectsFile), s.projects)
}

func (s *TodoStore) saveLabels() error {
	return writeYAMLFile(filepath.Join(s.dir, labelsFile), s.labels)
}

func (s *TodoStore) saveFilters() error {
	return writeYAMLFile(filepath.Join(s.dir, filtersFile), s.filters)
}

func readYAMLFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func writeYAMLFile(path string, in interface{}) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	//nolint:gosec // G306: 0644 is appropriate for catalog files
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Reload reloads all data from disk
func (s *TodoStore) Reload() error {
	slog.Info("reloading store from disk")
	start := time.Now()
	s.mu.Lock()
	s.tasks = make(map[string]*taskpkg.Task)
	s.projects = nil
	s.labels = nil
	s.filters = nil

	if err := s.loadLocked(); err != nil {
		s.mu.Unlock()
		slog.Error("error reloading store from disk", "error", err)
		return err
	}
	s.mu.Unlock()

	slog.Info("store reloaded", "duration", time.Since(start).Round(time.Millisecond))
	s.notifyListeners()
	return nil
}
