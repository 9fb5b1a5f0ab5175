// Package service exposes filter evaluation over the store as a small
// request/response surface. The CLI talks to the store only through it.
package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hunterjackson/todoer-sub002/filter"
	"github.com/hunterjackson/todoer-sub002/store"
	"github.com/hunterjackson/todoer-sub002/task"
)

// FilterService evaluates filter queries against a store snapshot.
type FilterService struct {
	store store.Store
}

// NewFilterService creates a FilterService backed by the given store
func NewFilterService(s store.Store) *FilterService {
	return &FilterService{store: s}
}

// EvaluateQuery runs a filter query over the current task snapshot and
// returns the matching tasks in store order. A blank or malformed query
// never fails; the worst case is a match-all or match-nothing result.
func (s *FilterService) EvaluateQuery(query string) []*task.Task {
	return s.EvaluateQueryAt(query, time.Now())
}

// EvaluateQueryAt is EvaluateQuery with an explicit clock
func (s *FilterService) EvaluateQueryAt(query string, now time.Time) []*task.Task {
	tasks := s.store.AllTasks()
	ctx := s.buildContext()

	start := time.Now()
	result := filter.EvaluateAt(tasks, query, ctx, now)
	slog.Debug("filter evaluated",
		"query", query,
		"num_tasks", len(tasks),
		"num_matches", len(result),
		"duration", time.Since(start))
	return result
}

// taskResult is the wire shape of an evaluated task
type taskResult struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	Project    string     `json:"project,omitempty"`
	Labels     []string   `json:"labels,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Priority   int        `json:"priority"`
	Recurrence string     `json:"recurrence,omitempty"`
}

// evalResponse is the JSON envelope for EvaluateJSON
type evalResponse struct {
	Query   string       `json:"query"`
	Count   int          `json:"count"`
	Results []taskResult `json:"results"`
}

// EvaluateJSON evaluates the query and encodes the matches as JSON, the
// shape consumed by scripts and the eval command.
func (s *FilterService) EvaluateJSON(query string) ([]byte, error) {
	return s.EvaluateJSONAt(query, time.Now())
}

// EvaluateJSONAt is EvaluateJSON with an explicit clock
func (s *FilterService) EvaluateJSONAt(query string, now time.Time) ([]byte, error) {
	matches := s.EvaluateQueryAt(query, now)

	resp := evalResponse{
		Query:   query,
		Count:   len(matches),
		Results: make([]taskResult, 0, len(matches)),
	}
	for _, t := range matches {
		r := taskResult{
			ID:         t.ID,
			Content:    t.Content,
			Project:    t.ProjectID,
			DueDate:    t.DueDate,
			Priority:   t.Priority,
			Recurrence: t.Recurrence,
		}
		for _, l := range t.Labels {
			r.Labels = append(r.Labels, l.Name)
		}
		resp.Results = append(resp.Results, r)
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding results: %w", err)
	}
	return data, nil
}

// buildContext snapshots the project and label catalogs into a lookup
// context for name resolution in queries.
func (s *FilterService) buildContext() *filter.Context {
	return filter.NewContext(s.store.Projects(), s.store.Labels())
}

// SavedFilters returns the saved filters from the store
func (s *FilterService) SavedFilters() []task.Filter {
	return s.store.Filters()
}

// SavedFilterByName looks up a saved filter by its name, case-sensitive
func (s *FilterService) SavedFilterByName(name string) (task.Filter, bool) {
	for _, f := range s.store.Filters() {
		if f.Name == name {
			return f, true
		}
	}
	return task.Filter{}, false
}

// SaveFilter stores a named query verbatim; the query is not validated
func (s *FilterService) SaveFilter(f *task.Filter) error {
	return s.store.SaveFilter(f)
}

// DeleteFilter removes a saved filter by ID
func (s *FilterService) DeleteFilter(id string) bool {
	return s.store.DeleteFilter(id)
}
