package store

import (
	"testing"

	"github.com/hunterjackson/todoer-sub002/task"
)

func TestInMemoryStoreTaskLifecycle(t *testing.T) {
	s := NewInMemoryStore()

	tk := &task.Task{Content: "write tests", Priority: 2}
	if err := s.CreateTask(tk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if tk.ID == "" {
		t.Fatal("CreateTask should generate an ID")
	}

	got := s.GetTask(tk.ID)
	if got == nil || got.Content != "write tests" {
		t.Fatalf("GetTask returned %+v", got)
	}

	if !s.CompleteTask(tk.ID) {
		t.Fatal("CompleteTask returned false")
	}
	if s.CompleteTask(tk.ID) {
		t.Error("completing an already-completed task should return false")
	}
	if len(s.ActiveTasks()) != 0 {
		t.Error("completed task should not be active")
	}

	if !s.ReopenTask(tk.ID) {
		t.Fatal("ReopenTask returned false")
	}
	if len(s.ActiveTasks()) != 1 {
		t.Error("reopened task should be active")
	}

	if !s.DeleteTask(tk.ID) {
		t.Fatal("DeleteTask returned false")
	}
	if s.GetTask(tk.ID) == nil {
		t.Error("soft-deleted task should still be readable")
	}
	if s.GetTask(tk.ID).DeletedAt == nil {
		t.Error("soft delete should stamp DeletedAt")
	}
	if len(s.ActiveTasks()) != 0 {
		t.Error("soft-deleted task should not be active")
	}
	if s.DeleteTask(tk.ID) {
		t.Error("deleting an already-deleted task should return false")
	}

	if !s.PurgeTask(tk.ID) {
		t.Fatal("PurgeTask returned false")
	}
	if s.GetTask(tk.ID) != nil {
		t.Error("purged task should be gone")
	}
}

func TestInMemoryStorePopulatesLabels(t *testing.T) {
	s := NewInMemoryStore()

	tk := &task.Task{Content: "tag me", Labels: []task.Label{{Name: "urgent"}, {Name: "home"}}}
	if err := s.CreateTask(tk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	for _, l := range tk.Labels {
		if l.ID == "" {
			t.Errorf("label %q was not resolved to a catalog entry", l.Name)
		}
	}
	if len(s.Labels()) != 2 {
		t.Errorf("expected 2 catalog labels, got %d", len(s.Labels()))
	}

	// a second task with the same label name reuses the catalog entry
	other := &task.Task{Content: "also urgent", Labels: []task.Label{{Name: "Urgent"}}}
	if err := s.CreateTask(other); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if len(s.Labels()) != 2 {
		t.Errorf("label catalog grew to %d entries, case-insensitive reuse expected", len(s.Labels()))
	}
	if other.Labels[0].ID != tk.Labels[0].ID {
		t.Error("same label name should resolve to the same catalog ID")
	}
}

func TestInMemoryStoreProjects(t *testing.T) {
	s := NewInMemoryStore()

	p, err := s.CreateProject("Work", "blue")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if p.ID == "" {
		t.Error("project should get an ID")
	}

	if _, err := s.CreateProject("work", ""); err == nil {
		t.Error("duplicate project name (case-insensitive) should fail")
	}
	if _, err := s.CreateProject("  ", ""); err == nil {
		t.Error("blank project name should fail")
	}
}

func TestInMemoryStoreLabelColorPersists(t *testing.T) {
	s := NewInMemoryStore()

	l, err := s.CreateLabel("urgent", "red")
	if err != nil {
		t.Fatalf("CreateLabel failed: %v", err)
	}
	if l.Color != "red" {
		t.Errorf("returned label color = %q, want %q", l.Color, "red")
	}

	got := s.Labels()
	if len(got) != 1 || got[0].Color != "red" {
		t.Fatalf("catalog label color = %q, want %q", got[0].Color, "red")
	}

	// recoloring an existing label updates the catalog entry in place
	if _, err := s.CreateLabel("Urgent", "blue"); err != nil {
		t.Fatalf("CreateLabel failed: %v", err)
	}
	got = s.Labels()
	if len(got) != 1 || got[0].Color != "blue" {
		t.Fatalf("catalog label color after recolor = %q, want %q", got[0].Color, "blue")
	}
}

func TestInMemoryStoreFilters(t *testing.T) {
	s := NewInMemoryStore()

	// queries are stored verbatim, even nonsense ones
	f := &task.Filter{Name: "broken", Query: "((((today &"}
	if err := s.SaveFilter(f); err != nil {
		t.Fatalf("SaveFilter failed: %v", err)
	}
	if f.ID == "" {
		t.Fatal("SaveFilter should generate an ID")
	}

	saved := s.Filters()
	if len(saved) != 1 || saved[0].Query != "((((today &" {
		t.Fatalf("filter not stored verbatim: %+v", saved)
	}

	f.Query = "today & p1"
	if err := s.SaveFilter(f); err != nil {
		t.Fatalf("SaveFilter update failed: %v", err)
	}
	if got := s.Filters(); len(got) != 1 || got[0].Query != "today & p1" {
		t.Fatalf("filter update did not replace: %+v", got)
	}

	if !s.DeleteFilter(f.ID) {
		t.Fatal("DeleteFilter returned false")
	}
	if s.DeleteFilter(f.ID) {
		t.Error("deleting a missing filter should return false")
	}
}

func TestInMemoryStoreFilterOrdering(t *testing.T) {
	s := NewInMemoryStore()

	_ = s.SaveFilter(&task.Filter{Name: "zeta", SortOrder: 1})
	_ = s.SaveFilter(&task.Filter{Name: "alpha", SortOrder: 2})
	_ = s.SaveFilter(&task.Filter{Name: "beta", SortOrder: 1})

	got := s.Filters()
	if got[0].Name != "beta" || got[1].Name != "zeta" || got[2].Name != "alpha" {
		t.Errorf("filters out of order: %v, %v, %v", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestInMemoryStoreListeners(t *testing.T) {
	s := NewInMemoryStore()

	calls := 0
	id := s.AddListener(func() { calls++ })

	_ = s.CreateTask(&task.Task{Content: "notify me"})
	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}

	s.RemoveListener(id)
	_ = s.CreateTask(&task.Task{Content: "silent"})
	if calls != 1 {
		t.Errorf("listener fired after removal, calls = %d", calls)
	}
}
