package task

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"1", 1, true},
		{"4", 4, true},
		{"p1", 1, true},
		{"P3", 3, true},
		{" p2 ", 2, true},
		{"0", DefaultPriority, false},
		{"5", DefaultPriority, false},
		{"p5", DefaultPriority, false},
		{"", DefaultPriority, false},
		{"high", DefaultPriority, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParsePriority(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParsePriority(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizePriority(t *testing.T) {
	if got := NormalizePriority(0); got != DefaultPriority {
		t.Errorf("NormalizePriority(0) = %d, want %d", got, DefaultPriority)
	}
	if got := NormalizePriority(2); got != 2 {
		t.Errorf("NormalizePriority(2) = %d, want 2", got)
	}
}

func TestTaskHelpers(t *testing.T) {
	done := &Task{Completed: true}
	if done.Active() {
		t.Error("completed task should not be active")
	}

	labeled := &Task{Labels: []Label{{ID: "l1", Name: "Urgent"}}}
	if !labeled.HasLabel("urgent") {
		t.Error("HasLabel should match case-insensitively")
	}
	if labeled.HasLabel("home") {
		t.Error("HasLabel matched a label the task does not carry")
	}

	recurring := &Task{Recurrence: "every day"}
	if !recurring.Recurring() {
		t.Error("task with recurrence rule should be recurring")
	}
	if (&Task{Recurrence: "  "}).Recurring() {
		t.Error("whitespace recurrence rule should not count as recurring")
	}
}
