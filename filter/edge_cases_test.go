package filter

import (
	"testing"

	"github.com/hunterjackson/todoer-sub002/task"
)

// TestMalformedQueries checks that partially-typed input degrades to a
// best-effort match instead of failing. The engine is run on every
// keystroke, so half-finished queries are the common case, not the error
// case.
func TestMalformedQueries(t *testing.T) {
	tasks := seedTasks()
	ctx := seedContext()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "dangling AND drops the operator",
			query: "p1 &",
			want:  []string{"A"},
		},
		{
			name:  "dangling OR drops the operator",
			query: "p1 |",
			want:  []string{"A"},
		},
		{
			name:  "leading OR keeps the operand",
			query: "| p1",
			want:  []string{"A"},
		},
		{
			name:  "lone NOT matches nothing it can negate",
			query: "!",
			want:  []string{"A", "B", "C", "D"},
		},
		{
			name:  "unclosed group is parsed as if closed",
			query: "(p1 | p2",
			want:  []string{"A", "B"},
		},
		{
			name:  "stray closing paren is dropped",
			query: "p1)",
			want:  []string{"A"},
		},
		{
			name:  "empty group matches everything",
			query: "()",
			want:  []string{"A", "B", "C", "D"},
		},
		{
			name:  "lone open paren falls back to raw text",
			query: "(",
			want:  []string{},
		},
		{
			name:  "operators only",
			query: "& | !",
			want:  []string{"A", "B", "C", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(EvaluateAt(tasks, tt.query, ctx, testNow))
			if len(got) != len(tt.want) {
				t.Fatalf("Evaluate(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Evaluate(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestDoubleNegation(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		task   *task.Task
		expect bool
	}{
		{
			name:   "double negation - should match",
			query:  "!!p1",
			task:   &task.Task{Priority: 1},
			expect: true,
		},
		{
			name:   "double negation - should not match",
			query:  "!!p1",
			task:   &task.Task{Priority: 2},
			expect: false,
		},
		{
			name:   "triple negation",
			query:  "!!!p1",
			task:   &task.Task{Priority: 1},
			expect: false,
		},
		{
			name:   "double negation with parentheses",
			query:  "!(!(p1))",
			task:   &task.Task{Priority: 1},
			expect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := Parse(tt.query)
			if expr == nil {
				t.Fatalf("Parse(%q) returned nil", tt.query)
			}
			got := expr.Evaluate(tt.task, testNow, nil)
			if got != tt.expect {
				t.Errorf("query %q = %v, want %v", tt.query, got, tt.expect)
			}
		})
	}
}

func TestEmptyQueryParsesToNil(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		if expr := Parse(query); expr != nil {
			t.Errorf("Parse(%q) = %v, want nil (match-all)", query, expr)
		}
	}
}

func TestFallbackMatchesContentOnly(t *testing.T) {
	tasks := []*task.Task{
		{ID: "in-content", Content: "buy groceries"},
		{ID: "in-description", Content: "errands", Description: "groceries and more"},
	}

	// raw fallback searches content only
	got := ids(EvaluateAt(tasks, "groceries", nil, testNow))
	if len(got) != 1 || got[0] != "in-content" {
		t.Errorf("fallback matched %v, want [in-content]", got)
	}

	// search: also covers the description
	got = ids(EvaluateAt(tasks, "search:groceries", nil, testNow))
	if len(got) != 2 {
		t.Errorf("search matched %v, want both tasks", got)
	}
}

func TestFallbackIsCaseInsensitive(t *testing.T) {
	tasks := []*task.Task{{ID: "X", Content: "Call THE Dentist"}}
	if got := EvaluateAt(tasks, "dentist", nil, testNow); len(got) != 1 {
		t.Error("fallback should match case-insensitively")
	}
	if got := EvaluateAt(tasks, "DENTIST", nil, testNow); len(got) != 1 {
		t.Error("fallback query casing should not matter")
	}
}

func TestMultiWordAtomJoining(t *testing.T) {
	tasks := []*task.Task{
		{ID: "nodue", Content: "anything"},
		{ID: "withdue", Content: "anything else", DueDate: due(testNow)},
	}

	// "no date" is one atom joined by the parser, not two fallbacks
	got := ids(EvaluateAt(tasks, "no date", nil, testNow))
	if len(got) != 1 || got[0] != "nodue" {
		t.Errorf("'no date' matched %v, want [nodue]", got)
	}

	// joined words that do not form a keyword fall back to raw contains
	got = ids(EvaluateAt(tasks, "anything else", nil, testNow))
	if len(got) != 1 || got[0] != "withdue" {
		t.Errorf("'anything else' matched %v, want [withdue]", got)
	}
}
