package filter

import (
	"testing"
	"time"

	"github.com/hunterjackson/todoer-sub002/task"
)

// TestDayBoundaryPredicates pins the [startOfDay, endOfDay] inclusive
// semantics of today/tomorrow/overdue against a fixed clock.
func TestDayBoundaryPredicates(t *testing.T) {
	now := time.Date(2026, time.August, 26, 15, 30, 0, 0, time.Local)
	startOfDay := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.Local)
	endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)

	tests := []struct {
		name   string
		query  string
		due    *time.Time
		expect bool
	}{
		{name: "today at start of day", query: "today", due: due(startOfDay), expect: true},
		{name: "today at end of day", query: "today", due: due(endOfDay), expect: true},
		{name: "today before midnight boundary", query: "today", due: due(startOfDay.Add(-time.Nanosecond)), expect: false},
		{name: "today next midnight", query: "today", due: due(startOfDay.AddDate(0, 0, 1)), expect: false},
		{name: "today without due date", query: "today", due: nil, expect: false},

		{name: "tomorrow start", query: "tomorrow", due: due(startOfDay.AddDate(0, 0, 1)), expect: true},
		{name: "tomorrow end", query: "tomorrow", due: due(startOfDay.AddDate(0, 0, 2).Add(-time.Nanosecond)), expect: true},
		{name: "tomorrow misses today", query: "tomorrow", due: due(now), expect: false},
		{name: "tomorrow misses day after", query: "tomorrow", due: due(startOfDay.AddDate(0, 0, 2)), expect: false},

		{name: "overdue strictly before today", query: "overdue", due: due(startOfDay.Add(-time.Nanosecond)), expect: true},
		{name: "overdue last week", query: "overdue", due: due(now.AddDate(0, 0, -7)), expect: true},
		{name: "due earlier today is not overdue", query: "overdue", due: due(startOfDay), expect: false},
		{name: "overdue without due date", query: "overdue", due: nil, expect: false},

		{name: "no date with nil due", query: "no date", due: nil, expect: true},
		{name: "no date with due", query: "no date", due: due(now), expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := Parse(tt.query)
			if expr == nil {
				t.Fatalf("Parse(%q) returned nil", tt.query)
			}
			got := expr.Evaluate(&task.Task{DueDate: tt.due}, now, nil)
			if got != tt.expect {
				t.Errorf("query %q with due %v = %v, want %v", tt.query, tt.due, got, tt.expect)
			}
		})
	}
}

// TestDueWithinDays pins the "N days" window: [now, now + N days], both
// ends inclusive and relative to the clock, not to midnight.
func TestDueWithinDays(t *testing.T) {
	now := time.Date(2026, time.August, 26, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name   string
		query  string
		due    *time.Time
		expect bool
	}{
		{name: "due right now", query: "7 days", due: due(now), expect: true},
		{name: "due at window end", query: "7 days", due: due(now.AddDate(0, 0, 7)), expect: true},
		{name: "due past window end", query: "7 days", due: due(now.AddDate(0, 0, 7).Add(time.Second)), expect: false},
		{name: "due in the past", query: "7 days", due: due(now.Add(-time.Hour)), expect: false},
		{name: "no due date", query: "7 days", due: nil, expect: false},
		{name: "single day window", query: "1 day", due: due(now.Add(12 * time.Hour)), expect: true},
		{name: "compact form", query: "30days", due: due(now.AddDate(0, 0, 20)), expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := Parse(tt.query)
			if expr == nil {
				t.Fatalf("Parse(%q) returned nil", tt.query)
			}
			got := expr.Evaluate(&task.Task{DueDate: tt.due}, now, nil)
			if got != tt.expect {
				t.Errorf("query %q with due %v = %v, want %v", tt.query, tt.due, got, tt.expect)
			}
		})
	}
}

func TestRecurringPredicate(t *testing.T) {
	daily := &task.Task{Recurrence: "every day"}
	plain := &task.Task{}

	expr := Parse("recurring")
	if !expr.Evaluate(daily, testNow, nil) {
		t.Error("task with recurrence rule should match 'recurring'")
	}
	if expr.Evaluate(plain, testNow, nil) {
		t.Error("task without recurrence rule should not match 'recurring'")
	}
}
