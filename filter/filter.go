package filter

import (
	"time"

	"github.com/hunterjackson/todoer-sub002/task"
)

// Expr is a filter expression node that can be evaluated against a task.
// Trees are immutable once built; it is safe to evaluate the same tree
// from multiple goroutines.
type Expr interface {
	Evaluate(t *task.Task, now time.Time, ctx *Context) bool
}

// BinaryExpr represents AND, OR operations
type BinaryExpr struct {
	Op    string // "AND", "OR"
	Left  Expr
	Right Expr
}

// Evaluate implements Expr, short-circuiting on the left operand.
func (b *BinaryExpr) Evaluate(t *task.Task, now time.Time, ctx *Context) bool {
	switch b.Op {
	case "AND":
		return b.Left.Evaluate(t, now, ctx) && b.Right.Evaluate(t, now, ctx)
	case "OR":
		return b.Left.Evaluate(t, now, ctx) || b.Right.Evaluate(t, now, ctx)
	default:
		return false
	}
}

// UnaryExpr represents NOT operation
type UnaryExpr struct {
	Op   string // "NOT"
	Expr Expr
}

// Evaluate implements Expr
func (u *UnaryExpr) Evaluate(t *task.Task, now time.Time, ctx *Context) bool {
	if u.Op == "NOT" {
		return !u.Expr.Evaluate(t, now, ctx)
	}
	return false
}

// Evaluate compiles query and returns the tasks that match it, in their
// original relative order. Completed and soft-deleted tasks are excluded
// before any predicate runs; no query can bring them back. An empty query
// returns all non-excluded tasks.
//
// Callers must populate each task's Labels before calling, or "@label"
// and "has:labels" predicates will silently match nothing.
func Evaluate(tasks []*task.Task, query string, ctx *Context) []*task.Task {
	return EvaluateAt(tasks, query, ctx, time.Now())
}

// EvaluateAt is Evaluate with an explicit clock. Day-boundary predicates
// (today, tomorrow, overdue, "N days") are resolved against now's local
// calendar day.
func EvaluateAt(tasks []*task.Task, query string, ctx *Context, now time.Time) []*task.Task {
	expr := Parse(query)

	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Active() {
			continue
		}
		if expr == nil || expr.Evaluate(t, now, ctx) {
			out = append(out, t)
		}
	}
	return out
}
