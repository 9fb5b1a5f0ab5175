package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hunterjackson/todoer-sub002/task"
)

// Kind enumerates the leaf predicate shapes the compiler recognizes.
// Negation is never a Kind: "!" always becomes a UnaryExpr wrapper, which
// keeps the evaluator single-purpose.
type Kind int

const (
	KindToday Kind = iota
	KindTomorrow
	KindOverdue
	KindNoDueDate
	KindDueWithin       // "N days": due within the next N days
	KindPriority        // "p1".."p4"
	KindProject         // "#name", resolved through the Context
	KindLabel           // "@name", matched against populated task labels
	KindRecurring
	KindAssigned
	KindUnassigned
	KindHasDate
	KindHasDescription
	KindHasLabels
	KindSearch   // "search:text": content or description substring
	KindContains // fallback: content substring
)

// PredExpr is a leaf condition evaluated against a single task.
type PredExpr struct {
	Kind Kind
	Text string // project/label name, search text, or fallback text
	N    int    // priority level or day-window size
}

var (
	priorityPattern = regexp.MustCompile(`^p([1-4])$`)
	daysPattern     = regexp.MustCompile(`^(\d+)\s*days?$`)
	hasPattern      = regexp.MustCompile(`^has:(date|description|labels)$`)
	searchPattern   = regexp.MustCompile(`^search:(.+)$`)
)

// compileAtom maps atom text to its predicate. Matching is
// case-insensitive and checked in priority order: exact keywords, then
// p1-p4, then "N days", then "#project", "@label", "has:", "search:",
// and finally the raw-contains fallback for anything unrecognized.
// The "#" and "@" checks must come before the fallback.
func compileAtom(text string) *PredExpr {
	lower := strings.ToLower(strings.TrimSpace(text))

	switch lower {
	case "today":
		return &PredExpr{Kind: KindToday}
	case "tomorrow":
		return &PredExpr{Kind: KindTomorrow}
	case "overdue":
		return &PredExpr{Kind: KindOverdue}
	case "no date", "no due date":
		return &PredExpr{Kind: KindNoDueDate}
	case "recurring":
		return &PredExpr{Kind: KindRecurring}
	case "assigned":
		return &PredExpr{Kind: KindAssigned}
	case "unassigned":
		return &PredExpr{Kind: KindUnassigned}
	}

	if m := priorityPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &PredExpr{Kind: KindPriority, N: n}
	}
	if m := daysPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &PredExpr{Kind: KindDueWithin, N: n}
	}
	if name := strings.TrimPrefix(lower, "#"); name != lower && name != "" {
		return &PredExpr{Kind: KindProject, Text: name}
	}
	if name := strings.TrimPrefix(lower, "@"); name != lower && name != "" {
		return &PredExpr{Kind: KindLabel, Text: name}
	}
	if m := hasPattern.FindStringSubmatch(lower); m != nil {
		switch m[1] {
		case "date":
			return &PredExpr{Kind: KindHasDate}
		case "description":
			return &PredExpr{Kind: KindHasDescription}
		case "labels":
			return &PredExpr{Kind: KindHasLabels}
		}
	}
	if m := searchPattern.FindStringSubmatch(lower); m != nil {
		return &PredExpr{Kind: KindSearch, Text: m[1]}
	}

	return &PredExpr{Kind: KindContains, Text: lower}
}

// Evaluate implements Expr. Unresolvable project names and unpopulated
// labels match nothing; no predicate ever errors.
func (p *PredExpr) Evaluate(t *task.Task, now time.Time, ctx *Context) bool {
	switch p.Kind {
	case KindToday:
		start, end := dayBounds(now)
		return dueWithin(t.DueDate, start, end)
	case KindTomorrow:
		start, end := dayBounds(now.AddDate(0, 0, 1))
		return dueWithin(t.DueDate, start, end)
	case KindOverdue:
		start, _ := dayBounds(now)
		return t.DueDate != nil && t.DueDate.Before(start)
	case KindNoDueDate:
		return t.DueDate == nil
	case KindDueWithin:
		return dueWithin(t.DueDate, now, now.AddDate(0, 0, p.N))
	case KindPriority:
		return t.Priority == p.N
	case KindProject:
		if ctx == nil {
			return false
		}
		id, ok := ctx.Project(p.Text)
		return ok && t.ProjectID != "" && t.ProjectID == id
	case KindLabel:
		return t.HasLabel(p.Text)
	case KindRecurring:
		return t.Recurring()
	case KindAssigned:
		return t.ProjectID != ""
	case KindUnassigned:
		return t.ProjectID == ""
	case KindHasDate:
		return t.DueDate != nil
	case KindHasDescription:
		return strings.TrimSpace(t.Description) != ""
	case KindHasLabels:
		return len(t.Labels) > 0
	case KindSearch:
		return containsFold(t.Content, p.Text) || containsFold(t.Description, p.Text)
	case KindContains:
		return containsFold(t.Content, p.Text)
	default:
		return false
	}
}

// dayBounds returns the inclusive [startOfDay, endOfDay] boundaries of
// now's local calendar day.
func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

func dueWithin(due *time.Time, start, end time.Time) bool {
	return due != nil && !due.Before(start) && !due.After(end)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
