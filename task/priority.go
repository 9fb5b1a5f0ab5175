package task

import (
	"strconv"
	"strings"
)

// Priority range. 1 is the most urgent, 4 the least; new tasks default to 4.
const (
	MinPriority     = 1
	MaxPriority     = 4
	DefaultPriority = 4
)

var priorityLabels = map[int]string{
	1: "Urgent",
	2: "High",
	3: "Medium",
	4: "Low",
}

// ParsePriority parses a priority from user input. Accepts a bare digit
// ("1") or the p-prefixed form ("p1", "P1").
func ParsePriority(s string) (int, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "p")
	n, err := strconv.Atoi(normalized)
	if err != nil || n < MinPriority || n > MaxPriority {
		return DefaultPriority, false
	}
	return n, true
}

// NormalizePriority clamps an out-of-range priority to the default.
func NormalizePriority(n int) int {
	if n < MinPriority || n > MaxPriority {
		return DefaultPriority
	}
	return n
}

// PriorityLabel returns the display name for a priority level.
func PriorityLabel(n int) string {
	if label, ok := priorityLabels[n]; ok {
		return label
	}
	return priorityLabels[DefaultPriority]
}
