package task

import "strings"

// Status represents the current state of a task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Task represents a tracked unit of work.
type Task struct {
	ID          int
	Description string
	Status      Status
}

// IsValidStatus checks if a status is one of the known values.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus converts a user or file supplied label into a Status.
// Case is ignored and hyphens are treated as underscores, so "in-progress",
// "In_Progress" and "IN_PROGRESS" all resolve to StatusInProgress.
func ParseStatus(label string) (Status, bool) {
	s := Status(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(label), "-", "_")))
	if !IsValidStatus(s) {
		return "", false
	}
	return s, true
}

// Label returns the lowercased, hyphenated form used in listings ("in-progress").
func (s Status) Label() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), "_", "-")
}

// Icon returns the checkbox shown in front of a task line.
func (s Status) Icon() string {
	switch s {
	case StatusTodo:
		return "[ ]"
	case StatusInProgress:
		return "[~]"
	case StatusDone:
		return "[✓]"
	default:
		return "[?]"
	}
}
