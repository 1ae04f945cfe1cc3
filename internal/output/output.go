package output

import "github.com/abatilo/tasktracker/internal/task"

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(t task.Task) string
	FormatTaskList(list TaskList) string
	FormatError(err error) string
	FormatMessage(msg string) string
}

// TaskList is the result of the list command.
type TaskList struct {
	Tasks []task.Task
	// StoreEmpty is set when the store holds no tasks at all, as opposed to
	// none matching the filter.
	StoreEmpty bool
	// Warning is shown when the requested filter was not understood.
	Warning string
}
