package output

import (
	"encoding/json"

	"github.com/abatilo/tasktracker/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// taskJSON is the JSON representation of a task.
type taskJSON struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func toTaskJSON(t task.Task) taskJSON {
	return taskJSON{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
	}
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t task.Task) string {
	return marshalJSON(toTaskJSON(t))
}

// taskListJSON is the JSON representation of the list command.
type taskListJSON struct {
	Tasks   []taskJSON `json:"tasks"`
	Warning string     `json:"warning,omitempty"`
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(list TaskList) string {
	jsonTasks := make([]taskJSON, len(list.Tasks))
	for i, t := range list.Tasks {
		jsonTasks[i] = toTaskJSON(t)
	}
	return marshalJSON(taskListJSON{Tasks: jsonTasks, Warning: list.Warning})
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
