package output

import (
	"errors"
	"fmt"
	"strings"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
	"github.com/abatilo/tasktracker/internal/task"
)

const (
	listHeader    = "--- Your Tasks ---"
	listFooter    = "------------------"
	emptyStoreMsg = `No tasks yet. Use 'add "<description>"' to create one.`
	noMatchMsg    = "No tasks match the specified filter."
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task as "<icon> <id>: <description> (<label>)".
func (f *HumanFormatter) FormatTask(t task.Task) string {
	return fmt.Sprintf("%s %d: %s (%s)\n", t.Status.Icon(), t.ID, t.Description, t.Status.Label())
}

// FormatTaskList formats the list command output between a header and footer.
func (f *HumanFormatter) FormatTaskList(list TaskList) string {
	var sb strings.Builder
	sb.WriteString("\n" + listHeader + "\n")

	if list.StoreEmpty {
		sb.WriteString(emptyStoreMsg + "\n")
		return sb.String()
	}
	if list.Warning != "" {
		sb.WriteString(list.Warning + "\n")
	}

	if len(list.Tasks) == 0 {
		sb.WriteString(noMatchMsg + "\n")
	}
	for _, t := range list.Tasks {
		sb.WriteString(f.FormatTask(t))
	}
	sb.WriteString(listFooter + "\n\n")
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	var unknown bitserrors.UnknownCommandError
	if errors.As(err, &unknown) {
		return unknown.Error() + "\n"
	}
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
