//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// TaskNotFoundError indicates no task carries the given ID.
type TaskNotFoundError struct {
	ID int
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task with ID %d not found", e.ID)
}

// EmptyDescriptionError indicates a blank description was supplied.
type EmptyDescriptionError struct{}

func (e EmptyDescriptionError) Error() string {
	return "task description cannot be empty"
}

// MissingArgumentError indicates a command was given too few arguments.
type MissingArgumentError struct {
	Message string
}

func (e MissingArgumentError) Error() string {
	return e.Message
}

// InvalidIDError indicates a task ID argument is not a number.
type InvalidIDError struct {
	Value string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid task ID %q: please provide a number", e.Value)
}

// UnknownCommandError indicates the first token names no command.
type UnknownCommandError struct {
	Name string
}

func (e UnknownCommandError) Error() string {
	return "Unknown command: " + e.Name
}

// InvalidStatusError indicates a status outside TODO, IN_PROGRESS and DONE.
type InvalidStatusError struct {
	Value string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status: %s (valid: todo, in-progress, done)", e.Value)
}

// InvalidStatusFilterError is the warning for an unrecognised list filter.
type InvalidStatusFilterError struct {
	Value string
}

func (e InvalidStatusFilterError) Error() string {
	return fmt.Sprintf("Invalid status filter: %s. Showing all tasks.", e.Value)
}

// CorruptFileError indicates the task file could not be parsed.
type CorruptFileError struct {
	Path   string
	Reason string
}

func (e CorruptFileError) Error() string {
	if e.Path == "" {
		return "tasks file is corrupted: " + e.Reason
	}
	return fmt.Sprintf("tasks file %s is corrupted: %s", e.Path, e.Reason)
}

// SaveError indicates the task file could not be written. The change it
// was persisting has already been applied in memory.
type SaveError struct {
	Path string
	Err  error
}

func (e SaveError) Error() string {
	return fmt.Sprintf("could not save tasks to %s: %v", e.Path, e.Err)
}

func (e SaveError) Unwrap() error {
	return e.Err
}

// IDsExhaustedError indicates no id above the highest existing one fits in
// an int, so no task can be added.
type IDsExhaustedError struct {
	MaxID int
}

func (e IDsExhaustedError) Error() string {
	return fmt.Sprintf("cannot add task: highest task ID %d leaves no room for a new ID", e.MaxID)
}

// LineTooLongError indicates an input line was discarded for exceeding the
// read limit.
type LineTooLongError struct {
	Limit int
}

func (e LineTooLongError) Error() string {
	return fmt.Sprintf("input line longer than %d bytes was ignored", e.Limit)
}
