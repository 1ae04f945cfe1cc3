package shell

import (
	"errors"
	"fmt"
	"strconv"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
	"github.com/abatilo/tasktracker/internal/output"
	"github.com/abatilo/tasktracker/internal/storage"
	"github.com/abatilo/tasktracker/internal/task"
)

// command is one entry of the command table. usage and summary feed the
// help text.
type command struct {
	name    string
	usage   string
	summary string
	run     func(s *Shell, args []string) (Result, error)
}

// commands lists every command in help order.
func commands() []command {
	return []command{
		{"add", `add "<description>"`, "Adds a new task.", (*Shell).add},
		{"list", "list [status]", "Lists tasks. Optional status: todo, in-progress, done.", (*Shell).list},
		{"update", `update <id> "<new_desc>"`, "Updates the description of an existing task.", (*Shell).update},
		{"delete", "delete <id>", "Deletes a task.", (*Shell).delete},
		{"mark-todo", "mark-todo <id>", "Marks a task as todo.", markAs(task.StatusTodo)},
		{"mark-in-progress", "mark-in-progress <id>", "Marks a task as in-progress.", markAs(task.StatusInProgress)},
		{"mark-done", "mark-done <id>", "Marks a task as done.", markAs(task.StatusDone)},
		{"help", "help", "Shows this help message.", (*Shell).help},
		{"exit", "exit", "Exits the application.", (*Shell).exit},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (s *Shell) add(args []string) (Result, error) {
	if len(args) < 1 {
		return Result{}, bitserrors.MissingArgumentError{Message: "task description is missing"}
	}
	id, err := s.store.Add(args[0])
	return s.mutated(fmt.Sprintf("Task added successfully (ID: %d)", id), err)
}

func (s *Shell) list(args []string) (Result, error) {
	var label string
	if len(args) > 0 {
		label = args[0]
	}

	list := output.TaskList{StoreEmpty: s.store.Len() == 0}
	filter, err := storage.ParseStatusFilter(label)
	if err != nil {
		list.Warning = err.Error()
	}
	list.Tasks = s.store.List(filter)
	return Result{Output: s.formatter.FormatTaskList(list)}, nil
}

func (s *Shell) update(args []string) (Result, error) {
	if len(args) < 2 { //nolint:mnd // id and description
		return Result{}, bitserrors.MissingArgumentError{Message: "task ID and new description are required"}
	}
	id, err := parseID(args[0])
	if err != nil {
		return Result{}, err
	}
	err = s.store.Update(id, args[1])
	return s.mutated(fmt.Sprintf("Task %d updated successfully.", id), err)
}

func (s *Shell) delete(args []string) (Result, error) {
	id, err := requireID(args)
	if err != nil {
		return Result{}, err
	}
	err = s.store.Delete(id)
	return s.mutated(fmt.Sprintf("Task %d deleted successfully.", id), err)
}

func markAs(status task.Status) func(*Shell, []string) (Result, error) {
	return func(s *Shell, args []string) (Result, error) {
		id, err := requireID(args)
		if err != nil {
			return Result{}, err
		}
		err = s.store.SetStatus(id, status)
		return s.mutated(fmt.Sprintf("Task %d marked as %s.", id, status.Label()), err)
	}
}

func (s *Shell) help(_ []string) (Result, error) {
	return Result{Output: s.formatter.FormatMessage(helpText())}, nil
}

func (s *Shell) exit(_ []string) (Result, error) {
	return Result{Output: s.formatter.FormatMessage("Goodbye! 👋"), Exit: true}, nil
}

// mutated renders msg for a mutation that took effect. A SaveError still
// counts as taking effect: the change is kept in memory and the error is
// passed on so the user can retry.
func (s *Shell) mutated(msg string, err error) (Result, error) {
	var saveErr bitserrors.SaveError
	if err != nil && !errors.As(err, &saveErr) {
		return Result{}, err
	}
	return Result{Output: s.formatter.FormatMessage(msg)}, err
}

func requireID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, bitserrors.MissingArgumentError{Message: "task ID is required"}
	}
	return parseID(args[0])
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, bitserrors.InvalidIDError{Value: arg}
	}
	return id, nil
}
