package storage

import (
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
	"github.com/abatilo/tasktracker/internal/task"
)

// Store owns the task list and keeps the task file in step with it.
type Store struct {
	path  string
	tasks []task.Task
	log   logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes the store's diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStoreWithPath creates an empty Store that persists to path without
// reading it.
func NewStoreWithPath(path string, opts ...Option) *Store {
	s := &Store{path: path, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a Store loaded from the task file at path. When the file is
// corrupted the returned Store is empty and usable, and the error is a
// CorruptFileError; the next save overwrites the file. Any other read
// failure returns a nil Store.
func Open(path string, opts ...Option) (*Store, error) {
	s := NewStoreWithPath(path, opts...)
	tasks, err := ReadFile(path)
	if err != nil {
		var corrupt bitserrors.CorruptFileError
		if errors.As(err, &corrupt) {
			s.log.WithField("path", path).WithField("cause", err).Debug("Task file is corrupted, starting empty")
			return s, err
		}
		return nil, err
	}
	s.tasks = tasks
	s.log.WithField("path", path).WithField("count", len(tasks)).Debug("Loaded tasks")
	return s, nil
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a TODO task and returns its id.
func (s *Store) Add(description string) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, bitserrors.EmptyDescriptionError{}
	}

	id, ok := task.NextID(s.tasks)
	if !ok {
		return 0, bitserrors.IDsExhaustedError{MaxID: math.MaxInt}
	}
	s.tasks = append(s.tasks, task.Task{
		ID:          id,
		Description: description,
		Status:      task.StatusTodo,
	})
	s.log.WithField("id", id).Debug("Added task")
	return id, s.persist()
}

// List returns a copy of the tasks matching filter, in insertion order.
func (s *Store) List(filter StatusFilter) []task.Task {
	tasks := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Matches(t.Status) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int) (task.Task, error) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, bitserrors.TaskNotFoundError{ID: id}
	}
	return s.tasks[i], nil
}

// Update replaces the description of a task.
func (s *Store) Update(id int, description string) error {
	if strings.TrimSpace(description) == "" {
		return bitserrors.EmptyDescriptionError{}
	}
	i := s.index(id)
	if i < 0 {
		return bitserrors.TaskNotFoundError{ID: id}
	}
	if s.tasks[i].Description == description {
		return nil
	}

	s.tasks[i].Description = description
	s.log.WithField("id", id).Debug("Updated task")
	return s.persist()
}

// Delete removes a task.
func (s *Store) Delete(id int) error {
	i := s.index(id)
	if i < 0 {
		return bitserrors.TaskNotFoundError{ID: id}
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.log.WithField("id", id).Debug("Deleted task")
	return s.persist()
}

// SetStatus replaces the status of a task. Setting the status a task
// already has succeeds without rewriting the file.
func (s *Store) SetStatus(id int, status task.Status) error {
	if !task.IsValidStatus(status) {
		return bitserrors.InvalidStatusError{Value: string(status)}
	}
	i := s.index(id)
	if i < 0 {
		return bitserrors.TaskNotFoundError{ID: id}
	}
	if s.tasks[i].Status == status {
		return nil
	}

	s.tasks[i].Status = status
	s.log.WithFields(logrus.Fields{"id": id, "status": status}).Debug("Changed task status")
	return s.persist()
}

// Save rewrites the task file from the in-memory list.
func (s *Store) Save() error {
	return s.persist()
}

func (s *Store) persist() error {
	if err := WriteFile(s.path, s.tasks); err != nil {
		s.log.WithField("path", s.path).WithField("cause", err).Debug("Could not save tasks")
		return bitserrors.SaveError{Path: s.path, Err: err}
	}
	s.log.WithField("path", s.path).WithField("count", len(s.tasks)).Debug("Saved tasks")
	return nil
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}

// StatusFilter controls which statuses to include in list results.
type StatusFilter struct {
	Todo       bool
	InProgress bool
	Done       bool
}

// FilterFor returns a filter that matches only status.
func FilterFor(status task.Status) StatusFilter {
	return StatusFilter{
		Todo:       status == task.StatusTodo,
		InProgress: status == task.StatusInProgress,
		Done:       status == task.StatusDone,
	}
}

// ParseStatusFilter converts a list argument such as "in-progress" into a
// filter. An empty label matches everything. An unknown label also yields
// the match-all filter, together with an InvalidStatusFilterError the
// caller should show as a warning.
func ParseStatusFilter(label string) (StatusFilter, error) {
	if label == "" {
		return StatusFilter{}, nil
	}
	status, ok := task.ParseStatus(label)
	if !ok {
		return StatusFilter{}, bitserrors.InvalidStatusFilterError{Value: label}
	}
	return FilterFor(status), nil
}

// Matches returns true if the status should be included.
func (f StatusFilter) Matches(status task.Status) bool {
	// If no filter is set, include all
	if !f.Todo && !f.InProgress && !f.Done {
		return true
	}
	switch status {
	case task.StatusTodo:
		return f.Todo
	case task.StatusInProgress:
		return f.InProgress
	case task.StatusDone:
		return f.Done
	default:
		return false
	}
}
