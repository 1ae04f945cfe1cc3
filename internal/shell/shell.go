// Package shell dispatches tracker commands against a Store and runs the
// interactive prompt.
package shell

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
	"github.com/abatilo/tasktracker/internal/output"
	"github.com/abatilo/tasktracker/internal/storage"
	"github.com/abatilo/tasktracker/internal/tokenizer"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "> "

// Shell executes commands against a Store and renders their results.
type Shell struct {
	store     *storage.Store
	formatter output.Formatter
	out       io.Writer
	errOut    io.Writer
	prompt    string
	maxLine   int
	log       logrus.FieldLogger
}

// Option configures a Shell.
type Option func(*Shell)

// WithFormatter sets how results and errors are rendered.
func WithFormatter(f output.Formatter) Option {
	return func(s *Shell) {
		s.formatter = f
	}
}

// WithOutput sets the writers for results and for errors.
func WithOutput(out, errOut io.Writer) Option {
	return func(s *Shell) {
		s.out = out
		s.errOut = errOut
	}
}

// WithPrompt sets the prompt string.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Shell) {
		s.log = l
	}
}

// New creates a Shell over store. It writes to stdout and stderr with the
// human formatter unless configured otherwise.
func New(store *storage.Store, opts ...Option) *Shell {
	s := &Shell{
		store:     store,
		formatter: output.NewHumanFormatter(),
		out:       os.Stdout,
		errOut:    os.Stderr,
		prompt:    DefaultPrompt,
		maxLine:   defaultMaxLine,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the rendered outcome of one command.
type Result struct {
	// Output is written to standard output.
	Output string
	// Exit asks the read loop to stop.
	Exit bool
}

// Execute runs the command named by args[0] with the remaining arguments.
// No arguments is a no-op. A returned error is meant for the user; when it
// is a SaveError the command itself took effect and Output still describes
// it.
func (s *Shell) Execute(args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, nil
	}

	name := strings.ToLower(args[0])
	cmd, ok := lookup(name)
	if !ok {
		s.log.WithField("command", name).Debug("Unknown command")
		return Result{}, bitserrors.UnknownCommandError{Name: name}
	}

	s.log.WithFields(logrus.Fields{"command": name, "args": len(args) - 1}).Debug("Dispatching command")
	return cmd.run(s, args[1:])
}

// ExecuteLine tokenizes line and executes it.
func (s *Shell) ExecuteLine(line string) (Result, error) {
	return s.Execute(tokenizer.Split(strings.TrimSpace(line)))
}

// Render writes a command's output and error.
func (s *Shell) Render(res Result, err error) {
	if res.Output != "" {
		s.write(s.out, res.Output)
	}
	if err != nil {
		s.write(s.errOut, s.formatter.FormatError(err))
	}
}

// Warn reports a non-fatal problem, such as a corrupted task file found at
// startup.
func (s *Shell) Warn(err error) {
	s.write(s.errOut, s.formatter.FormatError(err))
}

func (s *Shell) write(w io.Writer, text string) {
	if _, err := io.WriteString(w, text); err != nil {
		s.log.WithField("cause", err).Error("Could not write output")
	}
}
