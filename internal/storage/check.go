package storage

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
)

// CheckReport summarises an inspection of a task file.
type CheckReport struct {
	Path  string
	Tasks int
	// Issues are places where the file departs from the strict format.
	// The lenient reader still accepts such a file.
	Issues []SchemaIssue
}

// Check reads the task file at path with the lenient decoder and then
// validates it against the strict schema. A file the decoder rejects yields
// a CorruptFileError; schema violations are reported in the CheckReport.
func Check(path string) (CheckReport, error) {
	report := CheckReport{Path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return report, nil
	}
	if err != nil {
		return report, err
	}

	tasks, err := Decode(data)
	if err != nil {
		var corrupt bitserrors.CorruptFileError
		if errors.As(err, &corrupt) {
			corrupt.Path = path
			return report, corrupt
		}
		return report, err
	}
	report.Tasks = len(tasks)

	if strings.TrimSpace(string(data)) == "" {
		return report, nil
	}
	issues, err := ValidateSchema(data)
	if err != nil {
		report.Issues = []SchemaIssue{{Message: err.Error()}}
		return report, nil
	}
	report.Issues = issues
	return report, nil
}
