package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is the task file name used when none is configured.
const DefaultFile = "tasks.json"

// ResolvePath anchors a task file path to the current working directory.
// An empty name selects DefaultFile. It fails only when the working
// directory itself cannot be determined.
func ResolvePath(name string) (string, error) {
	if name == "" {
		name = DefaultFile
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return filepath.Join(cwd, name), nil
}
