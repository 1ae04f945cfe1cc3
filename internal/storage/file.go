package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
	"github.com/abatilo/tasktracker/internal/task"
)

// ReadFile loads the tasks stored at path. A missing file holds no tasks.
// A file that cannot be parsed yields a CorruptFileError.
func ReadFile(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tasks, err := Decode(data)
	if err != nil {
		var corrupt bitserrors.CorruptFileError
		if errors.As(err, &corrupt) {
			corrupt.Path = path
			return nil, corrupt
		}
		return nil, err
	}
	return tasks, nil
}

// defaultFileMode is used when the task file does not exist yet.
const defaultFileMode fs.FileMode = 0o644

// WriteFile replaces the file at path with the encoded tasks. The data is
// written to a temporary file in the same directory and renamed into place,
// so an interrupted write leaves the previous contents intact. An existing
// file keeps its permission bits.
func WriteFile(path string, tasks []task.Task) (err error) {
	mode := defaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(Encode(tasks)); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
