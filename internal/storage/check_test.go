//nolint:testpackage // Tests require internal access for thorough testing
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
	"github.com/abatilo/tasktracker/internal/task"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("missing file", func(t *testing.T) {
		report, err := Check(filepath.Join(dir, "missing.json"))
		require.NoError(t, err)
		assert.Equal(t, 0, report.Tasks)
		assert.Empty(t, report.Issues)
	})

	t.Run("empty file", func(t *testing.T) {
		report, err := Check(write("empty.json", "\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, report.Tasks)
		assert.Empty(t, report.Issues)
	})

	t.Run("encoded file is clean", func(t *testing.T) {
		data := Encode([]task.Task{
			{ID: 1, Description: "a", Status: task.StatusTodo},
			{ID: 2, Description: "b", Status: task.StatusDone},
		})
		report, err := Check(write("clean.json", string(data)))
		require.NoError(t, err)
		assert.Equal(t, 2, report.Tasks)
		assert.Empty(t, report.Issues)
	})

	t.Run("lenient file has issues", func(t *testing.T) {
		report, err := Check(write("lenient.json", `[{"id":1,"description":"a","status":"in-progress"}]`))
		require.NoError(t, err)
		assert.Equal(t, 1, report.Tasks)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, "[0].status", report.Issues[0].Path)
	})

	t.Run("bare values are not json", func(t *testing.T) {
		report, err := Check(write("bare.json", `[{id: 1, description: a, status: TODO}]`))
		require.NoError(t, err)
		assert.Equal(t, 1, report.Tasks)
		require.Len(t, report.Issues, 1)
		assert.Contains(t, report.Issues[0].Message, "parse task file as JSON")
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := write("corrupt.json", "not json at all")
		_, err := Check(path)
		var corrupt bitserrors.CorruptFileError
		require.ErrorAs(t, err, &corrupt)
		assert.Equal(t, path, corrupt.Path)
	})
}
