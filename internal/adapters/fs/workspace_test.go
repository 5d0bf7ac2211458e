package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/fs"
)

func TestWorkspace_ScopedRemovesDirectory(t *testing.T) {
	ws := fs.NewWorkspace(t.TempDir())

	var seen string
	err := ws.Scoped(context.Background(), func(_ context.Context, dir string) error {
		seen = dir
		require.NoError(t, ws.Write(dir, "requirements/base.in", "django\n"))
		content, err := ws.Read(dir, "requirements/base.in")
		require.NoError(t, err)
		assert.Equal(t, "django\n", content)
		return nil
	})
	require.NoError(t, err)

	_, statErr := os.Stat(seen)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkspace_ScopedRemovesDirectoryOnError(t *testing.T) {
	ws := fs.NewWorkspace(t.TempDir())
	boom := errors.New("boom")

	var seen string
	err := ws.Scoped(context.Background(), func(_ context.Context, dir string) error {
		seen = dir
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(seen)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkspace_Remove(t *testing.T) {
	dir := t.TempDir()
	ws := fs.NewWorkspace("")

	require.NoError(t, ws.Write(dir, ".python-version", "3.11.9\n"))
	require.NoError(t, ws.Remove(dir, ".python-version"))
	require.NoError(t, ws.Remove(dir, ".python-version"))

	_, err := os.Stat(filepath.Join(dir, ".python-version"))
	assert.True(t, os.IsNotExist(err))
}

func TestWorkspace_RejectsEscapingNames(t *testing.T) {
	ws := fs.NewWorkspace("")
	dir := t.TempDir()

	require.Error(t, ws.Write(dir, "../outside.txt", "x"))
	_, err := ws.Read(dir, "../../etc/passwd")
	require.Error(t, err)
}
