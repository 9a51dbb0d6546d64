package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, filepath.Join("nested", "note.txt"), "hello")

	assert.Equal(t, filepath.Join(dir, "nested", "note.txt"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestIsolateXDG(t *testing.T) {
	dirs := IsolateXDG(t)

	assert.Equal(t, dirs.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
	assert.Equal(t, dirs.StateHome, os.Getenv("XDG_STATE_HOME"))
	assert.NotEqual(t, dirs.ConfigHome, dirs.StateHome)
}
