package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// XDGDirs are the isolated base directories set by IsolateXDG
type XDGDirs struct {
	ConfigHome string
	StateHome  string
}

// IsolateXDG points the XDG config and state directories at fresh
// temporary directories for the duration of the test.
func IsolateXDG(t *testing.T) XDGDirs {
	t.Helper()

	root := t.TempDir()
	dirs := XDGDirs{
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
	}
	t.Setenv("XDG_CONFIG_HOME", dirs.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "system"))
	t.Setenv("XDG_STATE_HOME", dirs.StateHome)
	return dirs
}
