// Package testutil provides common test helpers for the goto project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary .goto.json with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, ".goto.json")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempSettingsFile creates a temporary settings.toml with the given content
// and returns its path.
func TempSettingsFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempSettingsFile: write failed: %v", err)
	}

	return path
}

// TempProjectDirs creates one temporary directory per name and returns
// a map of name to absolute path.
func TempProjectDirs(t *testing.T, names ...string) map[string]string {
	t.Helper()

	root := t.TempDir()
	dirs := make(map[string]string, len(names))
	for _, name := range names {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0700); err != nil {
			t.Fatalf("TempProjectDirs: mkdir failed: %v", err)
		}
		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			t.Fatalf("TempProjectDirs: resolve failed: %v", err)
		}
		dirs[name] = resolved
	}

	return dirs
}

// ReadFile reads the file at path and fails the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: read failed: %v", err)
	}

	return string(data)
}

// Chdir changes the working directory to dir for the duration of the test,
// restoring the previous directory (and PWD) on cleanup. It mirrors
// testing.T.Chdir, which is unavailable before Go 1.24.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Chdir: getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: chdir failed: %v", err)
	}

	absDir := dir
	if !filepath.IsAbs(absDir) {
		absDir = filepath.Join(oldwd, dir)
	}
	t.Setenv("PWD", absDir)

	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testutil.Chdir: restore failed: " + err.Error())
		}
	})
}
