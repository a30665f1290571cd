package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/goto/internal/config"
	"github.com/hbjs97/goto/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_NormalizesPath(t *testing.T) {
	dirs := testutil.TempProjectDirs(t, "api")
	cfg := &config.Config{}

	p, err := cfg.Add("api", dirs["api"]+"/../api")

	require.NoError(t, err)
	assert.Equal(t, "api", p.Name)
	assert.Equal(t, dirs["api"], p.Path)
	assert.Equal(t, []config.Project{p}, cfg.Projects)
}

func TestAdd_RelativePath(t *testing.T) {
	dirs := testutil.TempProjectDirs(t, "web")
	testutil.Chdir(t, filepath.Dir(dirs["web"]))
	cfg := &config.Config{}

	p, err := cfg.Add("web", "web")

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p.Path))
	assert.Equal(t, "web", filepath.Base(p.Path))
}

func TestAdd_DuplicateName(t *testing.T) {
	dirs := testutil.TempProjectDirs(t, "api")
	cfg := &config.Config{Projects: []config.Project{{Name: "api", Path: "/srv/api"}}}

	_, err := cfg.Add("api", dirs["api"])

	assert.ErrorIs(t, err, config.ErrExists)
	assert.Len(t, cfg.Projects, 1)
}

func TestAdd_InvalidPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing")},
		{"regular file", file},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			_, err := cfg.Add("x", tt.path)
			assert.ErrorIs(t, err, config.ErrNotDir)
			assert.Empty(t, cfg.Projects)
		})
	}
}

func TestRemove(t *testing.T) {
	cfg := &config.Config{Projects: []config.Project{
		{Name: "api", Path: "/a"},
		{Name: "web", Path: "/w"},
		{Name: "api", Path: "/b"},
	}}

	require.NoError(t, cfg.Remove("api"))
	assert.Equal(t, []config.Project{{Name: "web", Path: "/w"}}, cfg.Projects)
}

func TestRemove_NotFound(t *testing.T) {
	cfg := &config.Config{Projects: []config.Project{{Name: "web", Path: "/w"}}}

	err := cfg.Remove("api")

	assert.ErrorIs(t, err, config.ErrNotFound)
	assert.Len(t, cfg.Projects, 1)
}

func TestSorted(t *testing.T) {
	cfg := &config.Config{Projects: []config.Project{
		{Name: "web", Path: "/w"},
		{Name: "api", Path: "/a"},
		{Name: "docs", Path: "/d"},
	}}

	sorted := cfg.Sorted()

	assert.Equal(t, []string{"api", "docs", "web"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})
	// 원본 순서는 유지
	assert.Equal(t, "web", cfg.Projects[0].Name)
}

func TestNormalizePath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.NormalizePath("~/code")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "code"), got)

	got, err = config.NormalizePath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)
}
