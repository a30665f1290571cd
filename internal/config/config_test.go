package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/goto/internal/config"
	"github.com/hbjs97/goto/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
	"projects": [
		{"name": "api", "path": "/srv/api"},
		{"name": "web", "path": "/srv/web"},
		{"name": "docs", "path": "~/docs"}
	]
}`
	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	require.Len(t, cfg.Projects, 3)
	// 파일 순서 보존
	assert.Equal(t, config.Project{Name: "api", Path: "/srv/api"}, cfg.Projects[0])
	assert.Equal(t, config.Project{Name: "web", Path: "/srv/web"}, cfg.Projects[1])
	assert.Equal(t, config.Project{Name: "docs", Path: "~/docs"}, cfg.Projects[2])
}

func TestLoadConfig_EmptyProjects(t *testing.T) {
	path := testutil.TempConfigFile(t, `{"projects":[]}`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.Projects)
}

func TestLoadConfig_UnknownFieldsIgnored(t *testing.T) {
	path := testutil.TempConfigFile(t, `{"version": 2, "projects":[{"name":"a","path":"/a","tags":["x"]}]}`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []config.Project{{Name: "a", Path: "/a"}}, cfg.Projects)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrRead)
	assert.ErrorIs(t, err, config.ErrConfig)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, config.ErrParse)
}

func TestLoadConfig_Directory(t *testing.T) {
	_, err := config.Load(t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrRead)
}

func TestLoadConfig_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json {{{"},
		{"empty file", ""},
		{"trailing garbage", `{"projects":[]} extra`},
		{"missing projects", `{}`},
		{"null projects", `{"projects": null}`},
		{"projects not array", `{"projects": {"api": "/srv/api"}}`},
		{"missing name", `{"projects":[{"path":"/a"}]}`},
		{"missing path", `{"projects":[{"name":"a"}]}`},
		{"null entry", `{"projects":[null]}`},
		{"name not string", `{"projects":[{"name":1,"path":"/a"}]}`},
		{"path not string", `{"projects":[{"name":"a","path":["/a"]}]}`},
		{"top level array", `[{"name":"a","path":"/a"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.content)
			cfg, err := config.Load(path)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, config.ErrParse)
			assert.ErrorIs(t, err, config.ErrConfig)
			assert.NotErrorIs(t, err, config.ErrRead)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".goto.json")
	cfg := &config.Config{Projects: []config.Project{
		{Name: "web", Path: "/srv/web"},
		{Name: "api", Path: "/srv/api"},
	}}

	require.NoError(t, config.Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Projects, loaded.Projects)
}

func TestSave_NilProjectsWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".goto.json")

	require.NoError(t, config.Save(path, &config.Config{}))

	assert.Contains(t, testutil.ReadFile(t, path), `"projects": []`)
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Projects)
}

func TestLoadOrEmpty(t *testing.T) {
	cfg, err := config.LoadOrEmpty(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Projects)

	bad := testutil.TempConfigFile(t, "{")
	_, err = config.LoadOrEmpty(bad)
	assert.True(t, errors.Is(err, config.ErrParse))
}
