package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/goto/internal/settings"
	"github.com/hbjs97/goto/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := settings.Load(filepath.Join(t.TempDir(), "settings.toml"))

	require.NoError(t, err)
	assert.Equal(t, "bash", s.DefaultShell)
	assert.Equal(t, settings.ModeExec, s.ReplaceMode)
	assert.True(t, s.IsConfirmDelete())
}

func TestLoadSettings_Valid(t *testing.T) {
	path := testutil.TempSettingsFile(t, `default_shell = "zsh"
replace_mode = "spawn"
confirm_delete = false
`)
	s, err := settings.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "zsh", s.DefaultShell)
	assert.Equal(t, settings.ModeSpawn, s.ReplaceMode)
	assert.False(t, s.IsConfirmDelete())
}

func TestLoadSettings_PartialAppliesDefaults(t *testing.T) {
	path := testutil.TempSettingsFile(t, `default_shell = "fish"`)
	s, err := settings.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "fish", s.DefaultShell)
	assert.Equal(t, settings.ModeExec, s.ReplaceMode)
	assert.True(t, s.IsConfirmDelete())
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid toml", "default_shell = [[["},
		{"unknown mode", `replace_mode = "fork"`},
		{"wrong type", `confirm_delete = "yes"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempSettingsFile(t, tt.content)
			_, err := settings.Load(path)
			assert.ErrorIs(t, err, settings.ErrSettings)
		})
	}
}

func TestIsConfirmDelete_NilMeansTrue(t *testing.T) {
	s := &settings.Settings{}
	assert.True(t, s.IsConfirmDelete())
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "goto", "settings.toml"), settings.DefaultPath())
}
