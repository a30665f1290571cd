package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrSettings는 설정 파일 오류를 나타내는 sentinel error다.
var ErrSettings = errors.New("settings error")

// ReplaceMode는 셸 교체 방식이다.
type ReplaceMode string

const (
	// ModeExec는 현재 프로세스 이미지를 새 셸로 교체한다.
	ModeExec ReplaceMode = "exec"
	// ModeSpawn은 자식 셸을 띄운 뒤 부모 프로세스를 종료한다.
	ModeSpawn ReplaceMode = "spawn"
)

// DefaultShell은 SHELL과 default_shell이 모두 비어 있을 때 사용하는 셸이다.
const DefaultShell = "bash"

// Settings는 사용자 설정 파일(settings.toml)의 최상위 구조체다.
type Settings struct {
	DefaultShell  string      `toml:"default_shell"`
	ReplaceMode   ReplaceMode `toml:"replace_mode"`
	ConfirmDelete *bool       `toml:"confirm_delete"`
}

// DefaultPath는 ~/.config/goto/settings.toml을 반환한다.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.toml"
	}
	return filepath.Join(home, ".config", "goto", "settings.toml")
}

// Defaults는 파일이 없을 때의 설정을 반환한다.
func Defaults() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// Load는 settings.toml을 파싱한다. 파일이 없으면 기본값을 반환한다 (graceful).
func Load(path string) (*Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("settings.Load: %w: %w", ErrSettings, err)
	}
	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// IsConfirmDelete는 confirm_delete 설정값을 반환한다.
func (s *Settings) IsConfirmDelete() bool {
	if s.ConfirmDelete == nil {
		return true
	}
	return *s.ConfirmDelete
}

func (s *Settings) applyDefaults() {
	if s.DefaultShell == "" {
		s.DefaultShell = DefaultShell
	}
	if s.ReplaceMode == "" {
		s.ReplaceMode = ModeExec
	}
	if s.ConfirmDelete == nil {
		t := true
		s.ConfirmDelete = &t
	}
}

func (s *Settings) validate() error {
	switch s.ReplaceMode {
	case ModeExec, ModeSpawn:
		return nil
	default:
		return fmt.Errorf("settings.Load: %w: replace_mode must be %q or %q, got %q",
			ErrSettings, ModeExec, ModeSpawn, s.ReplaceMode)
	}
}
