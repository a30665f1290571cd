package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrExists는 같은 이름의 프로젝트가 이미 등록되어 있을 때 반환된다.
var ErrExists = errors.New("project already exists")

// ErrNotFound는 이름에 해당하는 프로젝트가 없을 때 반환된다.
var ErrNotFound = errors.New("project does not exist")

// ErrNotDir는 등록하려는 경로가 디렉토리가 아닐 때 반환된다.
var ErrNotDir = errors.New("does not exist or is not a directory")

// LoadOrEmpty는 설정 파일이 없으면 빈 Config를 반환한다. 그 외 오류는 Load와 같다.
func LoadOrEmpty(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{Projects: []Project{}}, nil
	}
	return cfg, err
}

// Add는 프로젝트를 추가한다. path는 ~ 확장 후 절대 경로로 정규화되며 존재하는 디렉토리여야 한다.
func (c *Config) Add(name, path string) (Project, error) {
	for _, p := range c.Projects {
		if p.Name == name {
			return Project{}, fmt.Errorf("config.Add: %q: %w", name, ErrExists)
		}
	}

	full, err := NormalizePath(path)
	if err != nil {
		return Project{}, fmt.Errorf("config.Add: %w", err)
	}
	info, err := os.Stat(full)
	if err != nil || !info.IsDir() {
		return Project{}, fmt.Errorf("config.Add: %q %w", full, ErrNotDir)
	}

	p := Project{Name: name, Path: full}
	c.Projects = append(c.Projects, p)
	return p, nil
}

// Remove는 이름이 일치하는 모든 항목을 제거한다.
func (c *Config) Remove(name string) error {
	kept := c.Projects[:0]
	removed := 0
	for _, p := range c.Projects {
		if p.Name == name {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return fmt.Errorf("config.Remove: %q: %w", name, ErrNotFound)
	}
	c.Projects = kept
	return nil
}

// Sorted는 이름순으로 정렬된 복사본을 반환한다.
func (c *Config) Sorted() []Project {
	out := make([]Project, len(c.Projects))
	copy(out, c.Projects)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// NormalizePath는 ~를 홈 디렉토리로 확장하고 절대 경로로 변환한다.
func NormalizePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config.NormalizePath: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("config.NormalizePath: %w", err)
	}
	return abs, nil
}
