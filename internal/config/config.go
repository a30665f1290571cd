package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile은 현재 디렉토리 기준 프로젝트 설정 파일 이름이다.
const DefaultFile = ".goto.json"

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

// ErrRead는 설정 파일을 읽을 수 없을 때 반환된다.
var ErrRead = fmt.Errorf("%w: read failed", ErrConfig)

// ErrParse는 설정 파일이 JSON이 아니거나 스키마가 맞지 않을 때 반환된다.
var ErrParse = fmt.Errorf("%w: parse failed", ErrConfig)

// Config는 .goto.json의 최상위 구조체다. projects 순서는 파일 순서를 따른다.
type Config struct {
	Projects []Project `json:"projects"`
}

// Project는 이름 붙은 하나의 경로다.
type Project struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// rawConfig는 필수 필드 누락을 감지하기 위한 디코딩 전용 구조체다.
type rawConfig struct {
	Projects *[]rawProject `json:"projects"`
}

type rawProject struct {
	Name *string `json:"name"`
	Path *string `json:"path"`
}

// Load는 path의 JSON 파일을 읽어 Config를 반환한다.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrRead, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse는 JSON 문서를 Config로 디코딩한다. projects, name, path는 모두 필수다.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if raw.Projects == nil {
		return nil, fmt.Errorf("%w: projects field required", ErrParse)
	}

	cfg := &Config{Projects: make([]Project, 0, len(*raw.Projects))}
	for i, p := range *raw.Projects {
		if p.Name == nil {
			return nil, fmt.Errorf("%w: projects[%d].name required", ErrParse, i)
		}
		if p.Path == nil {
			return nil, fmt.Errorf("%w: projects[%d].path required", ErrParse, i)
		}
		cfg.Projects = append(cfg.Projects, Project{Name: *p.Name, Path: *p.Path})
	}
	return cfg, nil
}

// Save는 Config를 JSON 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	out := *cfg
	if out.Projects == nil {
		out.Projects = []Project{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}
