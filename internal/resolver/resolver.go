package resolver

import (
	"errors"
	"fmt"

	"github.com/hbjs97/goto/internal/config"
)

// ErrNoMatch는 이름이 일치하는 프로젝트가 없을 때 반환된다. 오류가 아닌 안내성 결과다.
var ErrNoMatch = errors.New("no matches found")

// ErrDuplicate는 같은 이름의 프로젝트가 둘 이상일 때 반환된다.
var ErrDuplicate = errors.New("check config file for duplicate keys")

// Outcome은 이름 조회 결과의 분류다.
type Outcome int

const (
	// NoMatch는 일치하는 프로젝트가 없는 경우다.
	NoMatch Outcome = iota
	// Unique는 정확히 하나가 일치하는 경우다.
	Unique
	// Duplicate는 둘 이상이 일치하는 경우다.
	Duplicate
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no_match"
	case Unique:
		return "unique"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Result는 Resolver의 판정 결과다.
type Result struct {
	Matches []config.Project
	Outcome Outcome
}

// Match는 name과 정확히 일치하는(대소문자 구분, 공백 유지) 프로젝트를 설정 순서대로 모두 반환한다.
func Match(cfg *config.Config, name string) []config.Project {
	var matches []config.Project
	for _, p := range cfg.Projects {
		if p.Name == name {
			matches = append(matches, p)
		}
	}
	return matches
}

// Classify는 전체 일치 목록을 분류한다.
func Classify(cfg *config.Config, name string) Result {
	matches := Match(cfg, name)
	switch len(matches) {
	case 0:
		return Result{Outcome: NoMatch}
	case 1:
		return Result{Matches: matches, Outcome: Unique}
	default:
		return Result{Matches: matches, Outcome: Duplicate}
	}
}

// Resolve는 name에 해당하는 유일한 프로젝트를 반환한다.
func Resolve(cfg *config.Config, name string) (*config.Project, error) {
	result := Classify(cfg, name)
	switch result.Outcome {
	case Unique:
		p := result.Matches[0]
		return &p, nil
	case NoMatch:
		return nil, fmt.Errorf("resolver.Resolve: %q: %w", name, ErrNoMatch)
	default:
		return nil, fmt.Errorf("resolver.Resolve: %q matched %d projects: %w", name, len(result.Matches), ErrDuplicate)
	}
}
