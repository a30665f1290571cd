package cli

import (
	"errors"

	"github.com/hbjs97/goto/internal/config"
	"github.com/hbjs97/goto/internal/resolver"
	"github.com/hbjs97/goto/internal/settings"
	"github.com/hbjs97/goto/internal/shell"
	"github.com/hbjs97/goto/internal/workdir"
)

// ErrUsage는 인자 개수가 맞지 않을 때의 sentinel error다.
var ErrUsage = errors.New("usage")

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrConfig는 .goto.json 읽기/파싱 오류다.
	ErrConfig = config.ErrConfig
	// ErrSettings는 settings.toml 오류다.
	ErrSettings = settings.ErrSettings
	// ErrNoMatch는 일치하는 프로젝트가 없다는 안내성 결과다.
	ErrNoMatch = resolver.ErrNoMatch
	// ErrDuplicate는 같은 이름의 프로젝트가 둘 이상일 때의 sentinel error다.
	ErrDuplicate = resolver.ErrDuplicate
	// ErrChdir는 디렉토리 이동 실패다.
	ErrChdir = workdir.ErrChdir
	// ErrSpawn는 셸 실행 실패다.
	ErrSpawn = shell.ErrSpawn
	// ErrParentKill는 부모 셸 종료 실패다 (자식 셸은 정리됨).
	ErrParentKill = shell.ErrParentKill
	// ErrUnrecoverable는 부모와 자식 셸 모두 종료 실패다.
	ErrUnrecoverable = shell.ErrUnrecoverable
)
