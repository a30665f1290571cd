package cli

import (
	"errors"
)

// ExitCode는 goto의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다. "no matches found"도 여기에 해당한다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러 및 사용법 오류다.
	ExitGeneral ExitCode = 1
	// ExitChdir는 디렉토리 이동 실패다.
	ExitChdir ExitCode = 2
	// ExitDuplicate는 설정 파일의 중복 프로젝트 이름이다.
	ExitDuplicate ExitCode = 3
	// ExitShell는 셸 실행 실패 또는 부모 셸 종료 실패다.
	ExitShell ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
	// ExitUnrecoverable는 부모와 자식 셸 모두 종료하지 못한 상태다.
	ExitUnrecoverable ExitCode = 6
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrUnrecoverable):
		return ExitUnrecoverable
	case errors.Is(err, ErrUsage):
		return ExitGeneral
	case errors.Is(err, ErrChdir):
		return ExitChdir
	case errors.Is(err, ErrDuplicate):
		return ExitDuplicate
	case errors.Is(err, ErrSpawn), errors.Is(err, ErrParentKill):
		return ExitShell
	case errors.Is(err, ErrConfig), errors.Is(err, ErrSettings):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
