package cli

import (
	"errors"
)

// ExitCode는 conda의 종료 코드다. 셸 hook이 이 코드로 실패 원인을 구분한다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitInvalidEnvironment는 환경 참조 검증 실패다.
	ExitInvalidEnvironment ExitCode = 2
	// ExitCorruptState는 세션 상태 손상이다.
	ExitCorruptState ExitCode = 3
	// ExitTooManyArguments는 초과 인자 거부다.
	ExitTooManyArguments ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrInvalidEnvironment):
		return ExitInvalidEnvironment
	case errors.Is(err, ErrCorruptState):
		return ExitCorruptState
	case errors.Is(err, ErrTooManyArguments):
		return ExitTooManyArguments
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
