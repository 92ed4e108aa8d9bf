package cli

import (
	"errors"

	"github.com/ysusumu13/conda/internal/activate"
	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrInvalidEnvironment는 환경 참조가 등록된 환경으로 해석되지 않을 때의 sentinel error다.
	ErrInvalidEnvironment = env.ErrInvalidEnvironment
	// ErrCorruptState는 기록된 세션 상태가 실제 셸 상태와 어긋날 때의 sentinel error다.
	ErrCorruptState = activate.ErrCorruptState
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig

	// ErrTooManyArguments는 명령이 받는 최대 인자 수를 초과했을 때의 sentinel error다.
	ErrTooManyArguments = errors.New("인자가 너무 많습니다")
)
