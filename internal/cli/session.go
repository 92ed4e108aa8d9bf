package cli

import (
	"fmt"
	"os"

	"github.com/ysusumu13/conda/internal/activate"
	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

// sessionState는 셸 hook이 내보낸 환경변수에서 세션 상태를 재구성한다.
// CONDA_DEFAULT_ENV가 비어 있으면 활성 환경이 없는 상태다. 이름만 있고
// CONDA_PREFIX가 없으면 레지스트리에서 prefix를 다시 해석해 보고, 그마저
// 실패하면 활성 환경의 세그먼트를 특정할 수 없으므로 ErrCorruptState다.
func sessionState(cfg *config.Config) (activate.State, error) {
	s := activate.State{
		Path:        os.Getenv("PATH"),
		SavedPrompt: os.Getenv("CONDA_OLD_PS1"),
	}

	name := os.Getenv("CONDA_DEFAULT_ENV")
	if name == "" {
		return s, nil
	}

	prefix := os.Getenv("CONDA_PREFIX")
	if prefix == "" {
		e, err := env.Resolve(name, cfg)
		if err != nil {
			return activate.State{}, fmt.Errorf(
				"cli.session: %w: 활성 환경 %q의 prefix를 복원할 수 없습니다",
				activate.ErrCorruptState, name)
		}
		prefix = e.Prefix
	}

	s.Active = &activate.ActiveEnv{Name: name, Prefix: prefix}
	return s, nil
}
