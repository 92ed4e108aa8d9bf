package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ysusumu13/conda/internal/activate"
	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

func (a *App) newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate [ref]",
		Short: "환경을 활성화한 뒤의 PATH 한 줄을 출력한다",
		Args:  refArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runActivate(cmd, argOrEmpty(args, 0))
		},
	}
}

// runActivate는 검증, 직전 활성화 해제, 새 세그먼트 prepend를 모두 계산한
// 뒤에야 stdout에 쓴다. 어느 단계에서든 실패하면 출력 없이 반환하므로
// 호출 셸의 상태는 그대로 남는다.
func (a *App) runActivate(cmd *cobra.Command, ref string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	e, err := env.Resolve(ref, cfg)
	if err != nil {
		return err
	}

	s, err := sessionState(cfg)
	if err != nil {
		return err
	}

	r, err := activate.Activate(e, s, s.SavedPrompt, cfg)
	if err != nil {
		return err
	}

	a.Log.Debug("활성화 계산 완료",
		zap.String("name", e.Name),
		zap.String("path", r.State.Path))

	fmt.Fprintln(cmd.OutOrStdout(), r.State.Path)
	return nil
}
