package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

func (a *App) newCheckenvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkenv [ref]",
		Short: "환경 참조가 유효한지 종료 코드로만 보고한다",
		Args:  refArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheckenv(argOrEmpty(args, 0))
		},
	}
}

// runCheckenv는 stdout에 아무것도 쓰지 않는다. 성공이면 종료 코드 0,
// 실패면 sentinel error가 MapExitCode를 거쳐 원인별 코드가 된다.
func (a *App) runCheckenv(ref string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	e, err := env.Resolve(ref, cfg)
	if err != nil {
		return err
	}

	a.Log.Debug("환경 검증 통과",
		zap.String("name", e.Name),
		zap.String("prefix", e.Prefix))
	return nil
}
