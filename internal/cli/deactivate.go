package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ysusumu13/conda/internal/activate"
	"github.com/ysusumu13/conda/internal/config"
)

func (a *App) newDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate",
		Short: "활성 환경을 해제한 뒤의 PATH 한 줄을 출력한다",
		Args:  refArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeactivate(cmd)
		},
	}
}

// runDeactivate는 활성 환경이 없으면 현재 PATH를 그대로 출력한다. 같은
// 명령을 몇 번을 반복해도 출력은 변하지 않는다.
func (a *App) runDeactivate(cmd *cobra.Command) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	s, err := sessionState(cfg)
	if err != nil {
		return err
	}

	r, err := activate.Deactivate(s)
	if err != nil {
		return err
	}

	a.Log.Debug("비활성화 계산 완료", zap.String("path", r.State.Path))

	fmt.Fprintln(cmd.OutOrStdout(), r.State.Path)
	return nil
}
