package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ysusumu13/conda/internal/activate"
	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

func (a *App) newSetPS1Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setps1 <ref> <현재 프롬프트>",
		Short: "환경 태그를 붙인 프롬프트 한 줄을 출력한다",
		Args:  setPS1Args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetPS1(cmd, args[0], args[1])
		},
	}
}

// setPS1Args는 정확히 2개 인자를 요구한다. 초과는 다른 ref 명령과 같은
// 이유로 ErrTooManyArguments, 부족은 일반 에러다.
func setPS1Args(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("cli.setps1: %w: 최대 2개, %d개를 받았습니다",
			ErrTooManyArguments, len(args))
	}
	if len(args) < 2 {
		return fmt.Errorf("cli.setps1: ref와 현재 프롬프트 2개 인자가 필요합니다")
	}
	return nil
}

// runSetPS1은 프롬프트 장식을 PATH 교체와 분리된 경로로 제공한다. 셸 hook이
// PS1을 넘겨주는 이유는 PS1이 export되지 않아 이 프로세스에서 보이지 않기
// 때문이다.
func (a *App) runSetPS1(cmd *cobra.Command, ref, current string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	e, err := env.Resolve(ref, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), activate.PromptFor(e, current, cfg))
	return nil
}
