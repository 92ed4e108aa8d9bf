package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ysusumu13/conda/internal/shell"
)

// shellFlag은 --shell 값을 파싱 시점에 검증하는 pflag.Value다.
type shellFlag string

var _ pflag.Value = (*shellFlag)(nil)

func (s *shellFlag) String() string { return string(*s) }

func (s *shellFlag) Set(v string) error {
	if shell.Hook(v) == "" {
		return fmt.Errorf("지원하지 않는 셸: %s", v)
	}
	*s = shellFlag(v)
	return nil
}

func (s *shellFlag) Type() string { return "string" }

func (a *App) newHookCmd() *cobra.Command {
	sh := shellFlag("bash")

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "셸에 eval할 conda 래퍼 함수를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), shell.Hook(string(sh)))
			return nil
		},
	}
	cmd.Flags().Var(&sh, "shell", "셸 유형 (bash, zsh, fish)")
	return cmd
}
