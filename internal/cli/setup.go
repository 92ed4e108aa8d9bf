package cli

import (
	"github.com/spf13/cobra"

	"github.com/ysusumu13/conda/internal/setup"
)

func (a *App) newSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "대화형 초기 설정을 시작한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &setup.Runner{
				CfgPath:    a.CfgPath,
				FormRunner: &setup.HuhFormRunner{},
				Force:      force,
			}
			return r.Run()
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정이 있어도 확인 없이 다시 구성")
	return cmd
}
