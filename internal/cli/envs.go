package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

func (a *App) newEnvsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "레지스트리의 환경 목록을 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEnvs(cmd)
		},
	}
}

func (a *App) runEnvs(cmd *cobra.Command) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	// 경로 참조로 활성화했다면 CONDA_DEFAULT_ENV에 경로가 들어 있다.
	active := os.Getenv("CONDA_DEFAULT_ENV")
	activePrefix := config.ExpandPath(active)

	out := cmd.OutOrStdout()
	for _, e := range env.List(cfg) {
		marker := " "
		if active != "" && (e.Name == active || e.Prefix == activePrefix) {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-20s %s\n", marker, e.Name, e.Prefix)
	}
	return nil
}
