package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysusumu13/conda/internal/config"
)

func (a *App) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "현재 설정과 세션 정보를 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInfo(cmd)
		},
	}
}

func (a *App) runInfo(cmd *cobra.Command) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	active := os.Getenv("CONDA_DEFAULT_ENV")
	if active == "" {
		active = "(없음)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "버전:        %s\n", Version)
	fmt.Fprintf(out, "플랫폼:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "설정 파일:   %s\n", a.CfgPath)
	fmt.Fprintf(out, "root prefix: %s\n", cfg.RootPrefix)
	fmt.Fprintf(out, "envs dirs:   %s\n", strings.Join(cfg.EnvsDirs, ", "))
	fmt.Fprintf(out, "활성 환경:   %s\n", active)
	return nil
}
