package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

func (a *App) newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars [ref]",
		Short: "환경에 기록된 세션 변수를 KEY=VALUE로 출력한다",
		Args:  refArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVars(cmd, argOrEmpty(args, 0))
		},
	}
}

// runVars는 셸 hook이 한 줄씩 export할 수 있도록 키를 정렬해 출력한다.
func (a *App) runVars(cmd *cobra.Command, ref string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	e, err := env.Resolve(ref, cfg)
	if err != nil {
		return err
	}

	vars, err := env.ReadStateVars(e.Prefix)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	for _, k := range keys {
		fmt.Fprintf(out, "%s=%s\n", k, vars[k])
	}
	return nil
}
