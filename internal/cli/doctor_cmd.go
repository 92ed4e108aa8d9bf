package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ysusumu13/conda/internal/doctor"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "레지스트리와 세션 상태를 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor()
		},
	}
}

// runDoctor는 진단 결과를 보고만 하고 항상 성공 종료한다. 문제를 찾는 일과
// 고치는 일은 분리한다.
func (a *App) runDoctor() error {
	printDiagResults(doctor.RunAll(a.CfgPath))
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Printf("  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Printf("      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
