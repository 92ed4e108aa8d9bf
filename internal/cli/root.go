package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App은 CLI 명령 전체가 공유하는 의존성을 담는다.
type App struct {
	// CfgPath는 설정 파일 경로다. --config flag로 덮어쓴다.
	CfgPath string
	// Log는 구조화 로거다. nil이면 PersistentPreRunE에서 생성한다.
	Log *zap.Logger
}

// NewApp은 기본 경로를 채운 App을 생성한다.
func NewApp() *App {
	return &App{
		CfgPath: filepath.Join(homeDir(), ".config", "conda", "config.toml"),
	}
}

// NewRootCmd는 conda CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "conda",
		Short:        "환경 활성화 엔진",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.Log != nil {
				return nil
			}
			zcfg := zap.NewProductionConfig()
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			log, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("cli.root: 로거 초기화 실패: %w", err)
			}
			a.Log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.Log != nil {
				_ = a.Log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug 로그 출력")

	cmd.AddCommand(
		a.newCheckenvCmd(),
		a.newActivateCmd(),
		a.newDeactivateCmd(),
		a.newSetPS1Cmd(),
		a.newVarsCmd(),
		a.newEnvsCmd(),
		a.newInfoCmd(),
		a.newHookCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
		a.newVersionCmd(),
	)
	return cmd
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// refArgs는 위치 인자를 최대 max개까지 허용하는 cobra Args 함수를 만든다.
// 초과분은 조용히 버리지 않고 ErrTooManyArguments로 거부한다. 셸 hook이
// 인자를 그대로 전달하므로 오타가 엉뚱한 환경 활성화로 이어지지 않게 한다.
func refArgs(max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > max {
			return fmt.Errorf("cli.%s: %w: 최대 %d개, %d개를 받았습니다",
				cmd.Name(), ErrTooManyArguments, max, len(args))
		}
		return nil
	}
}
