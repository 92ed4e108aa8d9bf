package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/doctor"
)

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath    string
	FormRunner FormRunner
	Force      bool   // 기존 설정이 있어도 확인 없이 다시 구성한다.
	RCPath     string // 테스트용. 비어있으면 셸별 기본 경로.
}

// Run은 setup 플로우를 실행한다.
func (r *Runner) Run() error {
	_, err := os.Stat(r.CfgPath)
	if os.IsNotExist(err) {
		return r.runFirstTime()
	}
	if err != nil {
		return fmt.Errorf("setup.Run: %w", err)
	}
	return r.runExisting()
}

func (r *Runner) runFirstTime() error {
	fmt.Println("conda 초기 설정을 시작합니다.")

	cfg, err := config.Load(r.CfgPath) // 파일이 없으므로 기본값
	if err != nil {
		return err
	}
	return r.collectAndSave(cfg)
}

// runExisting는 기존 설정이 있을 때의 재구성 플로우다.
func (r *Runner) runExisting() error {
	cfg, err := config.Load(r.CfgPath)
	if err != nil {
		return err
	}

	fmt.Println("기존 설정:")
	fmt.Printf("  root_prefix: %s\n", cfg.RootPrefix)
	fmt.Printf("  envs_dirs:   %s\n", strings.Join(cfg.EnvsDirs, ", "))
	fmt.Printf("  env_prompt:  %s\n", cfg.EnvPrompt)

	if !r.Force {
		confirmed, err := r.FormRunner.RunConfirm("기존 설정을 다시 구성하시겠습니까?")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("설정이 취소되었습니다.")
			return nil
		}
	}
	return r.collectAndSave(cfg)
}

func (r *Runner) collectAndSave(cfg *config.Config) error {
	defaults := &SetupInput{
		RootPrefix: cfg.RootPrefix,
		EnvsDirs:   cfg.EnvsDirs,
		EnvPrompt:  cfg.EnvPrompt,
		ChangePS1:  cfg.IsChangePS1(),
	}

	input, err := r.FormRunner.RunSetupForm(defaults)
	if err != nil {
		return err
	}

	cfg.RootPrefix = config.ExpandPath(input.RootPrefix)
	cfg.EnvsDirs = nil
	for _, d := range input.EnvsDirs {
		cfg.EnvsDirs = append(cfg.EnvsDirs, config.ExpandPath(d))
	}
	if len(cfg.EnvsDirs) == 0 {
		cfg.EnvsDirs = []string{filepath.Join(cfg.RootPrefix, "envs")}
	}
	cfg.EnvPrompt = input.EnvPrompt
	changePS1 := input.ChangePS1
	cfg.ChangePS1 = &changePS1

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Printf("설정 파일이 저장되었습니다: %s\n", r.CfgPath)

	if err := r.scaffold(cfg); err != nil {
		return err
	}

	if input.InstallHook {
		r.installHook()
	}

	r.runDoctor()
	return nil
}

// scaffold는 루트 prefix와 환경 디렉토리 뼈대를 만든다. base 환경은
// conda-meta 마커가 있어야 checkenv를 통과한다.
func (r *Runner) scaffold(cfg *config.Config) error {
	dirs := []string{
		filepath.Join(cfg.RootPrefix, "conda-meta"),
		filepath.Join(cfg.RootPrefix, "bin"),
	}
	dirs = append(dirs, cfg.EnvsDirs...)
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return fmt.Errorf("setup.scaffold: %w", err)
		}
	}
	return nil
}

func (r *Runner) installHook() {
	shellType, err := r.FormRunner.RunShellSelect(DetectShell())
	if err != nil || shellType == "" {
		return
	}

	rcPath := r.RCPath
	if rcPath == "" {
		rcPath = ShellRCPath(shellType)
	}
	if rcPath == "" {
		return
	}

	if err := InstallShellHook(shellType, rcPath); err != nil {
		fmt.Fprintf(os.Stderr, "경고: 셸 hook 설치 실패: %v\n", err)
		return
	}
	fmt.Printf("셸 hook이 설치되었습니다: %s\n", rcPath)
}

// runDoctor는 설정 완료 후 레지스트리 진단을 실행한다.
func (r *Runner) runDoctor() {
	fmt.Println("\n레지스트리 진단 실행 중...")
	for _, res := range doctor.RunAll(r.CfgPath) {
		icon := "✓"
		if res.Status == doctor.StatusFail {
			icon = "✗"
		} else if res.Status == doctor.StatusWarn {
			icon = "!"
		}
		fmt.Printf("  [%s] %s: %s\n", icon, res.Name, res.Message)
		if res.Fix != "" {
			fmt.Printf("      Fix: %s\n", res.Fix)
		}
	}
}
