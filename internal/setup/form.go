package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunSetupForm은 설정 입력 폼을 실행한다.
func (h *HuhFormRunner) RunSetupForm(defaults *SetupInput) (*SetupInput, error) {
	input := &SetupInput{}
	if defaults != nil {
		*input = *defaults
	}
	envsDirs := strings.Join(input.EnvsDirs, ", ")

	promptValidate := func(s string) error {
		if strings.Count(s, "{") != strings.Count(s, "}") {
			return fmt.Errorf("중괄호 짝이 맞지 않습니다")
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("루트 prefix").
			Description("base 환경이 위치할 디렉토리").
			Value(&input.RootPrefix).
			Validate(huh.ValidateNotEmpty()),
		huh.NewInput().Title("환경 디렉토리 (콤마 구분)").
			Description("이름으로 참조하는 환경을 찾는 디렉토리 목록").
			Value(&envsDirs),
		huh.NewInput().Title("프롬프트 템플릿").
			Description("{default_env}, {name}, {prefix} placeholder 사용 가능").
			Value(&input.EnvPrompt).
			Validate(promptValidate),
		huh.NewConfirm().Title("활성화 시 프롬프트를 변경할까요?").Value(&input.ChangePS1),
		huh.NewConfirm().Title("셸 hook을 설치할까요?").Value(&input.InstallHook),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunSetupForm: %w", err)
	}

	input.EnvsDirs = nil
	for _, d := range strings.Split(envsDirs, ",") {
		d = strings.TrimSpace(d)
		if d != "" {
			input.EnvsDirs = append(input.EnvsDirs, d)
		}
	}
	return input, nil
}

// RunShellSelect는 셸 선택 UI를 표시한다.
func (h *HuhFormRunner) RunShellSelect(detected string) (string, error) {
	selected := detected
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("hook을 설치할 셸을 선택하세요").
			Options(
				huh.NewOption("bash", "bash"),
				huh.NewOption("zsh", "zsh"),
				huh.NewOption("fish", "fish"),
				huh.NewOption("건너뛰기", ""),
			).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunShellSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
