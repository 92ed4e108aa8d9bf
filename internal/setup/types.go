package setup

// SetupInput은 설정 마법사에서 사용자 입력 값이다.
type SetupInput struct {
	RootPrefix  string
	EnvsDirs    []string
	EnvPrompt   string
	ChangePS1   bool
	InstallHook bool
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunSetupForm은 설정 입력 폼을 실행한다.
	// defaults가 nil이 아니면 기존 값을 기본값으로 표시한다.
	RunSetupForm(defaults *SetupInput) (*SetupInput, error)

	// RunShellSelect는 hook을 설치할 셸 선택 UI를 표시한다.
	// detected는 미리 선택해둘 셸이며, 건너뛰면 빈 문자열을 반환한다.
	RunShellSelect(detected string) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
