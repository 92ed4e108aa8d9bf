package activate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

// ErrCorruptState는 기록된 활성 환경의 PATH 세그먼트가 현재 PATH에서
// 발견되지 않을 때의 sentinel error다. 외부 변조 신호이므로 자동 복구하지
// 않는다.
var ErrCorruptState = errors.New("세션 상태 손상")

// ActiveEnv는 세션에 기록된 활성 환경이다.
type ActiveEnv struct {
	Name   string
	Prefix string
}

// State는 호출 셸이 소유한 세션 상태 3요소다. 엔진은 읽기만 하고
// 교체값을 반환할 뿐, 호출자의 프로세스 환경을 직접 바꾸지 않는다.
type State struct {
	// Active는 활성 환경이다. nil이면 아무것도 활성화되지 않은 상태다.
	Active *ActiveEnv
	// Path는 현재 PATH 값이다.
	Path string
	// SavedPrompt는 가장 최근 활성화 직전에 기록된 프롬프트다.
	SavedPrompt string
}

// Result는 엔진이 제안하는 교체 상태다.
type Result struct {
	// State는 세션에 적용될 새 상태다.
	State State
	// Prompt는 셸이 적용할 프롬프트다. Deactivate에서는 복원될 저장
	// 프롬프트(활성 환경이 없었다면 빈 문자열), Activate에서는 태그가
	// 붙은 새 프롬프트다.
	Prompt string
}

// Deactivate는 직전 활성화를 되돌린다. 활성 환경이 없으면 상태를 그대로
// 반환하는 no-op이다 (멱등). 활성 환경의 bin 디렉토리는 모든 출현을
// 제거하며, 기대한 세그먼트가 하나도 없으면 ErrCorruptState로 실패하고
// 호출자 상태는 건드리지 않는다.
func Deactivate(s State) (Result, error) {
	if s.Active == nil {
		return Result{State: s}, nil
	}

	expected := env.BinDirsFor(s.Active.Prefix)
	cleaned, missing := removeSegments(s.Path, expected)
	if len(missing) > 0 {
		return Result{}, fmt.Errorf(
			"activate.Deactivate: %w: %s의 세그먼트가 PATH에 없습니다 (기대: %s, 현재: %s)",
			ErrCorruptState, s.Active.Name, strings.Join(missing, ", "), s.Path)
	}

	return Result{
		State:  State{Active: nil, Path: cleaned, SavedPrompt: ""},
		Prompt: s.SavedPrompt,
	}, nil
}

// Activate는 검증된 환경을 활성화한다. 같은 환경을 다시 활성화해도 전체
// deactivate→prepend 체인을 그대로 거친다. prompt는 호출 시점의 현재
// 프롬프트로, 직전 활성화가 없을 때 SavedPrompt로 기록된다.
func Activate(e *env.Environment, s State, prompt string, cfg *config.Config) (Result, error) {
	if e == nil {
		return Result{}, fmt.Errorf("activate.Activate: %w: 환경이 해석되지 않았습니다", env.ErrInvalidEnvironment)
	}

	d, err := Deactivate(s)
	if err != nil {
		return Result{}, err
	}

	// 태그의 기준이 되는 활성화 이전 프롬프트. 직전 활성화가 있었다면
	// 그때 저장된 값으로 되돌린 뒤에 새 태그를 붙인다.
	pre := prompt
	if s.Active != nil {
		pre = d.Prompt
	}

	sep := string(os.PathListSeparator)
	newPath := strings.Join(e.BinDirs, sep)
	if d.State.Path != "" {
		newPath += sep + d.State.Path
	}

	return Result{
		State: State{
			Active:      &ActiveEnv{Name: e.Name, Prefix: e.Prefix},
			Path:        newPath,
			SavedPrompt: pre,
		},
		Prompt: PromptFor(e, pre, cfg),
	}, nil
}

// removeSegments는 PATH에서 expected 각 항목의 모든 출현을 제거한다.
// 한 번도 나타나지 않은 항목은 missing으로 보고한다.
func removeSegments(path string, expected []string) (cleaned string, missing []string) {
	found := make(map[string]bool, len(expected))
	for _, d := range expected {
		found[filepath.Clean(d)] = false
	}

	var kept []string
	for _, seg := range filepath.SplitList(path) {
		c := filepath.Clean(seg)
		if _, ok := found[c]; ok {
			found[c] = true
			continue
		}
		kept = append(kept, seg)
	}

	for _, d := range expected {
		if !found[filepath.Clean(d)] {
			missing = append(missing, d)
		}
	}
	return strings.Join(kept, string(os.PathListSeparator)), missing
}
