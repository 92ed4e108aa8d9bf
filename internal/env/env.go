package env

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/ysusumu13/conda/internal/config"
)

// ErrInvalidEnvironment는 참조가 유효한 환경으로 해석되지 않을 때의 sentinel error다.
var ErrInvalidEnvironment = errors.New("유효하지 않은 환경")

// RootEnvName은 기본 환경의 정식 이름이다. 과거 별칭 "root"도 허용한다.
const RootEnvName = "base"

// markerDir은 환경 유효성 판정 기준이 되는 메타데이터 디렉토리 이름이다.
const markerDir = "conda-meta"

// Environment는 검증을 통과한 하나의 환경이다.
type Environment struct {
	// Name은 표시용 이름이다. 경로 참조는 prefix의 마지막 요소를 쓴다.
	Name string
	// Prefix는 환경 루트의 절대 경로다.
	Prefix string
	// BinDirs는 활성화 시 PATH 앞에 붙는 디렉토리 목록이다 (우선순위 순).
	BinDirs []string
	// Condarc는 prefix/.condarc의 환경별 설정이다. 없으면 nil.
	Condarc *Condarc
}

// Resolve는 참조를 환경으로 해석하고 레이아웃을 검증한다.
// 빈 참조는 기본 환경으로 해석된다. 상태 변경 없는 순수 조회다.
func Resolve(ref string, cfg *config.Config) (*Environment, error) {
	name := strings.TrimSpace(ref)
	if name == "" {
		name = RootEnvName
	}

	var prefix string
	switch {
	case isPathRef(name):
		prefix = config.ExpandPath(name)
		name = filepath.Base(prefix)
	case name == RootEnvName || name == "root":
		prefix = cfg.RootPrefix
		name = RootEnvName
	default:
		p, ok := findNamed(name, cfg.EnvsDirs)
		if !ok {
			return nil, fmt.Errorf("env.Resolve: %w: %q를 찾을 수 없습니다 (envs_dirs: %s)",
				ErrInvalidEnvironment, name, strings.Join(cfg.EnvsDirs, ", "))
		}
		prefix = p
	}

	if err := checkLayout(prefix); err != nil {
		return nil, err
	}

	rc, err := loadCondarc(prefix)
	if err != nil {
		return nil, err
	}

	return &Environment{
		Name:    name,
		Prefix:  prefix,
		BinDirs: BinDirsFor(prefix),
		Condarc: rc,
	}, nil
}

// List는 레지스트리에서 발견되는 모든 유효한 환경을 반환한다.
// 기본 환경이 맨 앞, 나머지는 이름 순이다. 조회 불가능한 envs_dir는 건너뛴다.
func List(cfg *config.Config) []*Environment {
	var envs []*Environment
	if checkLayout(cfg.RootPrefix) == nil {
		envs = append(envs, &Environment{
			Name:    RootEnvName,
			Prefix:  cfg.RootPrefix,
			BinDirs: BinDirsFor(cfg.RootPrefix),
		})
	}

	var named []*Environment
	seen := make(map[string]bool)
	for _, dir := range cfg.EnvsDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, ent := range entries {
			if !ent.IsDir() || seen[ent.Name()] {
				continue
			}
			prefix := filepath.Join(dir, ent.Name())
			if checkLayout(prefix) != nil {
				continue
			}
			// 같은 이름이면 앞선 envs_dir가 우선한다.
			seen[ent.Name()] = true
			named = append(named, &Environment{
				Name:    ent.Name(),
				Prefix:  prefix,
				BinDirs: BinDirsFor(prefix),
			})
		}
	}
	sort.Slice(named, func(i, j int) bool { return named[i].Name < named[j].Name })
	return append(envs, named...)
}

// BinDirsFor는 prefix의 실행 파일 디렉토리 목록을 우선순위 순으로 반환한다.
// Windows 레이아웃은 prefix 자신과 Library/Scripts 하위를 포함한다.
func BinDirsFor(prefix string) []string {
	if runtime.GOOS == "windows" {
		return []string{
			prefix,
			filepath.Join(prefix, "Library", "mingw-w64", "bin"),
			filepath.Join(prefix, "Library", "usr", "bin"),
			filepath.Join(prefix, "Library", "bin"),
			filepath.Join(prefix, "Scripts"),
		}
	}
	return []string{filepath.Join(prefix, "bin")}
}

func isPathRef(ref string) bool {
	if ref == "." || ref == ".." || strings.HasPrefix(ref, "~") {
		return true
	}
	return strings.ContainsRune(ref, '/') ||
		strings.ContainsRune(ref, os.PathSeparator) ||
		filepath.IsAbs(ref)
}

func findNamed(name string, dirs []string) (string, bool) {
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func checkLayout(prefix string) error {
	info, err := os.Stat(prefix)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("env.checkLayout: %w: 디렉토리가 없습니다: %s", ErrInvalidEnvironment, prefix)
	}
	marker := filepath.Join(prefix, markerDir)
	info, err = os.Stat(marker)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("env.checkLayout: %w: %s 마커가 없습니다: %s", ErrInvalidEnvironment, markerDir, prefix)
	}
	return nil
}
