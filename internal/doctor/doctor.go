package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ysusumu13/conda/internal/activate"
	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckConfig는 설정 파일의 존재, 파싱 가능 여부, 퍼미션을 확인한다.
func CheckConfig(cfgPath string) []DiagResult {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return []DiagResult{{
			Name:    "config",
			Status:  StatusWarn,
			Message: "설정 파일 없음, 기본값으로 동작",
			Fix:     "conda setup 실행",
		}}
	}

	if _, err := config.Load(cfgPath); err != nil {
		return []DiagResult{{
			Name:    "config",
			Status:  StatusFail,
			Message: fmt.Sprintf("설정 파일 오류: %v", err),
			Fix:     fmt.Sprintf("%s 수정 또는 삭제", cfgPath),
		}}
	}

	results := []DiagResult{{Name: "config", Status: StatusOK, Message: cfgPath}}

	if err := config.ValidateFilePermissions(cfgPath); err != nil {
		results = append(results, DiagResult{
			Name:    "config_perms",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", cfgPath),
		})
	}
	return results
}

// CheckRootPrefix는 base 환경 레이아웃을 확인한다.
func CheckRootPrefix(cfg *config.Config) DiagResult {
	if _, err := env.Resolve(env.RootEnvName, cfg); err != nil {
		return DiagResult{
			Name:    "root_prefix",
			Status:  StatusFail,
			Message: fmt.Sprintf("base 환경 손상: %v", err),
			Fix:     "conda setup으로 루트 prefix를 다시 만드세요",
		}
	}
	return DiagResult{Name: "root_prefix", Status: StatusOK, Message: cfg.RootPrefix}
}

// CheckEnvsDirs는 환경 검색 디렉토리의 존재 여부를 확인한다.
func CheckEnvsDirs(cfg *config.Config) []DiagResult {
	results := make([]DiagResult, 0, len(cfg.EnvsDirs))
	for i, dir := range cfg.EnvsDirs {
		name := fmt.Sprintf("envs_dir_%d", i)
		info, err := os.Stat(dir)
		switch {
		case os.IsNotExist(err):
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 없음", dir),
				Fix:     fmt.Sprintf("mkdir -p %s", dir),
			})
		case err != nil:
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusFail,
				Message: fmt.Sprintf("%s 접근 불가: %v", dir, err),
			})
		case !info.IsDir():
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusFail,
				Message: fmt.Sprintf("%s는 디렉토리가 아님", dir),
			})
		default:
			results = append(results, DiagResult{Name: name, Status: StatusOK, Message: dir})
		}
	}
	return results
}

// CheckEnvs는 등록된 모든 환경의 레이아웃을 확인한다. 활성화가 보는
// 것과 동일하게, 앞선 디렉토리의 동명 환경이 뒤의 것을 가린다.
func CheckEnvs(cfg *config.Config) []DiagResult {
	var results []DiagResult
	seen := make(map[string]bool)
	for _, dir := range cfg.EnvsDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // CheckEnvsDirs가 보고한다
		}
		for _, e := range entries {
			if !e.IsDir() || seen[e.Name()] {
				continue
			}
			seen[e.Name()] = true
			if _, err := env.Resolve(e.Name(), cfg); err != nil {
				results = append(results, DiagResult{
					Name:    fmt.Sprintf("env_%s", e.Name()),
					Status:  StatusFail,
					Message: fmt.Sprintf("환경 %s 손상: %v", e.Name(), err),
					Fix:     fmt.Sprintf("%s 레이아웃 확인", filepath.Join(dir, e.Name())),
				})
				continue
			}
			results = append(results, DiagResult{
				Name:    fmt.Sprintf("env_%s", e.Name()),
				Status:  StatusOK,
				Message: filepath.Join(dir, e.Name()),
			})
		}
	}
	return results
}

// CheckSession은 현재 셸 세션의 활성화 상태 무결성을 확인한다.
func CheckSession(cfg *config.Config) DiagResult {
	name := os.Getenv("CONDA_DEFAULT_ENV")
	if name == "" {
		return DiagResult{Name: "session", Status: StatusOK, Message: "활성 환경 없음"}
	}

	prefix := os.Getenv("CONDA_PREFIX")
	if prefix == "" {
		return DiagResult{
			Name:    "session",
			Status:  StatusWarn,
			Message: "CONDA_DEFAULT_ENV는 있지만 CONDA_PREFIX가 없음",
			Fix:     "conda deactivate 후 다시 활성화",
		}
	}

	s := activate.State{
		Active: &activate.ActiveEnv{Name: name, Prefix: prefix},
		Path:   os.Getenv("PATH"),
	}
	if _, err := activate.Deactivate(s); err != nil {
		return DiagResult{
			Name:    "session",
			Status:  StatusFail,
			Message: fmt.Sprintf("세션 상태 손상: %v", err),
			Fix:     "새 셸을 여세요",
		}
	}

	if _, err := env.Resolve(prefix, cfg); err != nil {
		return DiagResult{
			Name:    "session",
			Status:  StatusWarn,
			Message: fmt.Sprintf("활성 환경 %s의 레이아웃이 더 이상 유효하지 않음", name),
			Fix:     "conda deactivate 실행",
		}
	}

	return DiagResult{Name: "session", Status: StatusOK, Message: fmt.Sprintf("활성 환경: %s", name)}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(cfgPath string) []DiagResult {
	results := CheckConfig(cfgPath)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return results
	}

	results = append(results, CheckRootPrefix(cfg))
	results = append(results, CheckEnvsDirs(cfg)...)
	results = append(results, CheckEnvs(cfg)...)
	results = append(results, CheckSession(cfg))
	return results
}
