package env

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// stateFile은 conda-meta/state의 JSON 구조다.
type stateFile struct {
	EnvVars map[string]string `json:"env_vars"`
}

// ReadStateVars는 conda-meta/state에 기록된 환경 변수 맵을 반환한다.
// 파일이 없으면 빈 맵을 반환한다. 깨진 파일은 에러로 처리한다. 절반만
// 적용된 변수 세트로 활성화하는 것보다 실패가 낫다.
func ReadStateVars(prefix string) (map[string]string, error) {
	path := filepath.Join(prefix, markerDir, "state")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("env.ReadStateVars: %w", err)
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("env.ReadStateVars: %s 파싱 실패: %w", path, err)
	}
	if sf.EnvVars == nil {
		return map[string]string{}, nil
	}
	return sf.EnvVars, nil
}
