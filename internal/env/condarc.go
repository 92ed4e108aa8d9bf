package env

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Condarc는 prefix/.condarc에 담긴 환경별 설정 오버라이드다.
// nil 포인터 필드는 전역 설정을 그대로 따른다는 뜻이다.
type Condarc struct {
	EnvPrompt *string `yaml:"env_prompt"`
	ChangePS1 *bool   `yaml:"changeps1"`
}

// loadCondarc는 환경별 .condarc를 읽는다. 파일이 없으면 (nil, nil)을
// 반환하고, 파싱 불가능한 파일은 환경 자체를 무효로 취급한다.
// 잘못된 오버라이드를 조용히 무시하고 활성화하면 안 되기 때문이다.
func loadCondarc(prefix string) (*Condarc, error) {
	path := filepath.Join(prefix, ".condarc")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("env.loadCondarc: %w: %v", ErrInvalidEnvironment, err)
	}

	var rc Condarc
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("env.loadCondarc: %w: %s 파싱 실패: %v", ErrInvalidEnvironment, path, err)
	}
	return &rc, nil
}
