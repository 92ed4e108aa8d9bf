package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// DefaultEnvPrompt는 env_prompt 미설정 시 사용하는 프롬프트 태그 템플릿이다.
const DefaultEnvPrompt = "({default_env}) "

// Config는 conda 설정 파일의 최상위 구조체다.
type Config struct {
	Version    int      `toml:"version"`
	RootPrefix string   `toml:"root_prefix"`
	EnvsDirs   []string `toml:"envs_dirs"`
	ChangePS1  *bool    `toml:"changeps1"`
	EnvPrompt  string   `toml:"env_prompt"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값으로 채운 Config를 반환한다. 활성화는 설정
// 파일 없이도 동작해야 하기 때문이다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML로 직렬화하여 path에 저장한다.
// 부모 디렉토리가 없으면 생성하며, 파일 권한은 0600이다.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// IsChangePS1는 changeps1 설정값을 반환한다.
func (c *Config) IsChangePS1() bool {
	if c.ChangePS1 == nil {
		return true
	}
	return *c.ChangePS1
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.RootPrefix == "" {
		c.RootPrefix = filepath.Join("~", ".local", "share", "conda")
	}
	c.RootPrefix = ExpandPath(c.RootPrefix)
	if len(c.EnvsDirs) == 0 {
		c.EnvsDirs = []string{filepath.Join(c.RootPrefix, "envs")}
	}
	for i, d := range c.EnvsDirs {
		c.EnvsDirs[i] = ExpandPath(d)
	}
	if c.ChangePS1 == nil {
		t := true
		c.ChangePS1 = &t
	}
	if c.EnvPrompt == "" {
		c.EnvPrompt = DefaultEnvPrompt
	}
}

func (c *Config) validate() error {
	for i, d := range c.EnvsDirs {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("config.Load: %w: envs_dirs[%d]가 비어 있습니다", ErrConfig, i)
		}
	}
	return nil
}

// ExpandPath는 선행 "~"를 홈 디렉토리로 치환하고 경로를 절대화한다.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
