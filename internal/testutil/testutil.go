// Package testutil provides common test helpers for the conda project.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// WriteEnv creates a valid environment layout (prefix with a conda-meta
// marker and a bin directory) under dir and returns the prefix path.
func WriteEnv(t *testing.T, dir, name string) string {
	t.Helper()

	prefix := filepath.Join(dir, name)
	for _, sub := range []string{"conda-meta", "bin"} {
		if err := os.MkdirAll(filepath.Join(prefix, sub), 0755); err != nil {
			t.Fatalf("WriteEnv: mkdir failed: %v", err)
		}
	}

	return prefix
}

// WriteBrokenEnv creates a directory without the conda-meta marker,
// representing an invalid environment, and returns its path.
func WriteBrokenEnv(t *testing.T, dir, name string) string {
	t.Helper()

	prefix := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(prefix, "bin"), 0755); err != nil {
		t.Fatalf("WriteBrokenEnv: mkdir failed: %v", err)
	}

	return prefix
}

// WriteEnvCondarc writes a per-environment .condarc with the given content.
func WriteEnvCondarc(t *testing.T, prefix, content string) {
	t.Helper()

	path := filepath.Join(prefix, ".condarc")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteEnvCondarc: write failed: %v", err)
	}
}

// WriteStateFile writes a conda-meta/state file with the given content.
func WriteStateFile(t *testing.T, prefix, content string) {
	t.Helper()

	path := filepath.Join(prefix, "conda-meta", "state")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteStateFile: write failed: %v", err)
	}
}

// TestRegistry is a disposable environment registry rooted in a temp dir.
type TestRegistry struct {
	// RootPrefix is the base environment prefix.
	RootPrefix string
	// EnvsDir holds the named environments.
	EnvsDir string
	// CfgPath points to a config.toml describing this registry.
	CfgPath string
}

// SetupTestRegistry creates a registry with a base environment plus the
// named environments, and a config.toml wired to it. Everything is cleaned
// up when the test finishes.
func SetupTestRegistry(t *testing.T, names ...string) TestRegistry {
	t.Helper()

	dir := t.TempDir()
	root := WriteEnv(t, dir, "conda")
	envsDir := filepath.Join(dir, "envs")
	if err := os.MkdirAll(envsDir, 0755); err != nil {
		t.Fatalf("SetupTestRegistry: mkdir failed: %v", err)
	}
	for _, name := range names {
		WriteEnv(t, envsDir, name)
	}

	content := fmt.Sprintf("version = 1\nroot_prefix = %q\nenvs_dirs = [%q]\n", root, envsDir)
	return TestRegistry{
		RootPrefix: root,
		EnvsDir:    envsDir,
		CfgPath:    TempConfigFile(t, content),
	}
}
