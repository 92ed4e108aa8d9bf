package env_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
	"github.com/ysusumu13/conda/internal/testutil"
)

// testConfig builds a registry config rooted at the given paths.
func testConfig(root string, envsDirs ...string) *config.Config {
	return &config.Config{RootPrefix: root, EnvsDirs: envsDirs}
}

func TestResolve_NamedEnv(t *testing.T) {
	dir := t.TempDir()
	prefix := testutil.WriteEnv(t, dir, "envA")
	cfg := testConfig("/nonexistent/root", dir)

	e, err := env.Resolve("envA", cfg)
	require.NoError(t, err)
	assert.Equal(t, "envA", e.Name)
	assert.Equal(t, prefix, e.Prefix)
	assert.Equal(t, []string{filepath.Join(prefix, "bin")}, e.BinDirs)
	assert.Nil(t, e.Condarc)
}

func TestResolve_EmptyRefDefaultsToBase(t *testing.T) {
	dir := t.TempDir()
	root := testutil.WriteEnv(t, dir, "conda")
	cfg := testConfig(root, filepath.Join(dir, "envs"))

	e, err := env.Resolve("", cfg)
	require.NoError(t, err)
	assert.Equal(t, env.RootEnvName, e.Name)
	assert.Equal(t, root, e.Prefix)
}

func TestResolve_RootAlias(t *testing.T) {
	dir := t.TempDir()
	root := testutil.WriteEnv(t, dir, "conda")
	cfg := testConfig(root, filepath.Join(dir, "envs"))

	// "root"는 "base"의 과거 별칭이다.
	e, err := env.Resolve("root", cfg)
	require.NoError(t, err)
	assert.Equal(t, "base", e.Name)
	assert.Equal(t, root, e.Prefix)
}

func TestResolve_PathRef(t *testing.T) {
	dir := t.TempDir()
	prefix := testutil.WriteEnv(t, dir, "standalone")
	cfg := testConfig("/nonexistent/root", "/nonexistent/envs")

	e, err := env.Resolve(prefix, cfg)
	require.NoError(t, err)
	assert.Equal(t, "standalone", e.Name)
	assert.Equal(t, prefix, e.Prefix)
}

func TestResolve_TildePathRef(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	prefix := testutil.WriteEnv(t, home, "myenv")
	cfg := testConfig("/nonexistent/root", "/nonexistent/envs")

	e, err := env.Resolve("~/myenv", cfg)
	require.NoError(t, err)
	assert.Equal(t, prefix, e.Prefix)
}

func TestResolve_UnknownName(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig("/nonexistent/root", dir)

	_, err := env.Resolve("does-not-exist", cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, env.ErrInvalidEnvironment)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestResolve_MissingMarker(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteBrokenEnv(t, dir, "broken")
	cfg := testConfig("/nonexistent/root", dir)

	_, err := env.Resolve("broken", cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, env.ErrInvalidEnvironment)
	assert.Contains(t, err.Error(), "conda-meta")
}

func TestResolve_SecondEnvsDir(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	prefix := testutil.WriteEnv(t, dir2, "envB")
	cfg := testConfig("/nonexistent/root", dir1, dir2)

	e, err := env.Resolve("envB", cfg)
	require.NoError(t, err)
	assert.Equal(t, prefix, e.Prefix)
}

func TestResolve_FirstEnvsDirWins(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	first := testutil.WriteEnv(t, dir1, "dup")
	testutil.WriteEnv(t, dir2, "dup")
	cfg := testConfig("/nonexistent/root", dir1, dir2)

	e, err := env.Resolve("dup", cfg)
	require.NoError(t, err)
	assert.Equal(t, first, e.Prefix)
}

func TestResolve_InvalidBase(t *testing.T) {
	cfg := testConfig("/nonexistent/root", "/nonexistent/envs")

	_, err := env.Resolve("base", cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, env.ErrInvalidEnvironment)
}

func TestResolve_CondarcOverrides(t *testing.T) {
	dir := t.TempDir()
	prefix := testutil.WriteEnv(t, dir, "envA")
	testutil.WriteEnvCondarc(t, prefix, "env_prompt: \"<{name}> \"\nchangeps1: false\n")
	cfg := testConfig("/nonexistent/root", dir)

	e, err := env.Resolve("envA", cfg)
	require.NoError(t, err)
	require.NotNil(t, e.Condarc)
	require.NotNil(t, e.Condarc.EnvPrompt)
	assert.Equal(t, "<{name}> ", *e.Condarc.EnvPrompt)
	require.NotNil(t, e.Condarc.ChangePS1)
	assert.False(t, *e.Condarc.ChangePS1)
}

func TestResolve_MalformedCondarc(t *testing.T) {
	dir := t.TempDir()
	prefix := testutil.WriteEnv(t, dir, "envA")
	testutil.WriteEnvCondarc(t, prefix, "env_prompt: [unclosed\n")
	cfg := testConfig("/nonexistent/root", dir)

	_, err := env.Resolve("envA", cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, env.ErrInvalidEnvironment)
}

func TestList_BaseFirstThenSorted(t *testing.T) {
	reg := testutil.SetupTestRegistry(t, "zeta", "alpha")

	cfg := testConfig(reg.RootPrefix, reg.EnvsDir)
	envs := env.List(cfg)

	require.Len(t, envs, 3)
	assert.Equal(t, "base", envs[0].Name)
	assert.Equal(t, "alpha", envs[1].Name)
	assert.Equal(t, "zeta", envs[2].Name)
}

func TestList_SkipsBrokenEnvs(t *testing.T) {
	reg := testutil.SetupTestRegistry(t, "good")
	testutil.WriteBrokenEnv(t, reg.EnvsDir, "broken")

	cfg := testConfig(reg.RootPrefix, reg.EnvsDir)
	envs := env.List(cfg)

	names := make([]string, 0, len(envs))
	for _, e := range envs {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"base", "good"}, names)
}

func TestList_MissingEnvsDir(t *testing.T) {
	dir := t.TempDir()
	root := testutil.WriteEnv(t, dir, "conda")
	cfg := testConfig(root, "/nonexistent/envs")

	envs := env.List(cfg)
	require.Len(t, envs, 1)
	assert.Equal(t, "base", envs[0].Name)
}

func TestList_DuplicateNameShadowed(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	first := testutil.WriteEnv(t, dir1, "dup")
	testutil.WriteEnv(t, dir2, "dup")
	cfg := testConfig("/nonexistent/root", dir1, dir2)

	envs := env.List(cfg)
	require.Len(t, envs, 1)
	assert.Equal(t, first, envs[0].Prefix)
}

func TestBinDirsFor_Posix(t *testing.T) {
	dirs := env.BinDirsFor("/opt/envs/envA")
	assert.Equal(t, []string{"/opt/envs/envA/bin"}, dirs)
}

func TestReadStateVars_Valid(t *testing.T) {
	dir := t.TempDir()
	prefix := testutil.WriteEnv(t, dir, "envA")
	testutil.WriteStateFile(t, prefix, `{"env_vars": {"MY_KEY": "my-value", "OTHER": "1"}}`)

	vars, err := env.ReadStateVars(prefix)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"MY_KEY": "my-value", "OTHER": "1"}, vars)
}

func TestReadStateVars_MissingFile(t *testing.T) {
	dir := t.TempDir()
	prefix := testutil.WriteEnv(t, dir, "envA")

	vars, err := env.ReadStateVars(prefix)
	require.NoError(t, err) // graceful: empty map
	assert.Empty(t, vars)
}

func TestReadStateVars_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	prefix := testutil.WriteEnv(t, dir, "envA")
	testutil.WriteStateFile(t, prefix, "not json {{{")

	_, err := env.ReadStateVars(prefix)
	assert.Error(t, err)
}

func TestReadStateVars_NoEnvVarsKey(t *testing.T) {
	dir := t.TempDir()
	prefix := testutil.WriteEnv(t, dir, "envA")
	testutil.WriteStateFile(t, prefix, `{"version": 1}`)

	vars, err := env.ReadStateVars(prefix)
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestResolve_FileNotDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notadir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	cfg := testConfig("/nonexistent/root", "/nonexistent/envs")

	_, err := env.Resolve(path, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, env.ErrInvalidEnvironment)
}
