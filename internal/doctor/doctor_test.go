package doctor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/doctor"
	"github.com/ysusumu13/conda/internal/testutil"
)

func findResult(t *testing.T, results []doctor.DiagResult, name string) doctor.DiagResult {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no result named %q in %v", name, results)
	return doctor.DiagResult{}
}

func TestCheckConfig_Valid(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)

	results := doctor.CheckConfig(reg.CfgPath)
	require.NotEmpty(t, results)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
}

func TestCheckConfig_Missing(t *testing.T) {
	results := doctor.CheckConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusWarn, results[0].Status)
	assert.Contains(t, results[0].Fix, "conda setup")
}

func TestCheckConfig_Malformed(t *testing.T) {
	cfgPath := testutil.TempConfigFile(t, "version = [broken")

	results := doctor.CheckConfig(cfgPath)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusFail, results[0].Status)
}

func TestCheckConfig_LoosePermissions(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	require.NoError(t, os.Chmod(reg.CfgPath, 0644))

	results := doctor.CheckConfig(reg.CfgPath)
	perms := findResult(t, results, "config_perms")
	assert.Equal(t, doctor.StatusWarn, perms.Status)
	assert.Contains(t, perms.Fix, "chmod 600")
}

func TestCheckRootPrefix_Valid(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	cfg, err := config.Load(reg.CfgPath)
	require.NoError(t, err)

	result := doctor.CheckRootPrefix(cfg)
	assert.Equal(t, doctor.StatusOK, result.Status)
}

func TestCheckRootPrefix_Broken(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	require.NoError(t, os.RemoveAll(filepath.Join(reg.RootPrefix, "conda-meta")))
	cfg, err := config.Load(reg.CfgPath)
	require.NoError(t, err)

	result := doctor.CheckRootPrefix(cfg)
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.NotEmpty(t, result.Fix)
}

func TestCheckEnvsDirs_Missing(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	cfg, err := config.Load(reg.CfgPath)
	require.NoError(t, err)
	cfg.EnvsDirs = append(cfg.EnvsDirs, filepath.Join(t.TempDir(), "nowhere"))

	results := doctor.CheckEnvsDirs(cfg)
	require.Len(t, results, 2)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
	assert.Equal(t, doctor.StatusWarn, results[1].Status)
	assert.Contains(t, results[1].Fix, "mkdir")
}

func TestCheckEnvs_ReportsBroken(t *testing.T) {
	reg := testutil.SetupTestRegistry(t, "good")
	testutil.WriteBrokenEnv(t, reg.EnvsDir, "bad")
	cfg, err := config.Load(reg.CfgPath)
	require.NoError(t, err)

	results := doctor.CheckEnvs(cfg)
	assert.Equal(t, doctor.StatusOK, findResult(t, results, "env_good").Status)
	bad := findResult(t, results, "env_bad")
	assert.Equal(t, doctor.StatusFail, bad.Status)
	assert.NotEmpty(t, bad.Fix)
}

func TestCheckSession_NoActiveEnv(t *testing.T) {
	t.Setenv("CONDA_DEFAULT_ENV", "")
	t.Setenv("CONDA_PREFIX", "")

	result := doctor.CheckSession(&config.Config{})
	assert.Equal(t, doctor.StatusOK, result.Status)
}

func TestCheckSession_Intact(t *testing.T) {
	reg := testutil.SetupTestRegistry(t, "envA")
	cfg, err := config.Load(reg.CfgPath)
	require.NoError(t, err)

	prefix := filepath.Join(reg.EnvsDir, "envA")
	t.Setenv("CONDA_DEFAULT_ENV", "envA")
	t.Setenv("CONDA_PREFIX", prefix)
	t.Setenv("PATH", filepath.Join(prefix, "bin")+string(os.PathListSeparator)+"/usr/bin")

	result := doctor.CheckSession(cfg)
	assert.Equal(t, doctor.StatusOK, result.Status)
}

func TestCheckSession_TamperedPath(t *testing.T) {
	reg := testutil.SetupTestRegistry(t, "envA")
	cfg, err := config.Load(reg.CfgPath)
	require.NoError(t, err)

	t.Setenv("CONDA_DEFAULT_ENV", "envA")
	t.Setenv("CONDA_PREFIX", filepath.Join(reg.EnvsDir, "envA"))
	t.Setenv("PATH", "/usr/bin")

	result := doctor.CheckSession(cfg)
	assert.Equal(t, doctor.StatusFail, result.Status)
}

func TestCheckSession_PrefixVarMissing(t *testing.T) {
	t.Setenv("CONDA_DEFAULT_ENV", "envA")
	t.Setenv("CONDA_PREFIX", "")

	result := doctor.CheckSession(&config.Config{})
	assert.Equal(t, doctor.StatusWarn, result.Status)
}

func TestCheckSession_EnvDeletedWhileActive(t *testing.T) {
	reg := testutil.SetupTestRegistry(t, "envA")
	cfg, err := config.Load(reg.CfgPath)
	require.NoError(t, err)

	prefix := filepath.Join(reg.EnvsDir, "envA")
	t.Setenv("CONDA_DEFAULT_ENV", "envA")
	t.Setenv("CONDA_PREFIX", prefix)
	t.Setenv("PATH", filepath.Join(prefix, "bin")+string(os.PathListSeparator)+"/usr/bin")
	require.NoError(t, os.RemoveAll(filepath.Join(prefix, "conda-meta")))

	result := doctor.CheckSession(cfg)
	assert.Equal(t, doctor.StatusWarn, result.Status)
}

func TestRunAll(t *testing.T) {
	reg := testutil.SetupTestRegistry(t, "envA")
	t.Setenv("CONDA_DEFAULT_ENV", "")
	t.Setenv("CONDA_PREFIX", "")

	results := doctor.RunAll(reg.CfgPath)
	assert.NotEmpty(t, results)
	for _, r := range results {
		assert.NotEmpty(t, r.Name)
	}
	assert.Equal(t, doctor.StatusOK, findResult(t, results, "config").Status)
	assert.Equal(t, doctor.StatusOK, findResult(t, results, "root_prefix").Status)
	assert.Equal(t, doctor.StatusOK, findResult(t, results, "env_envA").Status)
	assert.Equal(t, doctor.StatusOK, findResult(t, results, "session").Status)
}

func TestRunAll_MalformedConfigStopsEarly(t *testing.T) {
	cfgPath := testutil.TempConfigFile(t, "root_prefix = [broken")

	results := doctor.RunAll(cfgPath)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusFail, results[0].Status)
}
