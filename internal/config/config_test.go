package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, DefaultSummaryOutputPath, cfg.SummaryOutputPath)
	assert.Equal(t, DefaultCommandTimeout, cfg.CommandTimeout)
	assert.False(t, cfg.SkipExtensionUpdate)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output: custom_all.json
summary-output: custom_summary.json
az-path: /usr/local/bin/az
command-timeout: 30s
skip-extension-update: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "custom_all.json", cfg.OutputPath)
	assert.Equal(t, "custom_summary.json", cfg.SummaryOutputPath)
	assert.Equal(t, "/usr/local/bin/az", cfg.AzPath)
	assert.Equal(t, 30*time.Second, cfg.CommandTimeout)
	assert.True(t, cfg.SkipExtensionUpdate)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: from_file.json\n"), 0644))

	t.Setenv("FLEXSCAN_OUTPUT", "from_env.json")
	t.Setenv("FLEXSCAN_SUMMARY_OUTPUT", "summary_env.json")
	t.Setenv("FLEXSCAN_DEBUG", "true")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "from_env.json", cfg.OutputPath)
	assert.Equal(t, "summary_env.json", cfg.SummaryOutputPath)
	assert.True(t, cfg.Debug)
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestLoadFromInvalidTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("command-timeout: soon\n"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid command-timeout")
}
