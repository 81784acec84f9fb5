package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	for _, k := range []string{"CUMBRE_DB", "CUMBRE_CAREERS_DIR", "CUMBRE_LOG_LEVEL", "CUMBRE_HTTP_RETRIES", "CUMBRE_HTTP_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cumbre", "cumbre.db"), cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3, cfg.HTTPRetries)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.CareersDir)
}

func TestLoad_HomeConfigFile(t *testing.T) {
	home := isolateHome(t)
	yaml := "log_level: debug\nhttp_retries: 5\nhttp_timeout: 2s\ncareers_dir: ~/carreras\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".cumbre.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.HTTPRetries)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, filepath.Join(home, "carreras"), cfg.CareersDir)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: /tmp/from-file.db\nhttp_retries: 1\n"), 0o644))
	t.Setenv("CUMBRE_DB", "/tmp/from-env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
	assert.Equal(t, 1, cfg.HTTPRetries)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	home := isolateHome(t)

	_, err := Load(filepath.Join(home, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadEnvValue(t *testing.T) {
	isolateHome(t)
	t.Setenv("CUMBRE_HTTP_RETRIES", "many")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
