//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeRestConfig_Success(t *testing.T) {
	path := writeTestConfig(t, `
port: "8080"
database:
  type: "sqlite"
  dsn: ":memory:"
logger:
  log_level: "info"
  log_type: "console"
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

func TestInitializeRestConfig_MissingFile_Error(t *testing.T) {
	_, err := InitializeRestConfig("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInitializeRestConfig_MissingPort_Error(t *testing.T) {
	path := writeTestConfig(t, `
database:
  type: "sqlite"
  dsn: ":memory:"
logger:
  log_level: "info"
  log_type: "console"
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port is required")
}

func TestInitializeRestConfig_InvalidDatabaseType_Error(t *testing.T) {
	path := writeTestConfig(t, `
port: "8080"
database:
  type: "mysql"
  dsn: "user:password@tcp(localhost:3306)/fyyur"
logger:
  log_level: "info"
  log_type: "console"
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database settings")
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, `
port: "8080"
database:
  type: "sqlite"
  dsn: ":memory:"
logger:
  log_level: "info"
  log_type: "console"
`)

	t.Setenv("FYYUR_PORT", "9090")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}
