package config

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/spearit/dashboard/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Toast.Limit)
	assert.Equal(t, 4*time.Second, cfg.Toast.LifetimeDuration())
	assert.Equal(t, 10*time.Minute, cfg.Session.IdleTimeoutDuration())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeoutDuration())
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeoutDuration())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeoutDuration())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:9000"
  allowed_origins: ["https://admin.example.com"]
toast:
  limit: 5
log:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://admin.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5, cfg.Toast.Limit)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "4s", cfg.Toast.Lifetime, "unset keys keep defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":7000\"\n")
	t.Setenv("DASHBOARD_SERVER__ADDR", ":9090")
	t.Setenv("DASHBOARD_SESSION__IDLE_TIMEOUT", "5m")
	t.Setenv("DASHBOARD_LOG__LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTimeoutDuration())
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
toast:
  limit: 0
  lifetime: soon
log:
  level: loud
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.New(errors.CodeInvalidConfig)))

	var de *errors.DashError
	require.True(t, stderrors.As(err, &de))
	assert.Contains(t, de.Detail, "toast.limit")
	assert.Contains(t, de.Detail, "toast.lifetime")
	assert.Contains(t, de.Detail, "log.level")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigLoad, errors.CodeOf(err))
}

func TestValidateMetricsNamespace(t *testing.T) {
	cfg := Default()
	cfg.Metrics.Namespace = ""
	assert.Error(t, cfg.Validate())

	cfg.Metrics.Enabled = false
	assert.NoError(t, cfg.Validate())
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Server.AllowedOrigins = []string{"https://a.example.com"}

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "idle_timeout: 10m")

	var back Config
	require.NoError(t, yamlv3.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	LogConfig{Level: "warn", Format: "json"}.Logger(&buf).Info("hidden")
	assert.Empty(t, buf.String())

	LogConfig{Level: "info", Format: "json"}.Logger(&buf).Info("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	LogConfig{Level: "info", Format: "text"}.Logger(&buf).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
