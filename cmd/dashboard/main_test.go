package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spearit/dashboard/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestConfigPrintsEffectiveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644))

	out, err := run(t, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, ":9090")
	assert.Contains(t, out, "namespace: dashboard")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")

	_, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = run(t, "--config", path, "config", "init")
	require.Error(t, err)

	_, err = run(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
}

func TestLoadConfigAddrOverride(t *testing.T) {
	cfg, err := loadConfig("", "127.0.0.1:7000")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)

	_, err = loadConfig("", "not an address")
	require.Error(t, err)
}

func TestConfigMapping(t *testing.T) {
	cfg := config.Default()
	cfg.Session.MaxSessions = 50
	cfg.Session.IdleTimeout = "2m"
	cfg.Toast.Limit = 5
	cfg.Toast.Lifetime = "6s"
	cfg.Server.ShutdownTimeout = "3s"
	cfg.Server.TrustedProxies = []string{"10.0.0.0/8"}
	cfg.Metrics.Path = "/internal/metrics"

	mc := managerConfig(cfg)
	assert.Equal(t, 50, mc.MaxSessions)
	assert.Equal(t, 100, mc.MaxSessionsPerIP)
	assert.Equal(t, 2*time.Minute, mc.IdleTimeout)
	assert.Equal(t, 256, mc.Session.QueueSize)
	assert.Equal(t, 5, mc.Session.ToastLimit)
	assert.Equal(t, 6*time.Second, mc.Session.ToastLifetime)

	sc := serverConfig(cfg)
	assert.Equal(t, config.DefaultAddr, sc.Addr)
	assert.Equal(t, 3*time.Second, sc.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, sc.ReadTimeout)
	assert.Equal(t, []string{"10.0.0.0/8"}, sc.TrustedProxies)
	assert.Equal(t, "/internal/metrics", sc.MetricsPath)
	assert.Equal(t, 64*1024, int(sc.MaxMessageSize))
}
