package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/config"
)

const sample = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "donor"
password = "secret"
dbname = "donations"

[step_gate]
backend = "redis"
session_ttl_min = 30

[redis]
addr = "redis:6379"

[donor_service]
url = "http://donors:8080"
timeout = 2

[appointment_service]
url = "http://appointments:8080"
timeout = 3

[workflow]
history_timeout_ms = 1500
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout, "default kept")
	assert.Equal(t, "host=db port=5433 user=donor password=secret dbname=donations sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, config.BackendRedis, cfg.StepGate.Backend)
	assert.Equal(t, 30*time.Minute, cfg.StepGate.SessionTTL())
	assert.Equal(t, 2*time.Second, cfg.DonorService.TimeoutDuration())
	assert.Equal(t, 1500*time.Millisecond, cfg.Workflow.HistoryTimeout())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverridesPath(t *testing.T) {
	t.Setenv(config.EnvConfigPath, writeConfig(t, sample))

	cfg, err := config.Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, config.ErrLoad)

	_, err = config.Load(writeConfig(t, sample+"\n[extra\n"))
	assert.ErrorIs(t, err, config.ErrLoad)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg := config.Default()
		cfg.Database.DBName = "donations"
		cfg.DonorService.URL = "http://donors"
		cfg.AppointmentService.URL = "http://appointments"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := map[string]func(c *config.Config){
		"bad port":        func(c *config.Config) { c.Server.HTTPPort = 0 },
		"no dbname":       func(c *config.Config) { c.Database.DBName = "" },
		"unknown backend": func(c *config.Config) { c.StepGate.Backend = "etcd" },
		"negative ttl":    func(c *config.Config) { c.StepGate.SessionTTLMins = -1 },
		"no donor url":    func(c *config.Config) { c.DonorService.URL = "" },
		"zero timeout":    func(c *config.Config) { c.AppointmentService.Timeout = 0 },
		"zero history":    func(c *config.Config) { c.Workflow.HistoryTimeoutMs = 0 },
		"redis without addr": func(c *config.Config) {
			c.StepGate.Backend = config.BackendRedis
			c.Redis.Addr = ""
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
