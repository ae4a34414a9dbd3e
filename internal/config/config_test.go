package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvDatabaseHost, "")
	t.Setenv(EnvDatabasePort, "")
	t.Setenv(EnvDatabasePassword, "")

	path := writeConfig(t, `
[server]
http_port = 9090
shutdown_timeout = 5

[database]
host = "db"
port = 6432
user = "planner"
password = "secret"
dbname = "rooms"
sslmode = "require"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = false

[planning]
default_days = 14
max_days = 90
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeoutDuration())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeoutDuration())
	assert.Equal(t, "host=db port=6432 user=planner password=secret dbname=rooms sslmode=require", cfg.Database.DSN())
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 14, cfg.Planning.DefaultDays)
	assert.Equal(t, 90, cfg.Planning.MaxDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
password = "from-file"
`)
	t.Setenv(EnvDatabaseHost, "db.internal")
	t.Setenv(EnvDatabasePassword, "from-env")
	t.Setenv(EnvDatabasePort, "15432")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 15432, cfg.Database.Port)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server\nhttp_port = "))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("bad env port", func(t *testing.T) {
		t.Setenv(EnvDatabasePort, "abc")
		_, err := Load(writeConfig(t, ""))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"port out of range", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"no db host", func(c *Config) { c.Database.Host = "" }},
		{"no db name", func(c *Config) { c.Database.DBName = "" }},
		{"zero max days", func(c *Config) { c.Planning.MaxDays = 0 }},
		{"default above max", func(c *Config) { c.Planning.DefaultDays = 400 }},
		{"metrics without path", func(c *Config) { c.Metrics.Path = "" }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
