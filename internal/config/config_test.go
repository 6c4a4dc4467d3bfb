package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
db:
  driver: postgres
  dsn: postgres://u:p@localhost:5432/inv
auth:
  secret_key: s3cr3t
  token_ttl: 45m
inventory:
  low_stock_threshold: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/inv", cfg.DB.DSN)
	assert.Equal(t, "s3cr3t", cfg.Auth.SecretKey)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 3, cfg.Inventory.LowStockThreshold)
	// untouched keys fall back to defaults
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret_key: from-file
`)
	t.Setenv("INVENTORY_AUTH_SECRET_KEY", "from-env")
	t.Setenv("INVENTORY_SERVER_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: "8080"},
			DB:     DBConfig{Driver: DriverSQLite, Path: "x.db"},
			Auth:   AuthConfig{SecretKey: "k", TokenTTL: time.Minute},
		}
	}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"ok", func(c *Config) {}, ""},
		{"unknown driver", func(c *Config) { c.DB.Driver = "mysql" }, "unsupported db.driver"},
		{"sqlite without path", func(c *Config) { c.DB.Path = "" }, "db.path"},
		{"postgres without dsn", func(c *Config) { c.DB.Driver = DriverPostgres }, "db.dsn"},
		{"blank secret", func(c *Config) { c.Auth.SecretKey = "  " }, "secret_key"},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, "token_ttl"},
		{"no port", func(c *Config) { c.Server.Port = "" }, "server.port"},
		{"negative threshold", func(c *Config) { c.Inventory.LowStockThreshold = -1 }, "low_stock_threshold"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
