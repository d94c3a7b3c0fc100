package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvdt-hub/backend/internal/database"
)

// chdir isolates Load from a jvdt.yaml in the package directory.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, database.Postgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/hub.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CACHE_SIZE", "64")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, database.SQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/hub.db", cfg.Database.Path)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadFile(t *testing.T) {
	dir := chdir(t)
	data := []byte(`port: "7000"
db_driver: sqlite
db_path: data/jvdt.db
log_level: debug
cors_origins:
  - https://hub.example
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jvdt.yaml"), data, 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, database.SQLite, cfg.Database.Driver)
	assert.Equal(t, "data/jvdt.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://hub.example"}, cfg.CORSOrigins)

	// env beats file
	t.Setenv("PORT", "7001")
	cfg, err = Load(filepath.Join(dir, "jvdt.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.Port)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := chdir(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:      "8080",
			Database:  database.Config{Driver: database.Postgres},
			JWTSecret: "k",
			CacheSize: 1,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"sqlite without path", func(c *Config) { c.Database.Driver = database.SQLite }},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }},
		{"empty port", func(c *Config) { c.Port = "" }},
	}

	base := valid()
	require.NoError(t, base.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
