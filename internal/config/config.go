// Package config loads server settings from defaults, an optional jvdt.yaml
// file and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jvdt-hub/backend/internal/database"
)

// DefaultJWTSecret is only suitable for local development.
const DefaultJWTSecret = "jvdt-dev-signing-key"

type Config struct {
	Port        string
	Database    database.Config
	JWTSecret   string
	LogLevel    string
	LogFormat   string
	CacheSize   int
	CORSOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db_driver", string(database.Postgres))
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "jvdt_user")
	v.SetDefault("db_password", "jvdt_password")
	v.SetDefault("db_name", "jvdt_hub")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_path", "jvdt.db")
	v.SetDefault("jwt_secret", DefaultJWTSecret)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("cache_size", 1024)
	v.SetDefault("cors_origins", "*")
}

// Load reads configuration. An empty path looks for jvdt.yaml in the working
// directory and tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("jvdt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port: v.GetString("port"),
		Database: database.Config{
			Driver:   database.Driver(strings.ToLower(v.GetString("db_driver"))),
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
			Path:     v.GetString("db_path"),
		},
		JWTSecret:   v.GetString("jwt_secret"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		CacheSize:   v.GetInt("cache_size"),
		CORSOrigins: origins(v),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// origins accepts a YAML list or a comma-separated string (the env form).
func origins(v *viper.Viper) []string {
	raw, ok := v.Get("cors_origins").(string)
	if !ok {
		return v.GetStringSlice("cors_origins")
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case database.Postgres:
	case database.SQLite:
		if c.Database.Path == "" {
			return errors.New("config: db_path is required for sqlite")
		}
	default:
		return fmt.Errorf("config: unsupported db_driver %q", c.Database.Driver)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("config: cache_size must be positive, got %d", c.CacheSize)
	}
	if c.JWTSecret == "" {
		return errors.New("config: jwt_secret must not be empty")
	}
	if c.Port == "" {
		return errors.New("config: port must not be empty")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
