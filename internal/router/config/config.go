package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config - application configuration.
type Config struct {
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	PostgresConn        string        `mapstructure:"POSTGRES_CONN"`
	PostgresUser        string        `mapstructure:"POSTGRES_USERNAME"`
	PostgresPass        string        `mapstructure:"POSTGRES_PASSWORD"`
	PostgresHost        string        `mapstructure:"POSTGRES_HOST"`
	PostgresPort        string        `mapstructure:"POSTGRES_PORT"`
	PostgresDB          string        `mapstructure:"POSTGRES_DATABASE"`
	MigrationURL        string        `mapstructure:"MIGRATION_URL"`
	Storage             string        `mapstructure:"STORAGE"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	LogPretty           bool          `mapstructure:"LOG_PRETTY"`
	Timezone            string        `mapstructure:"TIMEZONE"`
	RequestTimeout      time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ReportingDemoWindow bool          `mapstructure:"REPORTING_DEMO_WINDOW"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":        "0.0.0.0:8080",
	"POSTGRES_CONN":         "",
	"POSTGRES_USERNAME":     "",
	"POSTGRES_PASSWORD":     "",
	"POSTGRES_HOST":         "",
	"POSTGRES_PORT":         "5432",
	"POSTGRES_DATABASE":     "",
	"MIGRATION_URL":         "file://migrations",
	"STORAGE":               StoragePostgres,
	"LOG_LEVEL":             "info",
	"LOG_PRETTY":            false,
	"TIMEZONE":              "Europe/London",
	"REQUEST_TIMEOUT":       "5s",
	"REPORTING_DEMO_WINDOW": false,
}

// LoadConfig loads app.env from path if present, overridden by environment variables.
func LoadConfig(path string) (cfg Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return cfg, fmt.Errorf("unsupported storage %q", cfg.Storage)
	}
	return cfg, nil
}
