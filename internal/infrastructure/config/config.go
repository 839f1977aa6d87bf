package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	Export   ExportConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// DatabaseConfig holds SQLite database settings. The store is a single
// process-local file; Path may be ":memory:" for an in-memory database.
type DatabaseConfig struct {
	Path        string
	BusyTimeout int // in milliseconds
}

// DSN returns the SQLite data source name
func (c *DatabaseConfig) DSN() string {
	if c.Path == ":memory:" {
		return ":memory:"
	}
	return fmt.Sprintf("%s?_busy_timeout=%d", c.Path, c.BusyTimeout)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// ExportConfig holds spreadsheet export settings
type ExportConfig struct {
	SheetName  string
	FilePrefix string
}

// Load loads configuration from config.toml and environment variables.
// Environment variables use the CRM prefix, e.g. CRM_DATABASE_PATH.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("CRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Database: DatabaseConfig{
			Path:        v.GetString("database.path"),
			BusyTimeout: v.GetInt("database.busy_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Export: ExportConfig{
			SheetName:  v.GetString("export.sheet_name"),
			FilePrefix: v.GetString("export.file_prefix"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tradecrm")
	v.SetDefault("app.env", "development")
	v.SetDefault("database.path", "tradecrm.db")
	v.SetDefault("database.busy_timeout", 5000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("export.sheet_name", "Orders")
	v.SetDefault("export.file_prefix", "orders_")
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout must not be negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be 'json' or 'console', got %q", c.Log.Format)
	}
	return nil
}
