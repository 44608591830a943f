// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast
// on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Import   ImportConfig
	Currency CurrencyConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// MaxConns is the maximum number of connections in the pool (default: 10)
	MaxConns int `env:"DB_MAX_CONNS" default:"10"`

	// MinConns is the minimum number of connections to keep open (default: 2)
	MinConns int `env:"DB_MIN_CONNS" default:"2"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ImportConfig holds file-import settings.
type ImportConfig struct {
	// MaxFileSize is the maximum accepted upload size in bytes (default: 10MB).
	// Enforced by the caller that saves the file, not by the pipeline.
	MaxFileSize int64 `env:"IMPORT_MAX_FILE_SIZE" default:"10485760"`

	// CSVDelimiter is the field separator for delimited-text files (default: ;)
	CSVDelimiter string `env:"IMPORT_CSV_DELIMITER" default:";"`

	// Timeout bounds a single import run (default: 10m)
	Timeout time.Duration `env:"IMPORT_TIMEOUT" default:"10m"`
}

// CurrencyConfig pins down what the monetary columns mean. The source
// data never said whether amounts were major or minor units; the
// deployer declares it here instead of the code guessing.
type CurrencyConfig struct {
	// Code is the ISO currency code amounts are denominated in (default: IDR)
	Code string `env:"CURRENCY_CODE" default:"IDR"`

	// MinorUnits is true when amounts are stored in minor units (default: false,
	// i.e. whole-currency amounts as they appear in the source sheets)
	MinorUnits bool `env:"CURRENCY_MINOR_UNITS" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *ImportConfig) Delimiter() rune {
	if c.CSVDelimiter == "" {
		return ';'
	}
	return []rune(c.CSVDelimiter)[0]
}
