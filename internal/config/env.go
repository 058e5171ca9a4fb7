// Package config provides application configuration.
package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// DBURL is the database connection URL for the database sink.
	// Env: DB_URL (default: sqlite://punchup.db)
	DBURL string `envconfig:"DB_URL"`

	// DBTable is the table enriched records are upserted into.
	// Env: DB_TABLE (default: enriched_jokes)
	DBTable string `envconfig:"DB_TABLE"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Output is the file sink output path.
	// Env: OUTPUT (default: enriched_jokes.jsonl)
	Output string `envconfig:"OUTPUT"`

	// OutputMode selects the sink kind (file or database).
	// Env: OUTPUT_MODE (default: file)
	OutputMode string `envconfig:"OUTPUT_MODE"`

	// SinkTimeout is the per-record database write timeout in seconds.
	// Env: SINK_TIMEOUT (default: 5)
	SinkTimeout float64 `envconfig:"SINK_TIMEOUT" default:"5"`

	// Workers is the number of pipeline workers.
	// Env: WORKERS (default: 1)
	Workers int `envconfig:"WORKERS" default:"1"`

	// TuningFile is an optional YAML file overriding enricher thresholds.
	// Env: TUNING_FILE
	TuningFile string `envconfig:"TUNING_FILE"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var e EnvConfig
	if err := envconfig.Process("", &e); err != nil {
		return EnvConfig{}, err
	}
	return e, nil
}

// Normalize trims whitespace and lowercases enumerated values.
func (e EnvConfig) Normalize() EnvConfig {
	e.DBURL = strings.TrimSpace(e.DBURL)
	e.DBTable = strings.TrimSpace(e.DBTable)
	e.LogLevel = strings.TrimSpace(e.LogLevel)
	e.LogFormat = strings.ToLower(strings.TrimSpace(e.LogFormat))
	e.Output = strings.TrimSpace(e.Output)
	e.OutputMode = strings.ToLower(strings.TrimSpace(e.OutputMode))
	e.TuningFile = strings.TrimSpace(e.TuningFile)
	return e
}

// ToAppConfig converts the environment configuration to an AppConfig.
// Unset values keep the AppConfig defaults.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.DBURL != "" {
		cfg = cfg.Apply(WithDBURL(e.DBURL))
	}
	if e.DBTable != "" {
		cfg = cfg.Apply(WithDBTable(e.DBTable))
	}
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	cfg = cfg.Apply(WithLogFormat(parseLogFormat(e.LogFormat)))
	if e.Output != "" {
		cfg = cfg.Apply(WithOutputPath(e.Output))
	}
	if e.OutputMode != "" {
		cfg = cfg.Apply(WithOutputMode(parseOutputMode(e.OutputMode)))
	}
	if e.SinkTimeout > 0 {
		cfg = cfg.Apply(WithSinkTimeout(time.Duration(e.SinkTimeout * float64(time.Second))))
	}
	if e.Workers > 0 {
		cfg = cfg.Apply(WithWorkerCount(e.Workers))
	}
	if e.TuningFile != "" {
		cfg = cfg.Apply(WithTuningFile(e.TuningFile))
	}

	return cfg
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}

// parseOutputMode parses an output mode string.
func parseOutputMode(s string) OutputMode {
	switch strings.ToLower(s) {
	case "database":
		return OutputModeDatabase
	default:
		return OutputModeFile
	}
}

// LoadConfig loads configuration from a .env file (optional) and environment
// variables. The .env file is loaded first if it exists, then environment
// variables override.
func LoadConfig(envPath string) (AppConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, err
	}

	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}

	return envCfg.Normalize().ToAppConfig(), nil
}
