// Package config provides application configuration.
package config

import (
	"log/slog"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultLogLevel    = "INFO"
	DefaultDBURL       = "sqlite://punchup.db"
	DefaultDBTable     = "enriched_jokes"
	DefaultOutputPath  = "enriched_jokes.jsonl"
	DefaultSinkTimeout = 5 * time.Second
	DefaultWorkerCount = 1
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// OutputMode selects where enriched records are written.
type OutputMode string

// OutputMode values.
const (
	OutputModeFile     OutputMode = "file"
	OutputModeDatabase OutputMode = "database"
)

// AppConfig holds the main application configuration. Immutable: built once
// at startup and passed into constructors; the enrichment core never reads
// environment state directly.
type AppConfig struct {
	dbURL       string
	dbTable     string
	logLevel    string
	logFormat   LogFormat
	outputPath  string
	outputMode  OutputMode
	sinkTimeout time.Duration
	workerCount int
	tuningFile  string
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		dbURL:       DefaultDBURL,
		dbTable:     DefaultDBTable,
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		outputPath:  DefaultOutputPath,
		outputMode:  OutputModeFile,
		sinkTimeout: DefaultSinkTimeout,
		workerCount: DefaultWorkerCount,
	}
}

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// DBTable returns the table enriched records are upserted into.
func (c AppConfig) DBTable() string { return c.dbTable }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// OutputPath returns the file sink output path.
func (c AppConfig) OutputPath() string { return c.outputPath }

// OutputMode returns the selected sink kind.
func (c AppConfig) OutputMode() OutputMode { return c.outputMode }

// SinkTimeout returns the per-record database write timeout.
func (c AppConfig) SinkTimeout() time.Duration { return c.sinkTimeout }

// WorkerCount returns the number of pipeline workers.
func (c AppConfig) WorkerCount() int { return c.workerCount }

// TuningFile returns the optional enricher tuning file path.
func (c AppConfig) TuningFile() string { return c.tuningFile }

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithDBTable sets the database table name.
func WithDBTable(table string) AppConfigOption {
	return func(c *AppConfig) { c.dbTable = table }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithOutputPath sets the file sink output path.
func WithOutputPath(path string) AppConfigOption {
	return func(c *AppConfig) { c.outputPath = path }
}

// WithOutputMode sets the sink kind.
func WithOutputMode(mode OutputMode) AppConfigOption {
	return func(c *AppConfig) { c.outputMode = mode }
}

// WithSinkTimeout sets the per-record database write timeout.
func WithSinkTimeout(d time.Duration) AppConfigOption {
	return func(c *AppConfig) {
		if d > 0 {
			c.sinkTimeout = d
		}
	}
}

// WithWorkerCount sets the number of pipeline workers.
func WithWorkerCount(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.workerCount = n
		}
	}
}

// WithTuningFile sets the enricher tuning file path.
func WithTuningFile(path string) AppConfigOption {
	return func(c *AppConfig) { c.tuningFile = path }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
// This copies all fields from the receiver and then applies the options,
// making it safe to use when adding new fields to AppConfig.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// Database credentials are masked.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("log_level", c.logLevel),
		slog.String("db_url", c.maskedDBURL()),
		slog.String("db_table", c.dbTable),
		slog.String("output_mode", string(c.outputMode)),
		slog.String("output_path", c.outputPath),
		slog.Duration("sink_timeout", c.sinkTimeout),
		slog.Int("workers", c.workerCount),
		slog.String("tuning_file", c.tuningFile),
	}
}

func (c AppConfig) maskedDBURL() string {
	if strings.HasPrefix(c.dbURL, "sqlite:") {
		return c.dbURL
	}
	return "postgres://***@***"
}
