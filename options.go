package punchup

import (
	"log/slog"

	"github.com/punchlabs/punchup/domain/joke"
	"github.com/punchlabs/punchup/infrastructure/enricher"
	"github.com/punchlabs/punchup/internal/config"
)

// clientConfig holds configuration for Client construction.
// Use newClientConfig() to create with defaults from internal/config.
type clientConfig struct {
	appConfig   *config.AppConfig
	logger      *slog.Logger
	enrichments []enricher.Kind
	settings    *enricher.Settings
	sink        joke.Sink
	registry    *enricher.Registry
	workers     int
	envFile     string
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		enrichments: []enricher.Kind{enricher.KindSentiment},
		registry:    enricher.DefaultRegistry(),
	}
}

// Option configures Client construction.
type Option func(*clientConfig)

// WithConfig supplies a pre-built application config instead of loading it
// from the environment.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) { c.appConfig = &cfg }
}

// WithEnvFile loads configuration from the given dotenv file before reading
// the environment.
func WithEnvFile(path string) Option {
	return func(c *clientConfig) { c.envFile = path }
}

// WithLogger sets the logger. When unset, one is built from the config's
// LOG_FORMAT and LOG_LEVEL.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithEnrichments selects which enrichers run, in order.
// The default selection is sentiment only.
func WithEnrichments(kinds ...enricher.Kind) Option {
	return func(c *clientConfig) {
		if len(kinds) > 0 {
			c.enrichments = kinds
		}
	}
}

// WithSettings supplies enricher thresholds directly, bypassing the tuning
// file.
func WithSettings(settings enricher.Settings) Option {
	return func(c *clientConfig) { c.settings = &settings }
}

// WithRegistry replaces the default enricher registry, letting callers
// install custom enrichers.
func WithRegistry(registry *enricher.Registry) Option {
	return func(c *clientConfig) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithSink replaces the config-selected sink with a caller-provided one.
func WithSink(sink joke.Sink) Option {
	return func(c *clientConfig) { c.sink = sink }
}

// WithWorkers overrides the configured pipeline concurrency.
func WithWorkers(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}
