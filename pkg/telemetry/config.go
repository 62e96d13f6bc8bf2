package telemetry

import "fmt"

// Config contains the telemetry configuration for the modweaver engine.
type Config struct {
	// ServiceName is the name of the service for telemetry identification.
	ServiceName string

	// Logging contains logging configuration.
	Logging LoggingConfig

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level sets the minimum log level (trace, debug, info, warn, error, fatal).
	Level string

	// Format specifies the log format (console, json).
	Format string

	// Output specifies where logs are written (stdout, stderr).
	Output string

	// EnableCaller adds file:line caller information to logs.
	EnableCaller bool
}

// MetricsConfig configures metrics collection.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected.
	Enabled bool

	// Namespace is the prefix for all metric names.
	Namespace string
}

// DefaultConfig returns a configuration suitable for library embedding:
// info-level console logging to stderr, metrics disabled.
func DefaultConfig() *Config {
	return &Config{
		ServiceName: "modweaver",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "modweaver",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service name must not be empty")
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Logging.Format)
	}
	switch c.Logging.Output {
	case "", "stdout", "stderr":
	default:
		return fmt.Errorf("unsupported log output: %s", c.Logging.Output)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics namespace must not be empty when metrics are enabled")
	}
	return nil
}
