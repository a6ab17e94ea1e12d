package app

import "fmt"

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MenuPath  string // hcl file or directory; empty means the built-in menu
	Itemize   bool
	EchoInput bool // repeat every answer on the output, for piped input

	LogFormat string
	LogLevel  string
}

// NewConfig fills in defaults and validates the logging settings.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// MenuPaths returns the paths to hand to the menu loader.
func (c *Config) MenuPaths() []string {
	if c.MenuPath == "" {
		return nil
	}
	return []string{c.MenuPath}
}
