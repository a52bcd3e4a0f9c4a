package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sahil-kale/voyager-comm-lib/core/config"
)

// Config holds logger settings read from the environment.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"`
	Service string `env:"SERVICE_NAME" envDefault:"voyager-comm"`
}

// Options converts the configuration into logger options.
// Unknown formats return an error; unknown levels are rejected by slog.
func (c Config) Options() ([]Option, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	opts := []Option{WithLevel(level)}
	switch strings.ToLower(c.Format) {
	case "json":
		opts = append(opts, WithJSONFormatter())
	case "text":
		opts = append(opts, WithTextFormatter())
	default:
		return nil, fmt.Errorf("invalid log format %q", c.Format)
	}
	if c.Service != "" {
		opts = append(opts, WithAttr(slog.String("service", c.Service)))
	}
	return opts, nil
}

// FromConfig creates a logger writing to w from cfg.
func FromConfig(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, WithOutput(w))...), nil
}

// FromEnv loads Config from the environment (and .env) and creates a logger
// writing to stdout.
func FromEnv() (*slog.Logger, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(opts...), nil
}
