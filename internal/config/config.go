package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/HyeRyeongY/svgenius"
)

type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	Options   string `envconfig:"OPTIONS"`
	Precision int    `envconfig:"PRECISION" default:"-1"`
	Easing    string `envconfig:"EASING"`
}

// Load reads the configuration from SVGENIUS_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("svgenius", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// EngineOptions returns the engine options: the defaults, overlaid with
// the options file if one is set, overlaid with the environment.
func (c *Config) EngineOptions() (svgenius.Options, error) {
	opts := svgenius.DefaultOptions()
	if c.Options != "" {
		var err error
		if opts, err = svgenius.LoadOptions(c.Options); err != nil {
			return opts, err
		}
	}
	if c.Precision >= 0 {
		opts.Precision = c.Precision
	}
	if c.Easing != "" {
		e, err := svgenius.ParseEasing(c.Easing)
		if err != nil {
			return opts, err
		}
		opts.Easing = e
	}
	return opts, nil
}
