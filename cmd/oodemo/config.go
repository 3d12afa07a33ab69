package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel  string
	LogFormat string
}

// configFromEnv returns the flag defaults, taken from OODEMO_* variables when set.
func configFromEnv() *Config {
	cfg := &Config{LogLevel: "info", LogFormat: "console"}
	if v := os.Getenv("OODEMO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OODEMO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return cfg
}

func newLogger(w io.Writer, cfg *Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	case "json":
	default:
		return zerolog.Nop(), errors.Errorf("invalid log format %q: want console|json", cfg.LogFormat)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
