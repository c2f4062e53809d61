// Package config loads the katas CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Sentinel errors returned by Validate.
var (
	ErrBadOutput   = errors.New("config: unknown output format")
	ErrBadLogLevel = errors.New("config: unknown log level")
	ErrBadLang     = errors.New("config: invalid language tag")
)

// Config holds the CLI settings.
type Config struct {
	LogLevel string `env:"KATAS_LOG_LEVEL" envDefault:"info"`
	Output   string `env:"KATAS_OUTPUT" envDefault:"text"`
	Lang     string `env:"KATAS_LANG" envDefault:"en"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its accepted values.
func (c Config) Validate() error {
	if _, err := ParseOutput(c.Output); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Tag(); err != nil {
		return err
	}
	return nil
}

// ParseOutput normalises an output format name.
func ParseOutput(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case OutputText, OutputJSON:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadOutput, s)
	}
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLogLevel, s)
	}
}

// Tag parses Lang as a BCP 47 tag.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrBadLang, c.Lang, err)
	}
	return tag, nil
}

// NewLogger builds a text logger on w at the configured level. An invalid
// level falls back to info.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
