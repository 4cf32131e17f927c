package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/tdeecalc/internal/hcl"
)

// Defaults applied when neither a flag nor the settings file sets a value.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty fields mean "not set" until Resolve fills them in.
type Config struct {
	SettingsPath string // optional hcl file

	LogFormat string
	LogLevel  string
	ServeAddr string // empty runs the interactive session
}

// NewConfig validates the explicitly provided values.
func NewConfig(cfg Config) (*Config, error) {
	if err := validateLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve returns a copy of c where every empty field is taken from the
// settings file, and then from the defaults. Explicit values win.
func (c Config) Resolve(settings *hcl.Settings) (*Config, error) {
	if settings != nil {
		c.LogLevel = firstNonEmpty(c.LogLevel, settings.LogLevel)
		c.LogFormat = firstNonEmpty(c.LogFormat, settings.LogFormat)
		c.ServeAddr = firstNonEmpty(c.ServeAddr, settings.ServeAddr)
	}
	c.LogLevel = firstNonEmpty(c.LogLevel, DefaultLogLevel)
	c.LogFormat = firstNonEmpty(c.LogFormat, DefaultLogFormat)

	if err := validateLogging(c.LogLevel, c.LogFormat); err != nil {
		return nil, err
	}
	return &c, nil
}

func validateLogging(level, format string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	switch format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
