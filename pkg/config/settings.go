package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultStringValue is the value synthesised for string parameters.
const DefaultStringValue = "SomeValue"

// Settings tune a validator from the environment.
type Settings struct {
	// LogLevel accepts debug, info, warn or error.
	LogLevel slog.Level `env:"GUARDCHECK_LOG_LEVEL" envDefault:"info"`
	// LogFormat is json or text.
	LogFormat string `env:"GUARDCHECK_LOG_FORMAT" envDefault:"text"`
	// StringValue is the baseline synthesised for string parameters.
	StringValue string `env:"GUARDCHECK_STRING_VALUE" envDefault:"SomeValue"`
	// RulesProfile is an optional path to a YAML rules table used by SetupDefaults.
	RulesProfile string `env:"GUARDCHECK_RULES_PROFILE"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:    slog.LevelInfo,
		LogFormat:   "text",
		StringValue: DefaultStringValue,
	}
}

// Validate reports settings a validator cannot use.
func (s Settings) Validate() error {
	switch strings.ToLower(s.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log format %q must be json or text", ErrInvalidSettings, s.LogFormat)
	}
	if s.StringValue == "" {
		return fmt.Errorf("%w: string value cannot be empty", ErrInvalidSettings)
	}
	return nil
}

// LoadSettings loads Settings through the cached loader and validates them.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
