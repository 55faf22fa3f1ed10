package domain

import (
	"fmt"
	"strings"
)

// SetBaudRate updates the line speed. Any positive rate is accepted; the
// standard rates are only a suggestion shown by the settings menu.
func (c *Config) SetBaudRate(rate int) error {
	if rate <= 0 {
		return &ValidationError{Field: "baud_rate", Message: "Invalid baud rate"}
	}
	c.BaudRate = rate
	return nil
}

// SetConnectionType updates the modem protocol label.
func (c *Config) SetConnectionType(kind string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return &ValidationError{Field: "connection_type", Message: "Connection type cannot be empty"}
	}
	c.ConnectionType = kind
	return nil
}

// ToggleSound flips the sound flag and returns the new value.
func (c *Config) ToggleSound() bool {
	c.SoundEnabled = !c.SoundEnabled
	return c.SoundEnabled
}

// SetLogLevel updates the diagnostic log level.
func (c *Config) SetLogLevel(level string) error {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, known := range LogLevels {
		if level == known {
			c.LogLevel = level
			return nil
		}
	}
	return &ValidationError{
		Field:   "log_level",
		Message: fmt.Sprintf("Invalid log level %q (use %s)", level, strings.Join(LogLevels, ", ")),
	}
}

// Hydrate replaces zero values (for example an explicit empty string) with defaults.
func (c Config) Hydrate() Config {
	defaults := DefaultConfig()
	if c.BaudRate <= 0 {
		c.BaudRate = defaults.BaudRate
	}
	if c.ConnectionType == "" {
		c.ConnectionType = defaults.ConnectionType
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.HistoryBackend == "" {
		c.HistoryBackend = defaults.HistoryBackend
	}
	return c
}

// SoundLabel renders the sound flag the way the settings menu reports it.
func (c Config) SoundLabel() string {
	if c.SoundEnabled {
		return "enabled"
	}
	return "disabled"
}
