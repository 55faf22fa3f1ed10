package config

import (
	"fmt"
	"strings"

	"github.com/vmodem/vmodem99a/internal/domain"
)

// Validate ensures a config is safe to persist and to drive the modem with.
func Validate(cfg domain.Config) error {
	if cfg.BaudRate <= 0 {
		return &domain.ValidationError{Field: "baud_rate", Message: fmt.Sprintf("baud_rate must be > 0, got %d", cfg.BaudRate)}
	}
	if strings.TrimSpace(cfg.ConnectionType) == "" {
		return &domain.ValidationError{Field: "connection_type", Message: "connection_type must be set"}
	}
	if !contains(domain.LogLevels, cfg.LogLevel) {
		return &domain.ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("log_level must be %s, got %s", strings.Join(domain.LogLevels, "|"), cfg.LogLevel),
		}
	}
	if cfg.HistoryBackend != "" && !contains(domain.HistoryBackends, cfg.HistoryBackend) {
		return &domain.ValidationError{
			Field:   "history_backend",
			Message: fmt.Sprintf("history_backend must be %s, got %s", strings.Join(domain.HistoryBackends, "|"), cfg.HistoryBackend),
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
