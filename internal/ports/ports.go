// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the connection orchestration
// core and its adapters (infrastructure). The dispatcher and the connectors
// depend only on these abstractions, so tests can swap the terminal, the
// external client processes and the persisted files for in-memory stubs.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Connector, ConfigStore)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/vmodem/vmodem99a/internal/domain"
)

// ConfigStore loads and saves the user settings document.
// Implementations typically read from ~/.vmodem99a/config.yaml.
type ConfigStore interface {
	// Load never fails on a missing or corrupt file; it resolves to defaults.
	Load(context.Context) (domain.Config, error)
	Save(domain.Config) error
	Path() string
}

// SettingsReader exposes the live settings of the running process.
type SettingsReader interface {
	Current() domain.Config
}

// Settings is the single source of truth for the config during a run.
// Every mutation is persisted before it becomes visible.
type Settings interface {
	SettingsReader
	Update(func(*domain.Config) error) (domain.Config, error)
	Reset() (domain.Config, error)
	Path() string
}

// HistoryRepository persists the whole connection history at once.
type HistoryRepository interface {
	Load() ([]domain.HistoryEntry, error)
	Replace([]domain.HistoryEntry) error
	Path() string
}

// ConnectionRecorder appends one finished attempt to the history.
// Recording never fails from the caller's point of view.
type ConnectionRecorder interface {
	Record(domain.HistoryEntry)
}

// HistoryReader gives read access to the recorded attempts.
type HistoryReader interface {
	Recent(n int) []domain.HistoryEntry
	Len() int
}

// Connector attempts one transport and reports how it concluded.
// The set of implementations is closed: one per domain.ConnectionKind.
type Connector interface {
	Kind() domain.ConnectionKind
	Attempt(context.Context, domain.Request) (domain.Outcome, error)
}

// ProcessRunner starts external client processes.
//
// Both methods return the exit code of a process that ran, and a
// *domain.SpawnError when the process could not be started at all.
type ProcessRunner interface {
	// Run attaches the process to the terminal and blocks until it exits.
	Run(ctx context.Context, name string, args ...string) (int, error)
	// Stream blocks until the process exits, handing every stderr line to onLine.
	Stream(ctx context.Context, name string, args []string, onLine func(string)) (int, error)
}

// ToneGenerator emits a modem sound. Play must not block and must never fail.
type ToneGenerator interface {
	Play(text string, baud int)
}

// Effects are the timing-and-cue steps bracketing every connection attempt.
type Effects interface {
	DialTone()
	Handshake()
	Disconnect()
}

// Console renders user-facing lines and reads interactive answers.
type Console interface {
	Status(msg string)
	Success(msg string)
	Error(msg string)
	Warn(msg string)
	Notice(msg string)
	Effect(msg string)
	Muted(msg string)
	Heading(msg string)
	Println(msg string)
	Field(name, value string)
	Entry(domain.HistoryEntry)
	Banner(domain.Config)
	Clear()
	ReadLine(prompt string) (string, error)
}

// Doctor reports whether the external tools the connectors need are present.
type Doctor interface {
	Run(context.Context) domain.HealthReport
}

// Logger provides structured logging abstraction for the application layer.
// Implementations route to a rotating diagnostic file; the console only
// sees log records in verbose mode.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
