package domain

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrUnknownCommand       = errors.New("unknown command")
	ErrUnsupportedMethod    = errors.New("unsupported HTTP method")
	ErrConnectorUnavailable = errors.New("connector unavailable")
)

// ── Structured error types ───────────────────────────────────────────

// PersistError reports a failed write (or read) of a settings or history file.
type PersistError struct {
	Op   string // "save", "load", "replace"
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// SpawnError reports an external client that could not be started.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s client error: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// TransportError reports a failure after the transport was invoked.
type TransportError struct {
	Kind   ConnectionKind
	Target string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s connection to %s failed", e.Kind, e.Target)
	}
	return fmt.Sprintf("%s connection to %s failed: %v", e.Kind, e.Target, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ExitError reports an external client that ran and exited non-zero.
type ExitError struct {
	Program string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Program, e.Code)
}

// ValidationError reports a missing or unusable user argument. Message is
// the single line shown to the user.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ── Classification helpers ───────────────────────────────────────────

// StatusForError classifies the error an attempt ended with. A client that
// ran and exited non-zero, or a request the connector refused, is FAILED.
// Anything else means the transport never produced a result and is ERROR.
func StatusForError(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return StatusForExit(exit.Code)
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		return StatusFailed
	}
	return StatusError
}

// UserMessage renders err as the one human-readable line shown on the console.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}
	var spawn *SpawnError
	if errors.As(err, &spawn) {
		return spawn.Error()
	}
	var persist *PersistError
	if errors.As(err, &persist) {
		return fmt.Sprintf("Could not %s %s", persist.Op, persist.Path)
	}
	return err.Error()
}
