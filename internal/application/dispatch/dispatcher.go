// Package dispatch routes one line of modem input to the matching action.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Signal tells the driver whether to keep reading commands.
type Signal int

const (
	SignalContinue Signal = iota
	SignalQuit
)

// Dispatcher is the command router shared by the REPL and single-shot mode.
//
// Every error it returns has already been shown to the user as one console
// line; see IsReported.
type Dispatcher struct {
	Connectors map[domain.ConnectionKind]ports.Connector
	Settings   ports.Settings
	History    ports.HistoryReader
	Effects    ports.Effects
	Console    ports.Console
	Doctor     ports.Doctor
	Logger     ports.Logger
	// Now defaults to time.Now; only the phonebook footer reads it.
	Now func() time.Time
}

// Dispatch splits line on whitespace and runs it. Blank input is a no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (Signal, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return SignalContinue, nil
	}
	return d.Run(ctx, fields[0], fields[1:])
}

// Run executes a pre-split command. Command names are case-sensitive.
func (d *Dispatcher) Run(ctx context.Context, command string, args []string) (Signal, error) {
	if command == "" {
		return SignalContinue, nil
	}
	cmd, ok := Lookup(command)
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrUnknownCommand, command)
		d.Console.Error(fmt.Sprintf("Unknown command: %s (type 'help' for commands)", command))
		return SignalContinue, reported{err: err}
	}

	d.debug("dispatching command", map[string]interface{}{"command": cmd.Name, "args": len(args)})
	signal, err := cmd.run(ctx, d, args)
	if err != nil && !IsReported(err) {
		d.Console.Error(domain.UserMessage(err))
		err = reported{err: err}
	}
	return signal, err
}

// Hangup plays the farewell sequence shared by quit and end of input.
func (d *Dispatcher) Hangup() {
	d.Console.Notice("Hanging up modem...")
	d.Effects.Disconnect()
	d.Console.Notice("73! Thanks for using VModem 99/A")
}

func (d *Dispatcher) connect(ctx context.Context, kind domain.ConnectionKind, args []string, required string) (Signal, error) {
	if len(args) == 0 {
		return SignalContinue, &domain.ValidationError{
			Field:   strings.ToLower(required),
			Message: required + " required",
		}
	}
	connector, ok := d.Connectors[kind]
	if !ok || connector == nil {
		return SignalContinue, fmt.Errorf("%w: %s", domain.ErrConnectorUnavailable, kind)
	}
	_, err := connector.Attempt(ctx, domain.Request{Target: args[0], Args: args[1:]})
	return SignalContinue, err
}

func (d *Dispatcher) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Dispatcher) debug(msg string, fields map[string]interface{}) {
	if d.Logger != nil {
		d.Logger.Debug(msg, fields)
	}
}

// reported marks an error whose message is already on the console.
type reported struct{ err error }

func (r reported) Error() string { return r.err.Error() }
func (r reported) Unwrap() error { return r.err }

// IsReported reports whether err was already rendered by the dispatcher, so
// callers must not print it again.
func IsReported(err error) bool {
	var r reported
	return errors.As(err, &r)
}
