package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/vmodem/vmodem99a/internal/application/dispatch"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Prompt is shown before every interactive command.
const Prompt = "VModem> "

// CommandReader reads one command line.
type CommandReader interface {
	ReadCommand(prompt string, completer readline.AutoCompleter) (string, error)
}

// Driver runs the dispatcher either as a REPL or for a single command.
type Driver struct {
	Dispatcher *dispatch.Dispatcher
	Console    ports.Console
	Reader     CommandReader
	Settings   ports.SettingsReader
	// Interrupts delivers SIGINT. Interrupts raised while a call is in
	// flight belong to the external client and are dropped.
	Interrupts <-chan os.Signal
}

// Interactive prints the banner and reads commands until quit, end of input
// or an interrupt at the prompt.
func (d *Driver) Interactive(ctx context.Context) error {
	d.Console.Clear()
	d.Console.Banner(d.Settings.Current())
	d.Console.Notice("Ready! Type 'help' for commands or 'quit' to exit.")
	d.Console.Println("")

	completer := newCompleter()
	for {
		d.drainInterrupts()
		line, err := d.readCommand(ctx, completer)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) || errors.Is(err, context.Canceled) {
				d.Console.Println("")
				d.Dispatcher.Hangup()
				return nil
			}
			d.Console.Error("Input error: " + err.Error())
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		// errors are already on the console; the session goes on
		signal, _ := d.Dispatcher.Dispatch(ctx, line)
		if signal == dispatch.SignalQuit {
			return nil
		}
		d.Console.Println("")
	}
}

// Once prints the banner and runs a single command. Any failure is returned
// so the process can exit non-zero.
func (d *Driver) Once(ctx context.Context, command string, args []string) error {
	d.Console.Clear()
	d.Console.Banner(d.Settings.Current())
	_, err := d.Dispatcher.Run(ctx, command, args)
	return err
}

type readResult struct {
	line string
	err  error
}

// readCommand waits for a line, an interrupt or cancellation, whichever
// comes first.
func (d *Driver) readCommand(ctx context.Context, completer readline.AutoCompleter) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	result := make(chan readResult, 1)
	go func() {
		line, err := d.Reader.ReadCommand(Prompt, completer)
		result <- readResult{line: line, err: err}
	}()
	select {
	case r := <-result:
		return r.line, r.err
	case <-d.Interrupts:
		return "", readline.ErrInterrupt
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (d *Driver) drainInterrupts() {
	for {
		select {
		case <-d.Interrupts:
		default:
			return
		}
	}
}

func newCompleter() *readline.PrefixCompleter {
	names := dispatch.Names()
	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
