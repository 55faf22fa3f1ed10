package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmodem/vmodem99a/internal/domain"
)

// Command is one entry of the modem vocabulary.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Summary string
	run     func(ctx context.Context, d *Dispatcher, args []string) (Signal, error)
}

// commands is filled in init because help lists the table itself.
var commands []Command

func init() {
	commands = []Command{
		{
			Name:    "http",
			Usage:   "http <url> [method]",
			Summary: "Connect via HTTP (GET/HEAD)",
			run: func(ctx context.Context, d *Dispatcher, args []string) (Signal, error) {
				return d.connect(ctx, domain.KindHTTP, args, "URL")
			},
		},
		{
			Name:    "download",
			Aliases: []string{"dl"},
			Usage:   "download <url> [file]",
			Summary: "Download file via wget",
			run: func(ctx context.Context, d *Dispatcher, args []string) (Signal, error) {
				return d.connect(ctx, domain.KindDownload, args, "URL")
			},
		},
		{
			Name:    "ssh",
			Usage:   "ssh <host>",
			Summary: "Connect via SSH",
			run: func(ctx context.Context, d *Dispatcher, args []string) (Signal, error) {
				return d.connect(ctx, domain.KindSSH, args, "Host")
			},
		},
		{
			Name:    "telnet",
			Usage:   "telnet <host> [port]",
			Summary: "Connect via Telnet",
			run: func(ctx context.Context, d *Dispatcher, args []string) (Signal, error) {
				return d.connect(ctx, domain.KindTelnet, args, "Host")
			},
		},
		{
			Name:    "config",
			Aliases: []string{"configure"},
			Usage:   "config",
			Summary: "Configure modem settings",
			run: func(_ context.Context, d *Dispatcher, _ []string) (Signal, error) {
				return SignalContinue, d.configure()
			},
		},
		{
			Name:    "phonebook",
			Aliases: []string{"pb"},
			Usage:   "phonebook",
			Summary: "View connection history",
			run: func(_ context.Context, d *Dispatcher, _ []string) (Signal, error) {
				d.phonebook()
				return SignalContinue, nil
			},
		},
		{
			Name:    "doctor",
			Usage:   "doctor",
			Summary: "Check for wget, ssh, telnet and minimodem",
			run: func(ctx context.Context, d *Dispatcher, _ []string) (Signal, error) {
				d.doctor(ctx)
				return SignalContinue, nil
			},
		},
		{
			Name:    "clear",
			Aliases: []string{"cls"},
			Usage:   "clear",
			Summary: "Clear screen",
			run: func(_ context.Context, d *Dispatcher, _ []string) (Signal, error) {
				d.Console.Clear()
				d.Console.Banner(d.Settings.Current())
				return SignalContinue, nil
			},
		},
		{
			Name:    "help",
			Aliases: []string{"?"},
			Usage:   "help",
			Summary: "Show this help",
			run: func(_ context.Context, d *Dispatcher, _ []string) (Signal, error) {
				d.help()
				return SignalContinue, nil
			},
		},
		{
			Name:    "quit",
			Aliases: []string{"exit", "bye"},
			Usage:   "quit",
			Summary: "Exit VModem",
			run: func(_ context.Context, d *Dispatcher, _ []string) (Signal, error) {
				d.Hangup()
				return SignalQuit, nil
			},
		},
	}
}

var examples = []string{
	"http https://httpbin.org/ip",
	"download https://example.com/file.txt",
	"ssh user@example.com",
	"telnet towel.blinkenlights.nl",
}

// Commands returns the vocabulary in help order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// Names returns every command name and alias, for completion.
func Names() []string {
	var names []string
	for _, cmd := range commands {
		names = append(names, cmd.Name)
		names = append(names, cmd.Aliases...)
	}
	return names
}

// Lookup resolves a command name or alias.
func Lookup(name string) (Command, bool) {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd, true
		}
		for _, alias := range cmd.Aliases {
			if alias == name {
				return cmd, true
			}
		}
	}
	return Command{}, false
}

func (d *Dispatcher) help() {
	width := 0
	for _, cmd := range commands {
		if len(cmd.Usage) > width {
			width = len(cmd.Usage)
		}
	}
	d.Console.Heading("VModem Model 99/A Help")
	d.Console.Muted(strings.Repeat("═", 25))
	d.Console.Println("")
	d.Console.Heading("Available Commands:")
	for _, cmd := range commands {
		d.Console.Println(fmt.Sprintf("  %-*s - %s", width, cmd.Usage, cmd.Summary))
	}
	d.Console.Println("")
	d.Console.Heading("Examples:")
	for _, example := range examples {
		d.Console.Muted("  " + example)
	}
	d.Console.Println("")
}

func (d *Dispatcher) doctor(ctx context.Context) {
	if d.Doctor == nil {
		d.Console.Warn("Diagnostics unavailable")
		return
	}
	report := d.Doctor.Run(ctx)
	d.Console.Heading("VModem Diagnostics")
	for _, check := range report.Checks {
		line := fmt.Sprintf("%s: %s", check.Name, check.Details)
		if check.Status == domain.HealthOK {
			d.Console.Success(line)
		} else {
			d.Console.Warn(line)
		}
	}
	if missing := report.Missing(); len(missing) > 0 {
		d.Console.Muted(fmt.Sprintf("%d check(s) need attention: %s", len(missing), strings.Join(missing, ", ")))
	}
}
