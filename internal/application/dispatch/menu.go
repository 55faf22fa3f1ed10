package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	appconfig "github.com/vmodem/vmodem99a/internal/application/config"
	"github.com/vmodem/vmodem99a/internal/domain"
)

// configure runs one pass of the settings menu. Each change is saved before
// it is confirmed; a read error (end of input) just leaves the menu.
func (d *Dispatcher) configure() error {
	cfg := d.Settings.Current()
	d.Console.Heading("Modem Configuration")
	d.Console.Muted("────────────────────")
	d.Console.Println(fmt.Sprintf("1) Baud Rate (current: %d)", cfg.BaudRate))
	d.Console.Println(fmt.Sprintf("2) Connection Type (current: %s)", cfg.ConnectionType))
	d.Console.Println(fmt.Sprintf("3) Sound Enabled (current: %t)", cfg.SoundEnabled))
	d.Console.Println("4) Reset to defaults")
	d.Console.Println("5) Back to main menu")
	d.Console.Println("6) Show changes from defaults")
	d.Console.Println(fmt.Sprintf("7) Log Level (current: %s)", cfg.LogLevel))
	d.Console.Println("")

	choice, err := d.Console.ReadLine("Select option: ")
	if err != nil {
		return nil
	}

	switch strings.TrimSpace(choice) {
	case "1":
		d.Console.Println("Available baud rates: " + joinInts(domain.StandardBaudRates))
		answer, err := d.Console.ReadLine("Enter baud rate: ")
		if err != nil {
			return nil
		}
		rate, convErr := strconv.Atoi(strings.TrimSpace(answer))
		if convErr != nil {
			return &domain.ValidationError{Field: "baud_rate", Message: "Invalid baud rate", Err: convErr}
		}
		next, err := d.Settings.Update(func(c *domain.Config) error { return c.SetBaudRate(rate) })
		if err != nil {
			return err
		}
		d.Console.Success(fmt.Sprintf("Baud rate set to %d", next.BaudRate))
	case "2":
		d.Console.Println("Available types: " + strings.Join(domain.ConnectionTypes, ", "))
		answer, err := d.Console.ReadLine("Enter connection type: ")
		if err != nil {
			return nil
		}
		next, err := d.Settings.Update(func(c *domain.Config) error { return c.SetConnectionType(answer) })
		if err != nil {
			return err
		}
		d.Console.Success(fmt.Sprintf("Connection type set to %s", next.ConnectionType))
	case "3":
		next, err := d.Settings.Update(func(c *domain.Config) error {
			c.ToggleSound()
			return nil
		})
		if err != nil {
			return err
		}
		d.Console.Success("Sound " + next.SoundLabel())
	case "4":
		if _, err := d.Settings.Reset(); err != nil {
			return err
		}
		d.Console.Success("Configuration reset to defaults")
	case "6":
		diff := appconfig.Diff(cfg)
		if diff == "" {
			d.Console.Muted("No changes from defaults")
			return nil
		}
		for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
			d.Console.Muted(line)
		}
	case "7":
		d.Console.Println("Available levels: " + strings.Join(domain.LogLevels, ", "))
		answer, err := d.Console.ReadLine("Enter log level: ")
		if err != nil {
			return nil
		}
		next, err := d.Settings.Update(func(c *domain.Config) error { return c.SetLogLevel(answer) })
		if err != nil {
			return err
		}
		d.Console.Success(fmt.Sprintf("Log level set to %s", next.LogLevel))
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
