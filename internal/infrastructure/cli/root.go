package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vmodem/vmodem99a/internal/app"
	"github.com/vmodem/vmodem99a/internal/pkg/filesystem"
	"github.com/vmodem/vmodem99a/internal/version"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// Interrupts is forwarded to the REPL driver.
	Interrupts <-chan os.Signal
	// LogFile overrides the diagnostic log location ("-" disables it).
	LogFile string
}

// NewRootCmd wires the cobra root command. With no arguments it starts the
// REPL; otherwise the first argument is run as a single modem command.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	var (
		verbose    = opts.Verbose
		configPath string
	)

	root := &cobra.Command{
		Use:     "vmodem [command] [args...]",
		Short:   "VModem Model 99/A - Virtual Modem Terminal",
		Long:    "VModem 99/A dials HTTP, wget, ssh and telnet the way a Hayes modem would, keeping a phone book of every call.",
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := NewInput(cmd.InOrStdin(), cmd.OutOrStdout(), filepath.Join(filesystem.DataDir(), "repl_history"))
			console := NewConsole(cmd.OutOrStdout(), input)

			container, err := app.BuildContainer(cmd.Context(), app.Options{
				Verbose:    verbose,
				ConfigPath: configPath,
				Console:    console,
				LogFile:    opts.LogFile,
			})
			if err != nil {
				return err
			}
			defer container.Close()

			driver := &Driver{
				Dispatcher: container.Dispatcher,
				Console:    console,
				Reader:     input,
				Settings:   container.Settings,
				Interrupts: opts.Interrupts,
			}
			if len(args) == 0 {
				return driver.Interactive(cmd.Context())
			}
			return driver.Once(cmd.Context(), args[0], args[1:])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(ctx)
	root.SetVersionTemplate(versionTemplate())

	// URLs and client options after the command belong to the command
	root.Flags().SetInterspersed(false)
	root.Flags().BoolVarP(&verbose, "verbose", "v", verbose, "Mirror diagnostic logs to stderr at debug level")
	root.Flags().StringVarP(&configPath, "config", "c", "", "Settings file (default ~/.vmodem99a/config.yaml)")
	return root
}

func versionTemplate() string {
	text := fmt.Sprintf("VModem 99/A version %s\n", version.Version)
	if version.Commit != "" {
		text += fmt.Sprintf("Commit: %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		text += fmt.Sprintf("Built: %s\n", version.BuildDate)
	}
	return text + fmt.Sprintf("Go version: %s\n", runtime.Version())
}
