package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	appconfig "github.com/vmodem/vmodem99a/internal/application/config"
	"github.com/vmodem/vmodem99a/internal/application/dispatch"
	"github.com/vmodem/vmodem99a/internal/application/doctor"
	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/infrastructure/config"
	"github.com/vmodem/vmodem99a/internal/infrastructure/connectors"
	"github.com/vmodem/vmodem99a/internal/infrastructure/effects"
	"github.com/vmodem/vmodem99a/internal/infrastructure/executor"
	"github.com/vmodem/vmodem99a/internal/infrastructure/history"
	"github.com/vmodem/vmodem99a/internal/pkg/filesystem"
	"github.com/vmodem/vmodem99a/internal/pkg/logger"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// EnvDebug forces verbose logging, like --verbose.
const EnvDebug = "VMODEM_DEBUG"

// Options controls how the container is built.
type Options struct {
	Verbose    bool
	ConfigPath string
	// Console renders every user-facing line; required.
	Console ports.Console
	// Tone and Runner default to minimodem and the host process runner.
	Tone   ports.ToneGenerator
	Runner ports.ProcessRunner
	// LogFile defaults to vmodem.log in the data directory; "-" disables it.
	LogFile string
}

// Container wires up application services with infrastructure adapters.
// It is the only place that knows concrete types.
type Container struct {
	Settings    *appconfig.Settings
	ConfigStore *config.FileStore
	History     *history.Log
	Effects     *effects.Effects
	Connectors  map[domain.ConnectionKind]ports.Connector
	Doctor      *doctor.Service
	Dispatcher  *dispatch.Dispatcher
	Console     ports.Console
	Logger      *logger.SlogLogger

	closers []io.Closer
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	verbose := opts.Verbose || isTruthy(os.Getenv(EnvDebug))
	logFile := opts.LogFile
	switch logFile {
	case "":
		logFile = filepath.Join(filesystem.DataDir(), "vmodem.log")
	case "-":
		logFile = ""
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), domain.DirectoryPermissions); err != nil {
			logFile = ""
		}
	}
	log := logger.New(logger.Options{Level: domain.DefaultLogLevel, Verbose: verbose, FilePath: logFile})

	store := config.NewFileStore(opts.ConfigPath, log)
	settings := appconfig.NewSettings(ctx, store)
	log.SetLevel(settings.Current().LogLevel)
	settings.OnChange(func(cfg domain.Config) {
		log.SetLevel(cfg.LogLevel)
		log.Info("settings saved", map[string]interface{}{
			"baud_rate":       cfg.BaudRate,
			"connection_type": cfg.ConnectionType,
			"sound_enabled":   cfg.SoundEnabled,
		})
	})

	c := &Container{
		Settings:    settings,
		ConfigStore: store,
		Console:     opts.Console,
		Logger:      log,
		closers:     []io.Closer{log},
	}

	repo := c.historyRepository(settings.Current().HistoryBackend)
	c.History = history.NewLog(repo, log)

	tone := opts.Tone
	if tone == nil {
		tone = effects.NewMinimodemTone()
	}
	c.Effects = effects.New(opts.Console, tone, settings)

	runner := opts.Runner
	if runner == nil {
		runner = executor.NewRunner()
	}
	deps := connectors.Deps{
		Console:  opts.Console,
		Effects:  c.Effects,
		Recorder: c.History,
		Logger:   log,
	}
	c.Connectors = map[domain.ConnectionKind]ports.Connector{
		domain.KindHTTP:     connectors.NewHTTP(deps, nil),
		domain.KindDownload: connectors.NewDownload(deps, runner),
		domain.KindSSH:      connectors.NewSSH(deps, runner),
		domain.KindTelnet:   connectors.NewTelnet(deps, runner),
	}

	c.Doctor = &doctor.Service{Settings: settings, HistoryPath: c.History.Path()}

	c.Dispatcher = &dispatch.Dispatcher{
		Connectors: c.Connectors,
		Settings:   settings,
		History:    c.History,
		Effects:    c.Effects,
		Console:    opts.Console,
		Doctor:     c.Doctor,
		Logger:     log,
	}

	log.Debug("container ready", map[string]interface{}{
		"config":  store.Path(),
		"history": c.History.Path(),
		"verbose": verbose,
	})
	return c, nil
}

// historyRepository picks the configured backend. An unusable database
// falls back to the JSON file so the phone book keeps working.
func (c *Container) historyRepository(backend string) ports.HistoryRepository {
	if backend == domain.HistoryBackendSQLite {
		store, err := history.OpenSQLiteStore("")
		if err == nil {
			c.closers = append(c.closers, store)
			return store
		}
		c.Logger.Warn("sqlite history unavailable, using json file", map[string]interface{}{"error": err.Error()})
	}
	return history.NewFileStore("")
}

// Close releases the database handle and flushes the log file.
func (c *Container) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}

func isTruthy(value string) bool {
	return value == "1" || strings.EqualFold(value, "true")
}
