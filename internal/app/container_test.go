package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/pkg/filesystem"
	"github.com/vmodem/vmodem99a/internal/ports"
)

type nullConsole struct{ ports.Console }

type silentTone struct{}

func (silentTone) Play(string, int) {}

func TestBuildContainerWiresEveryConnector(t *testing.T) {
	home := t.TempDir()
	t.Setenv(filesystem.EnvDataDir, home)

	c, err := BuildContainer(context.Background(), Options{Console: nullConsole{}, Tone: silentTone{}})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	defer c.Close()

	for _, kind := range domain.ConnectionKinds {
		connector, ok := c.Connectors[kind]
		if !ok {
			t.Fatalf("no connector for %s", kind)
		}
		if connector.Kind() != kind {
			t.Fatalf("connector for %s reports %s", kind, connector.Kind())
		}
	}
	if got, want := c.History.Path(), filepath.Join(home, "history.json"); got != want {
		t.Fatalf("history path = %q, want %q", got, want)
	}
	if c.Dispatcher.Settings != c.Settings {
		t.Fatal("dispatcher does not share the live settings")
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); !os.IsNotExist(err) {
		t.Fatalf("building the container wrote the config file: %v", err)
	}
}

func TestBuildContainerSQLiteBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv(filesystem.EnvDataDir, home)
	cfgPath := filepath.Join(home, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("history_backend: sqlite\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := BuildContainer(context.Background(), Options{Console: nullConsole{}, ConfigPath: cfgPath, LogFile: "-"})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if got, want := c.History.Path(), filepath.Join(home, "history.db"); got != want {
		t.Fatalf("history path = %q, want %q", got, want)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}

func TestSettingsChangeUpdatesLogLevel(t *testing.T) {
	t.Setenv(filesystem.EnvDataDir, t.TempDir())
	t.Setenv(EnvDebug, "")

	c, err := BuildContainer(context.Background(), Options{Console: nullConsole{}, LogFile: "-"})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, err := c.Settings.Update(func(cfg *domain.Config) error { return cfg.SetLogLevel("error") }); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got := c.Logger.Level().String(); got != "ERROR" {
		t.Fatalf("logger level = %s, want ERROR", got)
	}
}
