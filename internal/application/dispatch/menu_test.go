package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vmodem/vmodem99a/internal/domain"
)

func TestConfigMenu(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		check   func(t *testing.T, cfg domain.Config)
		success string
	}{
		{
			name:    "standard baud rate",
			answers: []string{"1", "9600"},
			check:   func(t *testing.T, cfg domain.Config) { wantInt(t, cfg.BaudRate, 9600) },
			success: "Baud rate set to 9600",
		},
		{
			name:    "non-standard positive baud rate",
			answers: []string{"1", " 4800 "},
			check:   func(t *testing.T, cfg domain.Config) { wantInt(t, cfg.BaudRate, 4800) },
			success: "Baud rate set to 4800",
		},
		{
			name:    "connection type",
			answers: []string{"2", "v92"},
			check:   func(t *testing.T, cfg domain.Config) { wantString(t, cfg.ConnectionType, "v92") },
			success: "Connection type set to v92",
		},
		{
			name:    "toggle sound",
			answers: []string{"3"},
			check: func(t *testing.T, cfg domain.Config) {
				if cfg.SoundEnabled {
					t.Error("sound still enabled")
				}
			},
			success: "Sound disabled",
		},
		{
			name:    "log level",
			answers: []string{"7", "DEBUG"},
			check:   func(t *testing.T, cfg domain.Config) { wantString(t, cfg.LogLevel, "debug") },
			success: "Log level set to debug",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.console.answers = tt.answers

			if _, err := f.d.Dispatch(context.Background(), "config"); err != nil {
				t.Fatalf("config error: %v", err)
			}
			if f.store.saves != 1 {
				t.Fatalf("saves = %d, want 1", f.store.saves)
			}
			tt.check(t, f.store.cfg)
			if diff := cmp.Diff(f.store.cfg, f.d.Settings.Current()); diff != "" {
				t.Fatalf("live config differs from saved (-saved +live):\n%s", diff)
			}
			if !containsLine(f.console.lines, "ok: "+tt.success) {
				t.Fatalf("missing confirmation %q in %v", tt.success, f.console.lines)
			}
		})
	}
}

func TestConfigMenuRejectsInvalidBaud(t *testing.T) {
	for _, answer := range []string{"fast", "0", "-300"} {
		t.Run(answer, func(t *testing.T) {
			f := newFixture(t)
			f.console.answers = []string{"1", answer}

			_, err := f.d.Dispatch(context.Background(), "configure")
			var validation *domain.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if diff := cmp.Diff([]string{"Invalid baud rate"}, f.console.errors()); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
			if f.store.saves != 0 || f.d.Settings.Current().BaudRate != domain.DefaultBaudRate {
				t.Fatalf("invalid baud was applied: saves=%d", f.store.saves)
			}
		})
	}
}

func TestConfigMenuSaveFailure(t *testing.T) {
	f := newFixture(t)
	f.store.saveErr = errors.New("read-only file system")
	f.console.answers = []string{"3"}

	_, err := f.d.Dispatch(context.Background(), "config")
	var persist *domain.PersistError
	if !errors.As(err, &persist) {
		t.Fatalf("expected PersistError, got %v", err)
	}
	if diff := cmp.Diff([]string{"Could not save /tmp/vmodem/config.yaml"}, f.console.errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !f.d.Settings.Current().SoundEnabled {
		t.Fatal("unsaved toggle became visible")
	}
}

func TestConfigMenuResetAndDiff(t *testing.T) {
	f := newFixture(t)
	f.console.answers = []string{"1", "300"}
	if _, err := f.d.Dispatch(context.Background(), "config"); err != nil {
		t.Fatal(err)
	}

	f.console.lines = nil
	f.console.answers = []string{"6"}
	if _, err := f.d.Dispatch(context.Background(), "config"); err != nil {
		t.Fatal(err)
	}
	diff := strings.Join(f.console.lines, "\n")
	if !strings.Contains(diff, "1200") || !strings.Contains(diff, "300") {
		t.Fatalf("diff does not show the baud change:\n%s", diff)
	}

	f.console.answers = []string{"4"}
	if _, err := f.d.Dispatch(context.Background(), "config"); err != nil {
		t.Fatal(err)
	}
	if got := f.d.Settings.Current(); got != domain.DefaultConfig() {
		t.Fatalf("after reset = %+v", got)
	}

	f.console.lines = nil
	f.console.answers = []string{"6"}
	if _, err := f.d.Dispatch(context.Background(), "config"); err != nil {
		t.Fatal(err)
	}
	if !containsLine(f.console.lines, "muted: No changes from defaults") {
		t.Fatalf("lines = %v", f.console.lines)
	}
}

func TestConfigMenuBackAndEndOfInput(t *testing.T) {
	for _, answers := range [][]string{{"5"}, {"9"}, nil, {"1"}} {
		f := newFixture(t)
		f.console.answers = answers
		if _, err := f.d.Dispatch(context.Background(), "config"); err != nil {
			t.Fatalf("answers %v: %v", answers, err)
		}
		if f.store.saves != 0 {
			t.Fatalf("answers %v saved the config", answers)
		}
	}
}

func wantInt(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func wantString(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
