package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/chzyer/readline"

	appconfig "github.com/vmodem/vmodem99a/internal/application/config"
	"github.com/vmodem/vmodem99a/internal/application/dispatch"
	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

type scriptedReader struct {
	lines []string
	end   error
	reads int
}

func (r *scriptedReader) ReadCommand(string, readline.AutoCompleter) (string, error) {
	r.reads++
	if len(r.lines) == 0 {
		return "", r.end
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

// blockingReader never answers, like a user who walked away.
type blockingReader struct{}

func (blockingReader) ReadCommand(string, readline.AutoCompleter) (string, error) {
	select {}
}

type quietEffects struct{ disconnects int }

func (e *quietEffects) DialTone()   {}
func (e *quietEffects) Handshake()  {}
func (e *quietEffects) Disconnect() { e.disconnects++ }

type memoryStore struct{ cfg domain.Config }

func (s *memoryStore) Load(context.Context) (domain.Config, error) { return s.cfg, nil }
func (s *memoryStore) Path() string                                { return "config.yaml" }

func (s *memoryStore) Save(cfg domain.Config) error {
	s.cfg = cfg
	return nil
}

type failingConnector struct{ calls int }

func (f *failingConnector) Kind() domain.ConnectionKind { return domain.KindSSH }

func (f *failingConnector) Attempt(_ context.Context, req domain.Request) (domain.Outcome, error) {
	f.calls++
	err := &domain.TransportError{Kind: domain.KindSSH, Target: req.Target, Err: &domain.ExitError{Program: "ssh", Code: 255}}
	return domain.Outcome{Kind: domain.KindSSH, Target: req.Target, Status: domain.StatusFailed, Err: err}, err
}

type historyStub struct{}

func (historyStub) Recent(int) []domain.HistoryEntry { return nil }
func (historyStub) Len() int                         { return 0 }

func newDriver(reader CommandReader) (*Driver, *bytes.Buffer, *quietEffects, *failingConnector) {
	var out bytes.Buffer
	console := NewConsole(&out, nil)
	effects := &quietEffects{}
	ssh := &failingConnector{}
	settings := appconfig.NewSettings(context.Background(), &memoryStore{cfg: domain.DefaultConfig()})
	d := &dispatch.Dispatcher{
		Connectors: map[domain.ConnectionKind]ports.Connector{domain.KindSSH: ssh},
		Settings:   settings,
		History:    historyStub{},
		Effects:    effects,
		Console:    console,
	}
	return &Driver{Dispatcher: d, Console: console, Reader: reader, Settings: settings}, &out, effects, ssh
}

func TestInteractiveContinuesPastErrorsAndQuits(t *testing.T) {
	reader := &scriptedReader{lines: []string{"", "bogus", "ssh host", "quit", "help"}, end: io.EOF}
	driver, out, effects, ssh := newDriver(reader)

	if err := driver.Interactive(context.Background()); err != nil {
		t.Fatalf("Interactive error: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Ready! Type 'help' for commands or 'quit' to exit.",
		"[ERROR] Unknown command: bogus (type 'help' for commands)",
		"[ERROR] SSH connection to host failed: ssh exited with status 255",
		"73! Thanks for using VModem 99/A",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "VModem Model 99/A Help") {
		t.Error("commands after quit were executed")
	}
	if ssh.calls != 1 || effects.disconnects != 1 || reader.reads != 4 {
		t.Errorf("ssh calls=%d disconnects=%d reads=%d", ssh.calls, effects.disconnects, reader.reads)
	}
}

func TestInteractiveEndOfInputHangsUp(t *testing.T) {
	for _, end := range []error{io.EOF, readline.ErrInterrupt} {
		driver, out, effects, _ := newDriver(&scriptedReader{end: end})
		if err := driver.Interactive(context.Background()); err != nil {
			t.Fatalf("Interactive(%v) error: %v", end, err)
		}
		if effects.disconnects != 1 || !strings.Contains(out.String(), "Hanging up modem...") {
			t.Fatalf("no hang up on %v:\n%s", end, out.String())
		}
	}
}

func TestInteractiveInterruptAtPrompt(t *testing.T) {
	driver, out, effects, _ := newDriver(blockingReader{})
	interrupts := make(chan os.Signal, 1)
	driver.Interrupts = interrupts

	done := make(chan error, 1)
	go func() { done <- driver.Interactive(context.Background()) }()
	// the driver drains stale interrupts before reading, so keep sending
	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("Interactive error: %v", err)
			}
			if effects.disconnects != 1 || !strings.Contains(out.String(), "73! Thanks for using VModem 99/A") {
				t.Fatalf("no farewell:\n%s", out.String())
			}
			return
		case interrupts <- os.Interrupt:
		case <-deadline:
			t.Fatal("interrupt at the prompt did not end the session")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestOnceReturnsRenderedFailure(t *testing.T) {
	driver, out, _, _ := newDriver(nil)

	err := driver.Once(context.Background(), "ssh", []string{"host"})
	if err == nil || !dispatch.IsReported(err) {
		t.Fatalf("err = %v", err)
	}
	if n := strings.Count(out.String(), "[ERROR]"); n != 1 {
		t.Fatalf("%d error lines:\n%s", n, out.String())
	}

	if err := driver.Once(context.Background(), "help", nil); err != nil {
		t.Fatalf("help error: %v", err)
	}
}
