package connectors

import (
	"context"
	"time"

	"github.com/vmodem/vmodem99a/internal/domain"
)

// events is the shared, ordered trace of console lines and effects.
type events struct{ log []string }

func (e *events) add(s string) { e.log = append(e.log, s) }

type traceConsole struct{ ev *events }

func (c traceConsole) Status(msg string)               { c.ev.add("status: " + msg) }
func (c traceConsole) Success(msg string)              { c.ev.add("ok: " + msg) }
func (c traceConsole) Error(msg string)                { c.ev.add("error: " + msg) }
func (c traceConsole) Warn(msg string)                 { c.ev.add("warn: " + msg) }
func (c traceConsole) Notice(msg string)               { c.ev.add("notice: " + msg) }
func (c traceConsole) Effect(msg string)               { c.ev.add("effect: " + msg) }
func (c traceConsole) Muted(msg string)                { c.ev.add("muted: " + msg) }
func (c traceConsole) Heading(msg string)              { c.ev.add("heading: " + msg) }
func (c traceConsole) Println(msg string)              { c.ev.add("line: " + msg) }
func (c traceConsole) Field(name, value string)        { c.ev.add("field: " + name + "=" + value) }
func (c traceConsole) Entry(domain.HistoryEntry)       {}
func (c traceConsole) Banner(domain.Config)            {}
func (c traceConsole) Clear()                          {}
func (c traceConsole) ReadLine(string) (string, error) { return "", nil }

type traceEffects struct{ ev *events }

func (e traceEffects) DialTone()   { e.ev.add("dial") }
func (e traceEffects) Handshake()  { e.ev.add("handshake") }
func (e traceEffects) Disconnect() { e.ev.add("disconnect") }

type memoryRecorder struct{ entries []domain.HistoryEntry }

func (r *memoryRecorder) Record(entry domain.HistoryEntry) { r.entries = append(r.entries, entry) }

type stubRunner struct {
	ev       *events
	code     int
	err      error
	stderr   []string
	program  string
	args     []string
	streamed bool
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) (int, error) {
	r.ev.add("run: " + name)
	r.program, r.args = name, args
	return r.code, r.err
}

func (r *stubRunner) Stream(_ context.Context, name string, args []string, onLine func(string)) (int, error) {
	r.ev.add("stream: " + name)
	r.program, r.args, r.streamed = name, args, true
	if r.err != nil {
		return -1, r.err
	}
	for _, line := range r.stderr {
		onLine(line)
	}
	return r.code, nil
}

// steppingClock advances by step on every reading.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func newDeps() (Deps, *events, *memoryRecorder) {
	ev := &events{}
	rec := &memoryRecorder{}
	deps := Deps{
		Console:  traceConsole{ev: ev},
		Effects:  traceEffects{ev: ev},
		Recorder: rec,
		Now:      steppingClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), 250*time.Millisecond),
	}
	return deps, ev, rec
}
