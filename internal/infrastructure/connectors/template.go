package connectors

import (
	"fmt"
	"time"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Deps are the collaborators every connector shares.
type Deps struct {
	Console  ports.Console
	Effects  ports.Effects
	Recorder ports.ConnectionRecorder
	Logger   ports.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// call tracks one attempt from the status line to its history entry.
type call struct {
	deps   Deps
	kind   domain.ConnectionKind
	target string
	start  time.Time
	end    time.Time
}

// begin prints the status line and plays the dial tone.
func (d Deps) begin(kind domain.ConnectionKind, target string) *call {
	c := &call{deps: d, kind: kind, target: target, start: d.now()}
	d.Console.Status(fmt.Sprintf("Initializing %s connection to %s", kind, target))
	d.Effects.DialTone()
	return c
}

// stop freezes the elapsed time once the transport has returned.
func (c *call) stop() {
	if c.end.IsZero() {
		c.end = c.deps.now()
	}
}

// finish records exactly one history entry and builds the outcome. The
// status follows from err.
func (c *call) finish(err error) (domain.Outcome, error) {
	c.stop()
	out := domain.Outcome{
		Kind:     c.kind,
		Target:   c.target,
		Status:   domain.StatusForError(err),
		Duration: c.end.Sub(c.start),
		Err:      err,
	}
	c.deps.Recorder.Record(domain.NewHistoryEntry(c.end, c.kind, c.target, out.Status, out.Duration))

	if c.deps.Logger != nil {
		fields := map[string]interface{}{
			"kind":        string(c.kind),
			"target":      c.target,
			"status":      string(out.Status),
			"duration_ms": out.Duration.Milliseconds(),
		}
		switch {
		case out.Succeeded():
			c.deps.Logger.Info("call completed", fields)
		case out.Status == domain.StatusError:
			c.deps.Logger.Error("call could not be placed", err, fields)
		default:
			c.deps.Logger.Warn("call failed", fields)
		}
	}
	return out, err
}
