package effects

import (
	"fmt"
	"time"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

const (
	toneDial       = "ATDT"
	toneHangup     = "+++ATH"
	toneConnectFmt = "CONNECT %d"
)

// Effects prints the themed line of each lifecycle step, starts the matching
// tone when sound is enabled, and then holds for the step's fixed delay.
type Effects struct {
	console  ports.Console
	tone     ports.ToneGenerator
	settings ports.SettingsReader

	// Sleep is replaced in tests.
	Sleep func(time.Duration)
}

// New wires the effects to the console and the tone generator.
func New(console ports.Console, tone ports.ToneGenerator, settings ports.SettingsReader) *Effects {
	return &Effects{
		console:  console,
		tone:     tone,
		settings: settings,
		Sleep:    time.Sleep,
	}
}

func (e *Effects) DialTone() {
	e.step("♪ Dialing...", toneDial, domain.DialToneDelay)
}

func (e *Effects) Handshake() {
	baud := e.settings.Current().BaudRate
	e.step("♪ Handshaking...", fmt.Sprintf(toneConnectFmt, baud), domain.HandshakeDelay)
}

func (e *Effects) Disconnect() {
	e.step("♪ Disconnecting...", toneHangup, domain.DisconnectDelay)
}

func (e *Effects) step(line, toneText string, delay time.Duration) {
	e.console.Effect(line)
	cfg := e.settings.Current()
	if cfg.SoundEnabled && e.tone != nil {
		e.tone.Play(toneText, cfg.BaudRate)
	}
	if e.Sleep != nil {
		e.Sleep(delay)
	}
}

var _ ports.Effects = (*Effects)(nil)
