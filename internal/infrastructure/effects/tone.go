package effects

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/vmodem/vmodem99a/internal/ports"
)

// MinimodemTone pipes the AT text through minimodem. Nothing waits for it and
// a missing minimodem is silently ignored.
type MinimodemTone struct {
	Shell string
}

// NewMinimodemTone returns a tone generator using /bin/sh.
func NewMinimodemTone() *MinimodemTone {
	return &MinimodemTone{Shell: "sh"}
}

// Command returns the shell pipeline used for text at the given baud rate.
func (m *MinimodemTone) Command(text string, baud int) string {
	quoted := strings.ReplaceAll(text, "'", `'\''`)
	return fmt.Sprintf("echo '%s' | minimodem --tx -a %d", quoted, baud)
}

// Play implements ports.ToneGenerator.
func (m *MinimodemTone) Play(text string, baud int) {
	c := exec.Command(m.Shell, "-c", m.Command(text, baud))
	go func() {
		// stdio stays nil so the tone never writes to the terminal
		if err := c.Start(); err != nil {
			return
		}
		_ = c.Wait()
	}()
}

var _ ports.ToneGenerator = (*MinimodemTone)(nil)
