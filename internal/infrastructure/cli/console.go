package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vmodem/vmodem99a/assets"
	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// LineReader answers a single prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type palette struct {
	status  lipgloss.Style
	errorL  lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	notice  lipgloss.Style
	effect  lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
	title   lipgloss.Style
	accent  lipgloss.Style
	kind    lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		status:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		errorL:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		ok:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("11")),
		effect:  r.NewStyle().Foreground(lipgloss.Color("14")),
		muted:   r.NewStyle().Faint(true),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		title:   r.NewStyle().Foreground(lipgloss.Color("13")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("11")),
		kind:    r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// Console renders modem output. Colors are dropped automatically when out
// is not a terminal.
type Console struct {
	out    io.Writer
	input  LineReader
	colors palette
	clear  bool
}

// NewConsole builds a console writing to out and reading answers from input.
func NewConsole(out io.Writer, input LineReader) *Console {
	return &Console{
		out:    out,
		input:  input,
		colors: newPalette(lipgloss.NewRenderer(out)),
		clear:  isTerminal(out),
	}
}

func (c *Console) Status(msg string) {
	c.labelled(c.colors.status, "[STATUS]", msg)
}

func (c *Console) Success(msg string) {
	c.labelled(c.colors.ok, "[OK]", msg)
}

func (c *Console) Error(msg string) {
	c.labelled(c.colors.errorL, "[ERROR]", msg)
}

func (c *Console) Warn(msg string) {
	c.labelled(c.colors.warn, "[WARN]", msg)
}

func (c *Console) Notice(msg string)  { c.Println(c.colors.notice.Render(msg)) }
func (c *Console) Effect(msg string)  { c.Println(c.colors.effect.Render(msg)) }
func (c *Console) Muted(msg string)   { c.Println(c.colors.muted.Render(msg)) }
func (c *Console) Heading(msg string) { c.Println(c.colors.heading.Render(msg)) }

func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Field prints one "name: value" pair, such as a response header.
func (c *Console) Field(name, value string) {
	c.Println(c.colors.effect.Render(name) + ": " + c.colors.muted.Render(value))
}

// Entry prints one phone book line: MM-DD HH:MM TYPE target STATUS (Nms).
func (c *Console) Entry(entry domain.HistoryEntry) {
	status := c.colors.warn
	switch entry.Status {
	case domain.StatusSuccess:
		status = c.colors.ok
	case domain.StatusFailed:
		status = c.colors.errorL
	}
	c.Println(fmt.Sprintf("  %s %s %s %s (%sms)",
		c.colors.muted.Render(entry.Timestamp.Format(domain.PhonebookTimeFormat)),
		c.colors.kind.Render(entry.ConnectionType),
		entry.Target,
		status.UnsetBold().Render(string(entry.Status)),
		c.colors.muted.Render(fmt.Sprint(entry.DurationMS)),
	))
}

// Banner prints the title block with the current line settings.
func (c *Console) Banner(cfg domain.Config) {
	rule := c.colors.muted.Render(strings.Repeat("═", 60))
	c.Println(c.colors.heading.Render(strings.TrimRight(assets.Banner, "\n")))
	c.Println(rule)
	c.Println(c.colors.title.Render("Virtual Modem Terminal v1.0 - Hayes Compatible"))
	c.Println(fmt.Sprintf("%s %s | %s %s",
		c.colors.muted.Render("Baud Rate:"),
		c.colors.accent.Render(fmt.Sprint(cfg.BaudRate)),
		c.colors.muted.Render("Protocol:"),
		c.colors.accent.Render(cfg.ConnectionType),
	))
	c.Println(rule)
	c.Println("")
}

// Clear wipes a terminal screen; it does nothing on redirected output.
func (c *Console) Clear() {
	if c.clear {
		fmt.Fprint(c.out, "\033[H\033[2J")
	}
}

func (c *Console) ReadLine(prompt string) (string, error) {
	if c.input == nil {
		return "", io.EOF
	}
	return c.input.ReadLine(prompt)
}

func (c *Console) labelled(style lipgloss.Style, label, msg string) {
	c.Println(style.Render(label) + " " + msg)
}

var _ ports.Console = (*Console)(nil)
