package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Input reads prompts from the user.
//
// On a terminal every prompt gets its own readline instance, closed before
// the answer is returned, so ssh and telnet own stdin between prompts.
// Redirected input is read line by line without editing.
type Input struct {
	in          io.Reader
	out         io.Writer
	terminal    bool
	historyFile string
	scanner     *bufio.Scanner
}

// NewInput reads from in; historyFile keeps command history across prompts
// and runs and may be empty.
func NewInput(in io.Reader, out io.Writer, historyFile string) *Input {
	return &Input{
		in:          in,
		out:         out,
		terminal:    isTerminal(in) && isTerminal(out),
		historyFile: historyFile,
		scanner:     bufio.NewScanner(in),
	}
}

// ReadLine answers a menu prompt. It never touches the command history.
func (i *Input) ReadLine(prompt string) (string, error) {
	return i.read(prompt, nil, false)
}

// ReadCommand reads a modem command with tab completion and history.
func (i *Input) ReadCommand(prompt string, completer readline.AutoCompleter) (string, error) {
	return i.read(prompt, completer, true)
}

func (i *Input) read(prompt string, completer readline.AutoCompleter, history bool) (string, error) {
	if !i.terminal {
		fmt.Fprint(i.out, prompt)
		if !i.scanner.Scan() {
			if err := i.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return i.scanner.Text(), nil
	}

	cfg := &readline.Config{
		Prompt:          prompt,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		Stdout:          i.out,
	}
	if history {
		cfg.HistoryFile = i.historyFile
	} else {
		cfg.DisableAutoSaveHistory = true
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return "", err
	}
	defer rl.Close()
	return rl.Readline()
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
