package executor

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Runner starts external clients (wget, ssh, telnet) on the host.
//
// Processes are never tied to the caller's cancellation: an interrupt at the
// terminal reaches the child directly, and the REPL only stops between calls.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner builds a runner attached to the process terminal.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements ports.ProcessRunner.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (int, error) {
	c := exec.CommandContext(context.WithoutCancel(ctx), name, args...)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	if err := c.Start(); err != nil {
		return -1, &domain.SpawnError{Program: name, Err: err}
	}
	return exitCode(c.Wait())
}

// Stream implements ports.ProcessRunner. Stdout is discarded; stderr is split
// on carriage returns as well as newlines so progress bars arrive per update.
func (r *Runner) Stream(ctx context.Context, name string, args []string, onLine func(string)) (int, error) {
	c := exec.CommandContext(context.WithoutCancel(ctx), name, args...)
	stderr, err := c.StderrPipe()
	if err != nil {
		return -1, &domain.SpawnError{Program: name, Err: err}
	}
	if err := c.Start(); err != nil {
		return -1, &domain.SpawnError{Program: name, Err: err}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(stderr)
		scanner.Split(ScanProgressLines)
		for scanner.Scan() {
			if onLine != nil {
				onLine(scanner.Text())
			}
		}
		// drain whatever the scanner refused so the child never blocks on a full pipe
		_, _ = io.Copy(io.Discard, stderr)
	}()
	<-done

	return exitCode(c.Wait())
}

// ScanProgressLines is a bufio.SplitFunc that treats both '\r' and '\n' as
// line terminators and drops empty tokens.
func ScanProgressLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && (data[start] == '\r' || data[start] == '\n') {
		start++
	}
	if atEOF && start == len(data) {
		return len(data), nil, nil
	}
	if i := bytes.IndexAny(data[start:], "\r\n"); i >= 0 {
		return start + i + 1, data[start : start+i], nil
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

var _ ports.ProcessRunner = (*Runner)(nil)
