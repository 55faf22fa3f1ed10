package connectors

import (
	"context"
	"fmt"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Session hands the terminal to an interactive client (ssh or telnet) until it
// exits. The disconnect effect runs after every attempt.
type Session struct {
	Deps
	runner  ports.ProcessRunner
	kind    domain.ConnectionKind
	Program string
	label   string
	// argv maps a request onto the logged target and the client arguments.
	argv func(domain.Request) (string, []string)
}

// NewSSH passes the target through to ssh untouched.
func NewSSH(deps Deps, runner ports.ProcessRunner) *Session {
	return &Session{
		Deps:    deps,
		runner:  runner,
		kind:    domain.KindSSH,
		Program: "ssh",
		label:   "SSH",
		argv: func(req domain.Request) (string, []string) {
			return req.Target, []string{req.Target}
		},
	}
}

// NewTelnet runs telnet against host and port; port defaults to 23.
func NewTelnet(deps Deps, runner ports.ProcessRunner) *Session {
	return &Session{
		Deps:    deps,
		runner:  runner,
		kind:    domain.KindTelnet,
		Program: "telnet",
		label:   "Telnet",
		argv: func(req domain.Request) (string, []string) {
			port := req.Arg(0, domain.DefaultTelnetPort)
			return req.Target + ":" + port, []string{req.Target, port}
		},
	}
}

func (s *Session) Kind() domain.ConnectionKind { return s.kind }

// Attempt implements ports.Connector.
func (s *Session) Attempt(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	target, args := s.argv(req)
	c := s.begin(s.kind, target)

	s.Console.Notice(fmt.Sprintf("Connecting via %s protocol...", s.kind))
	code, err := s.runner.Run(ctx, s.Program, args...)
	c.stop()

	status := domain.StatusForError(err)
	if err == nil {
		status = domain.StatusForExit(code)
	}
	switch status {
	case domain.StatusSuccess:
		s.Effects.Handshake()
		s.Console.Success(fmt.Sprintf("%s connection completed", s.label))
	case domain.StatusFailed:
		err = &domain.TransportError{
			Kind:   s.kind,
			Target: target,
			Err:    &domain.ExitError{Program: s.Program, Code: code},
		}
	}
	s.Effects.Disconnect()
	return c.finish(err)
}

var _ ports.Connector = (*Session)(nil)
