package doctor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Tool is an external client one of the connectors or effects relies on.
type Tool struct {
	Program string
	Purpose string
	// Sound marks tools only needed while sound is enabled.
	Sound bool
}

// DefaultTools lists every external program the modem drives.
var DefaultTools = []Tool{
	{Program: "wget", Purpose: "download"},
	{Program: "ssh", Purpose: "ssh"},
	{Program: "telnet", Purpose: "telnet"},
	{Program: "minimodem", Purpose: "modem sounds", Sound: true},
}

// Service runs environment diagnostics.
type Service struct {
	Settings    ports.Settings
	HistoryPath string
	Tools       []Tool
	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) domain.HealthReport {
	var checks []domain.HealthCheck

	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	tools := s.Tools
	if tools == nil {
		tools = DefaultTools
	}

	soundEnabled := true
	if s.Settings != nil {
		cfg := s.Settings.Current()
		soundEnabled = cfg.SoundEnabled
		checks = append(checks, ok("Config file", s.Settings.Path()))
	}
	if s.HistoryPath != "" {
		checks = append(checks, ok("Phone book", s.HistoryPath))
	}

	for _, tool := range tools {
		if ctx.Err() != nil {
			break
		}
		path, err := lookPath(tool.Program)
		switch {
		case err == nil:
			checks = append(checks, ok(tool.Program, path))
		case tool.Sound && !soundEnabled:
			checks = append(checks, ok(tool.Program, "not needed (sound disabled)"))
		default:
			checks = append(checks, warn(tool.Program, fmt.Sprintf("not found on PATH (needed for %s)", tool.Purpose)))
		}
	}

	return domain.HealthReport{Checks: checks}
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

var _ ports.Doctor = (*Service)(nil)
