package connectors

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Download fetches a file through wget, echoing its progress.
type Download struct {
	Deps
	runner  ports.ProcessRunner
	Program string
}

// NewDownload builds the download connector on top of runner.
func NewDownload(deps Deps, runner ports.ProcessRunner) *Download {
	return &Download{Deps: deps, runner: runner, Program: "wget"}
}

func (d *Download) Kind() domain.ConnectionKind { return domain.KindDownload }

// Attempt implements ports.Connector. The optional first argument overrides
// the output file.
func (d *Download) Attempt(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	c := d.begin(domain.KindDownload, req.Target)
	file := req.Arg(0, DeriveFileName(req.Target))

	d.Console.Notice("Downloading via WGET protocol...")
	args := []string{
		"--progress=bar",
		fmt.Sprintf("--timeout=%d", domain.DownloadTimeoutSeconds),
		"-O", file,
		req.Target,
	}
	code, err := d.runner.Stream(ctx, d.Program, args, func(line string) {
		if IsProgressLine(line) {
			d.Console.Muted(line)
		}
	})
	c.stop()
	if err != nil {
		return c.finish(err)
	}
	if domain.StatusForExit(code) != domain.StatusSuccess {
		return c.finish(&domain.TransportError{
			Kind:   domain.KindDownload,
			Target: req.Target,
			Err:    &domain.ExitError{Program: d.Program, Code: code},
		})
	}

	d.Effects.Handshake()
	d.Console.Success(fmt.Sprintf("File downloaded successfully: %s", file))
	return c.finish(nil)
}

// DeriveFileName returns the last segment of the escaped URL path, or
// "download" when rawURL has no scheme or its path has no final segment.
func DeriveFileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return domain.DefaultDownloadName
	}
	path := u.EscapedPath()
	segment := path[strings.LastIndex(path, "/")+1:]
	if segment == "" || segment == "." || segment == ".." {
		return domain.DefaultDownloadName
	}
	return segment
}

// IsProgressLine reports whether a downloader stderr line is worth echoing.
func IsProgressLine(line string) bool {
	return strings.Contains(line, "%") || strings.Contains(line, "saved")
}

var _ ports.Connector = (*Download)(nil)
