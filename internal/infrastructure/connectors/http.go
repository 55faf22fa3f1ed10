package connectors

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// HTTP performs a single GET or HEAD with the in-process client.
type HTTP struct {
	Deps
	client *http.Client
}

// NewHTTP builds the HTTP connector. A nil client gets the 30s default.
func NewHTTP(deps Deps, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: domain.HTTPTimeout}
	}
	return &HTTP{Deps: deps, client: client}
}

func (h *HTTP) Kind() domain.ConnectionKind { return domain.KindHTTP }

// Attempt implements ports.Connector. Any response, whatever its status code,
// is a SUCCESS; only a failure to get one is an ERROR.
func (h *HTTP) Attempt(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	c := h.begin(domain.KindHTTP, req.Target)

	method := strings.ToUpper(req.Arg(0, http.MethodGet))
	if method != http.MethodGet && method != http.MethodHead {
		c.stop()
		return c.finish(&domain.ValidationError{
			Field:   "method",
			Message: "Unsupported HTTP method",
			Err:     domain.ErrUnsupportedMethod,
		})
	}

	h.Console.Notice("Connecting via HTTP...")
	httpReq, err := http.NewRequestWithContext(context.WithoutCancel(ctx), method, req.Target, nil)
	if err != nil {
		return c.finish(&domain.TransportError{Kind: domain.KindHTTP, Target: req.Target, Err: err})
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return c.finish(&domain.TransportError{Kind: domain.KindHTTP, Target: req.Target, Err: err})
	}
	defer resp.Body.Close()

	if method == http.MethodHead {
		c.stop()
		h.Effects.Handshake()
		h.Console.Notice(fmt.Sprintf("HTTP %s HEAD", resp.Status))
		h.printHeaders(resp.Header, domain.HTTPHeadHeaderLimit)
		h.Console.Success("HTTP HEAD request completed")
		return c.finish(nil)
	}

	head, size, readErr := readBody(resp.Body, domain.HTTPBodyPreview)
	c.stop()
	if readErr != nil && h.Logger != nil {
		h.Logger.Warn("response body cut short", map[string]interface{}{"target": req.Target, "error": readErr.Error()})
	}
	h.Effects.Handshake()
	elapsed := c.end.Sub(c.start)
	h.Console.Notice(fmt.Sprintf("HTTP %s | Size: %d bytes (%s) | Time: %.2fs",
		resp.Status, size, humanize.Bytes(uint64(size)), elapsed.Seconds()))
	h.printHeaders(resp.Header, domain.HTTPGetHeaderLimit)
	if preview, truncated := Preview(head, domain.HTTPBodyPreview); preview != "" {
		h.Console.Println("")
		h.Console.Muted(preview)
		if truncated {
			h.Console.Println("...truncated")
		}
	}
	h.Console.Success("HTTP GET connection established")
	return c.finish(nil)
}

func (h *HTTP) printHeaders(header http.Header, limit int) {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > limit {
		names = names[:limit]
	}
	for _, name := range names {
		h.Console.Field(strings.ToLower(name), strings.Join(header.Values(name), ", "))
	}
}

// readBody drains body, keeping only enough of it to preview limit
// characters, and returns that prefix with the total size in bytes.
func readBody(body io.Reader, limit int) (string, int64, error) {
	var head strings.Builder
	kept, err := io.Copy(&head, io.LimitReader(body, int64(limit*utf8.UTFMax+1)))
	if err != nil {
		return head.String(), kept, err
	}
	rest, err := io.Copy(io.Discard, body)
	return head.String(), kept + rest, err
}

// Preview returns at most limit characters of body and whether it cut any.
func Preview(body string, limit int) (string, bool) {
	runes := []rune(body)
	if len(runes) <= limit {
		return body, false
	}
	return string(runes[:limit]), true
}

var _ ports.Connector = (*HTTP)(nil)
