package domain

import "time"

// ConnectionKind is the closed set of transports a call can use.
type ConnectionKind string

const (
	KindHTTP     ConnectionKind = "HTTP"
	KindDownload ConnectionKind = "DOWNLOAD"
	KindSSH      ConnectionKind = "SSH"
	KindTelnet   ConnectionKind = "TELNET"
)

// ConnectionKinds enumerates every transport, in help order.
var ConnectionKinds = []ConnectionKind{KindHTTP, KindDownload, KindSSH, KindTelnet}

// Status tags how an attempt concluded.
type Status string

const (
	// StatusSuccess means the transport produced a determinable result.
	StatusSuccess Status = "SUCCESS"
	// StatusFailed means the transport ran but reported an unsuccessful outcome.
	StatusFailed Status = "FAILED"
	// StatusError means the transport could not even be invoked.
	StatusError Status = "ERROR"
)

// StatusForExit classifies the exit code of an external client.
func StatusForExit(code int) Status {
	if code == 0 {
		return StatusSuccess
	}
	return StatusFailed
}

// Request carries the positional arguments of one connector invocation.
// Target is the first argument (URL or host); Args are the optional rest.
type Request struct {
	Target string
	Args   []string
}

// Arg returns the i-th optional argument or fallback when absent.
func (r Request) Arg(i int, fallback string) string {
	if i < len(r.Args) && r.Args[i] != "" {
		return r.Args[i]
	}
	return fallback
}

// Outcome describes a finished attempt.
type Outcome struct {
	Kind     ConnectionKind
	Target   string
	Status   Status
	Duration time.Duration
	Err      error
}

// Succeeded reports whether the attempt was classified SUCCESS.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}
