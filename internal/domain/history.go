package domain

import "time"

// HistoryEntry is one persisted record of a past connection attempt.
type HistoryEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	ConnectionType string    `json:"connection_type"`
	Target         string    `json:"target"`
	Status         Status    `json:"status"`
	DurationMS     int64     `json:"duration_ms"`
}

// NewHistoryEntry builds an entry from a finished attempt. The timestamp is
// normalised to UTC and negative durations are clamped to zero.
func NewHistoryEntry(at time.Time, kind ConnectionKind, target string, status Status, elapsed time.Duration) HistoryEntry {
	ms := elapsed.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return HistoryEntry{
		Timestamp:      at.UTC(),
		ConnectionType: string(kind),
		Target:         target,
		Status:         status,
		DurationMS:     ms,
	}
}
