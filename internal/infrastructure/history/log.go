package history

import (
	"sync"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Log is the bounded connection history ("phone book") of the modem.
// Entries are kept oldest first and rewritten in full after every append.
type Log struct {
	repo     ports.HistoryRepository
	logger   ports.Logger
	capacity int

	mu      sync.Mutex
	entries []domain.HistoryEntry
}

// NewLog loads the history once from repo. A repository that cannot be
// read yields an empty history.
func NewLog(repo ports.HistoryRepository, logger ports.Logger) *Log {
	l := &Log{repo: repo, logger: logger, capacity: domain.HistoryCapacity}
	if repo == nil {
		return l
	}
	entries, err := repo.Load()
	if err != nil {
		l.warn("history unreadable, starting empty", err)
		return l
	}
	if len(entries) > l.capacity {
		entries = entries[len(entries)-l.capacity:]
	}
	l.entries = entries
	return l
}

// Record appends entry, evicts the oldest entry past capacity and persists
// the whole history. Persistence failures are logged and swallowed.
func (l *Log) Record(entry domain.HistoryEntry) {
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[1:]
	}
	snapshot := l.snapshot()
	l.mu.Unlock()

	if l.repo == nil {
		return
	}
	if err := l.repo.Replace(snapshot); err != nil {
		l.warn("history not persisted", err)
	}
}

// Recent returns the last n entries, most recent first.
func (l *Log) Recent(n int) []domain.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	if n <= 0 {
		return []domain.HistoryEntry{}
	}
	recent := make([]domain.HistoryEntry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		recent = append(recent, l.entries[i])
	}
	return recent
}

// Len returns the number of entries on record.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the history, oldest first.
func (l *Log) Entries() []domain.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Path returns where the history is persisted.
func (l *Log) Path() string {
	if l.repo == nil {
		return ""
	}
	return l.repo.Path()
}

func (l *Log) snapshot() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) warn(msg string, err error) {
	if l.logger == nil {
		return
	}
	l.logger.Warn(msg, map[string]interface{}{"path": l.repo.Path(), "error": err.Error()})
}

var (
	_ ports.ConnectionRecorder = (*Log)(nil)
	_ ports.HistoryReader      = (*Log)(nil)
)
