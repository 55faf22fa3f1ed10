package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/pkg/filesystem"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// SQLiteStore persists the history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// OpenSQLiteStore creates (or opens) the database at path, or
// ~/.vmodem99a/history.db when empty.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = filepath.Join(filesystem.DataDir(), "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, &domain.PersistError{Op: "open", Path: path, Err: err}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &domain.PersistError{Op: "open", Path: path, Err: err}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, &domain.PersistError{Op: "open", Path: path, Err: err}
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS connections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		connection_type TEXT NOT NULL,
		target TEXT NOT NULL,
		status TEXT NOT NULL,
		duration_ms INTEGER NOT NULL
	);`)
	return err
}

// Load returns every entry in insertion order.
func (s *SQLiteStore) Load() ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT timestamp, connection_type, target, status, duration_ms
		FROM connections ORDER BY id ASC`)
	if err != nil {
		return nil, &domain.PersistError{Op: "load", Path: s.path, Err: err}
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var ts, status string
		if err := rows.Scan(&ts, &entry.ConnectionType, &entry.Target, &status, &entry.DurationMS); err != nil {
			return nil, &domain.PersistError{Op: "load", Path: s.path, Err: err}
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			entry.Timestamp = t.UTC()
		}
		entry.Status = domain.Status(status)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistError{Op: "load", Path: s.path, Err: err}
	}
	return entries, nil
}

// Replace rewrites the table with entries inside one transaction.
func (s *SQLiteStore) Replace(entries []domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &domain.PersistError{Op: "replace", Path: s.path, Err: err}
	}
	if err := replaceRows(tx, entries); err != nil {
		_ = tx.Rollback()
		return &domain.PersistError{Op: "replace", Path: s.path, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &domain.PersistError{Op: "replace", Path: s.path, Err: err}
	}
	return nil
}

func replaceRows(tx *sql.Tx, entries []domain.HistoryEntry) error {
	if _, err := tx.Exec("DELETE FROM connections"); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO connections
		(timestamp, connection_type, target, status, duration_ms)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, entry := range entries {
		if _, err := stmt.Exec(
			entry.Timestamp.UTC().Format(domain.TimestampFormat),
			entry.ConnectionType,
			entry.Target,
			string(entry.Status),
			entry.DurationMS,
		); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
