package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/pkg/filesystem"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// FileStore keeps the history as one JSON array.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store at path, or ~/.vmodem99a/history.json when empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(filesystem.DataDir(), "history.json")
	}
	return &FileStore{path: path}
}

// Load implements ports.HistoryRepository. A missing file is an empty history.
func (f *FileStore) Load() ([]domain.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.PersistError{Op: "load", Path: f.path, Err: err}
	}
	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &domain.PersistError{Op: "load", Path: f.path, Err: err}
	}
	return entries, nil
}

// Replace rewrites the whole file with entries.
func (f *FileStore) Replace(entries []domain.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &domain.PersistError{Op: "replace", Path: f.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return &domain.PersistError{Op: "replace", Path: f.path, Err: err}
	}
	if err := os.WriteFile(f.path, data, domain.SecureFilePermissions); err != nil {
		return &domain.PersistError{Op: "replace", Path: f.path, Err: err}
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

var _ ports.HistoryRepository = (*FileStore)(nil)
