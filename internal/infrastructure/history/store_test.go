package history

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vmodem/vmodem99a/internal/domain"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.json"))
	entries := []domain.HistoryEntry{entry(1), entry(2), entry(3)}

	if err := store.Replace(entries); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreWritesISOTimestampsAndFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store := NewFileStore(path)
	if err := store.Replace([]domain.HistoryEntry{entry(1)}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"timestamp": "2024-01-01T00:01:00Z"`,
		`"connection_type": "HTTP"`,
		`"target": "https://example.com/1"`,
		`"status": "SUCCESS"`,
		`"duration_ms": 1`,
	} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("history file missing %s:\n%s", want, raw)
		}
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	got, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json")).Load()
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty history, got %v, %v", got, err)
	}
}

func TestFileStoreCorruptFileIsPersistError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("[{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(path).Load()
	var persist *domain.PersistError
	if !errors.As(err, &persist) {
		t.Fatalf("expected PersistError, got %v", err)
	}

	// The log hides the failure behind an empty history.
	if n := NewLog(NewFileStore(path), nil).Len(); n != 0 {
		t.Fatalf("expected empty log, got %d entries", n)
	}
}

func TestFileStoreEmptyHistoryIsJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := NewFileStore(path).Replace(nil); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Fatalf("got %q, want []", raw)
	}
}

func TestSQLiteStoreReplaceRewritesWholesale(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteStore error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Replace([]domain.HistoryEntry{entry(1), entry(2), entry(3)}); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	second := []domain.HistoryEntry{entry(2), entry(3), entry(4)}
	if err := store.Replace(second); err != nil {
		t.Fatalf("Replace error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Fatalf("sqlite history mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteStoreBacksLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	log := NewLog(store, nil)
	for i := 1; i <= 101; i++ {
		log.Record(entry(i))
	}
	_ = store.Close()

	reopened, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	restored := NewLog(reopened, nil)
	if restored.Len() != 100 {
		t.Fatalf("len = %d, want 100", restored.Len())
	}
	if got := restored.Recent(1)[0].Target; got != target(101) {
		t.Fatalf("most recent = %s, want %s", got, target(101))
	}
}
