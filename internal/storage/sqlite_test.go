package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created, parent directories included
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Status: "game_over", Level: 10, Health: 0, Attack: 10, Ticks: 10, Duration: 10 * time.Second},
		{Status: "victory", Level: 100, Health: 5, Attack: 10, Ticks: 99, Duration: 99 * time.Second},
		{Status: "game_over", Level: 1, Health: 0, Attack: 1, Ticks: 1, Duration: 1500 * time.Millisecond},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	// Newest first
	if recent[0].Level != 1 || recent[2].Level != 10 {
		t.Errorf("Unexpected order: %d, %d, %d", recent[0].Level, recent[1].Level, recent[2].Level)
	}
	if recent[1].Status != "victory" || recent[1].Ticks != 99 {
		t.Errorf("Unexpected middle run: %+v", recent[1])
	}
	if recent[0].Duration != 1500*time.Millisecond {
		t.Errorf("Expected duration 1.5s, got %v", recent[0].Duration)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(RunRecord{Status: "game_over", Level: i + 1, Ticks: uint64(i)}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(recent))
	}

	// Non-positive limit defaults to 10
	recent, err = store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 10 {
		t.Errorf("Expected default of 10 runs, got %d", len(recent))
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 15 {
		t.Errorf("Expected 15 runs, got %d", n)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.BestRun(); !errors.Is(err, ErrNoRuns) {
		t.Fatalf("Expected ErrNoRuns on empty ledger, got %v", err)
	}

	for _, r := range []RunRecord{
		{Status: "game_over", Level: 40, Ticks: 39},
		{Status: "victory", Level: 100, Ticks: 120},
		{Status: "victory", Level: 100, Ticks: 99},
		{Status: "game_over", Level: 2, Ticks: 1},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best.Level != 100 || best.Ticks != 99 {
		t.Errorf("Expected level 100 in 99 ticks, got level %d in %d ticks", best.Level, best.Ticks)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Status: "game_over", Level: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected empty ledger, got %d runs", len(recent))
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{Status: "victory", Level: 100}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", n)
	}
}
