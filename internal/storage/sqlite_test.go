package storage

import (
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Get("leaderboard")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get() on missing key = (%q, %v), expected (\"\", false)", value, ok)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("highScore", "80"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("highScore", "120"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	value, ok, err := store.Get("highScore")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || value != "120" {
		t.Errorf("Get() = (%q, %v), expected (\"120\", true)", value, ok)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set("leaderboard", `[{"score":120,"date":"2026-01-02T03:04:05Z"}]`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("leaderboard")
	if err != nil || !ok {
		t.Fatalf("Get() after reopen = (%q, %v, %v)", value, ok, err)
	}
	if value != `[{"score":120,"date":"2026-01-02T03:04:05Z"}]` {
		t.Errorf("value not persisted, got %q", value)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{100, 50, 300} {
		if _, err := store.SaveRun(score, time.Duration(i+1)*time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	// Same-second timestamps fall back to id ordering
	if runs[0].Score != 300 || runs[1].Score != 50 {
		t.Errorf("Runs not newest first: %+v", runs)
	}
	if runs[0].Elapsed != 3*time.Second {
		t.Errorf("Elapsed = %v, expected 3s", runs[0].Elapsed)
	}
}

func TestStoreRunStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.RunStats()
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(100, time.Second)
	store.SaveRun(300, time.Second)
	store.SaveRun(200, time.Second)

	stats, err = store.RunStats()
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory(map[string]string{"highScore": "80"})

	v, ok, _ := m.Get("highScore")
	if !ok || v != "80" {
		t.Errorf("seeded Get() = (%q, %v)", v, ok)
	}
	if _, ok, _ := m.Get("leaderboard"); ok {
		t.Error("missing key should report ok=false")
	}

	m.Set("leaderboard", "[]")
	if v, ok, _ := m.Get("leaderboard"); !ok || v != "[]" {
		t.Errorf("Get() after Set = (%q, %v)", v, ok)
	}

	id, err := m.SaveRun(10, time.Second)
	if err != nil || id != 1 {
		t.Errorf("SaveRun() = (%d, %v), expected (1, nil)", id, err)
	}
}
