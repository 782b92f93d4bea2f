package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func mustSave(t *testing.T, store *Store, r Run) int64 {
	t.Helper()
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/.arcade/runner.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "runner.db"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}

	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "runner", Player: "ann", Score: 100, Seed: 1, Ticks: 100})
	mustSave(t, store, Run{GameID: "runner", Player: "bob", Score: 50, Seed: 2, Ticks: 50})
	mustSave(t, store, Run{GameID: "runner", Player: "ann", Score: 200, Seed: 3, Ticks: 200})
	mustSave(t, store, Run{GameID: "other", Score: 500})

	runs, err := store.TopRuns("runner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
	}

	best := runs[0]
	if best.Player != "ann" || best.Seed != 3 || best.Ticks != 200 || best.GameID != "runner" {
		t.Errorf("best run round-trip mismatch: %+v", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, Run{GameID: "runner", Score: i * 10})
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit", 5, 5},
		{"default", 0, 10},
		{"negative", -1, 10},
		{"larger than table", 50, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.TopRuns("runner", tt.limit)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(runs) != tt.want {
				t.Errorf("got %d runs, expected %d", len(runs), tt.want)
			}
			if runs[0].Score != 190 {
				t.Errorf("top score = %d, expected 190", runs[0].Score)
			}
		})
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first := mustSave(t, store, Run{GameID: "runner", Player: "first", Score: 42})
	mustSave(t, store, Run{GameID: "runner", Player: "second", Score: 42})

	runs, err := store.TopRuns("runner", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].ID != first || runs[0].Player != "first" {
		t.Errorf("expected the earlier run first, got %+v", runs[0])
	}
}

func TestStoreSaveRunRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty book, got %d", score)
	}

	mustSave(t, store, Run{GameID: "runner", Score: 100})
	mustSave(t, store, Run{GameID: "runner", Score: 300})
	mustSave(t, store, Run{GameID: "runner", Score: 200})

	score, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 300 {
		t.Errorf("Expected high score 300, got %d", score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("runner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty book: %+v", empty)
	}

	mustSave(t, store, Run{GameID: "runner", Score: 10, Ticks: 10})
	mustSave(t, store, Run{GameID: "runner", Score: 30, Ticks: 30})
	mustSave(t, store, Run{GameID: "other", Score: 1000, Ticks: 1000})

	stats, err := store.Stats("runner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalTicks != 40 {
		t.Errorf("TotalTicks = %d, expected 40", stats.TotalTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "runner", Score: 100})
	mustSave(t, store, Run{GameID: "other", Score: 200})

	if err := store.ClearRuns("runner"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns("runner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	other, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("ClearRuns must not touch other games, got %d runs", len(other))
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "book.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Run{GameID: "runner", Score: 77})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	score, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 77 {
		t.Errorf("HighScore after reopen = %d, expected 77", score)
	}
}
