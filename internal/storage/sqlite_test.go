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

func saveRuns(t *testing.T, store *Store, runs ...RunRecord) {
	t.Helper()
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.frogger/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".frogger", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveRuns(t, store, RunRecord{GameID: "frogger", Player: "ann", Score: 40})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("HighScore() = %d after reopen, expected 40", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRuns(t, store,
		RunRecord{GameID: "frogger", Player: "ann", Score: 100, Crossings: 5, Collisions: 0, Ticks: 900},
		RunRecord{GameID: "frogger", Player: "bob", Score: 50, Crossings: 4, Collisions: 3, Ticks: 1200},
		RunRecord{GameID: "frogger", Player: "ann", Score: 200, Crossings: 10, Collisions: 1, Ticks: 4000},
		RunRecord{GameID: "other", Player: "ann", Score: 500},
	)

	scores, err := store.TopScores("frogger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}

	top := scores[0]
	if top.Player != "ann" || top.Crossings != 10 || top.Collisions != 1 || top.Ticks != 4000 {
		t.Errorf("top entry = %+v", top)
	}
	if top.Difficulty != "normal" {
		t.Errorf("difficulty = %q, expected default normal", top.Difficulty)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	limited, err := store.TopScores("frogger", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d rows", len(limited))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store,
		RunRecord{GameID: "frogger", Player: "first", Score: 60},
		RunRecord{GameID: "frogger", Player: "second", Score: 60},
	)

	scores, err := store.TopScores("frogger", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tie order = %s, %s", scores[0].Player, scores[1].Player)
	}
}

func TestStoreSaveRunValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Score: 10}); err == nil {
		t.Error("SaveRun without game id should fail")
	}

	saveRuns(t, store, RunRecord{GameID: "frogger", Score: 10})
	scores, _ := store.TopScores("frogger", 1)
	if len(scores) != 1 || scores[0].Player != AnonymousPlayer {
		t.Errorf("empty player should be stored as %q, got %+v", AnonymousPlayer, scores)
	}
}

func TestStoreHighScoreAndPlayerBest(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}

	saveRuns(t, store,
		RunRecord{GameID: "frogger", Player: "ann", Score: 80},
		RunRecord{GameID: "frogger", Player: "bob", Score: 120},
		RunRecord{GameID: "frogger", Player: "ann", Score: 20},
	)

	if high, _ := store.HighScore("frogger"); high != 120 {
		t.Errorf("HighScore() = %d, expected 120", high)
	}

	tests := []struct {
		player   string
		expected int
	}{
		{"ann", 80},
		{"bob", 120},
		{"nobody", 0},
	}
	for _, tc := range tests {
		got, err := store.PlayerBest("frogger", tc.player)
		if err != nil {
			t.Fatalf("PlayerBest(%q) failed: %v", tc.player, err)
		}
		if got != tc.expected {
			t.Errorf("PlayerBest(%q) = %d, expected %d", tc.player, got, tc.expected)
		}
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store,
		RunRecord{GameID: "frogger", Player: "a", Score: 1},
		RunRecord{GameID: "frogger", Player: "b", Score: 3},
		RunRecord{GameID: "frogger", Player: "c", Score: 2},
	)

	recent, err := store.RecentRuns("frogger", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Player != "c" || recent[1].Player != "b" {
		t.Errorf("RecentRuns() = %+v", recent)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store,
		RunRecord{GameID: "frogger", Score: 100},
		RunRecord{GameID: "other", Score: 200},
	)

	if err := store.ClearScores("frogger"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("frogger", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other games are untouched
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("frogger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	saveRuns(t, store,
		RunRecord{GameID: "frogger", Player: "ann", Score: 40, Crossings: 2, Collisions: 3},
		RunRecord{GameID: "frogger", Player: "bob", Score: 80, Crossings: 4, Collisions: 3},
		RunRecord{GameID: "frogger", Player: "ann", Score: 0, Crossings: 0, Collisions: 3},
	)

	stats, err := store.GetGameStats("frogger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 80 {
		t.Errorf("HighScore = %d, expected 80", stats.HighScore)
	}
	if stats.AvgScore != 40 {
		t.Errorf("AvgScore = %v, expected 40", stats.AvgScore)
	}
	if stats.TotalCrossings != 6 || stats.TotalCollisions != 9 {
		t.Errorf("totals = %d crossings, %d collisions", stats.TotalCrossings, stats.TotalCollisions)
	}
	if stats.Players != 2 {
		t.Errorf("Players = %d, expected 2", stats.Players)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
