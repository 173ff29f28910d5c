package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRecentResults(t *testing.T) {
	store := newTestStore(t)

	id, err := store.SaveResult(Result{
		GameID:       "klondike",
		CardsHome:    12,
		Moves:        87,
		DurationSecs: 340,
	})
	if err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveResult() id = %d, want > 0", id)
	}

	results, err := store.RecentResults("klondike", 10)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("RecentResults() returned %d results, want 1", len(results))
	}

	r := results[0]
	if r.GameID != "klondike" || r.CardsHome != 12 || r.Moves != 87 {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.Won {
		t.Error("result should not be marked won")
	}
}

func TestBestResultsOrdering(t *testing.T) {
	store := newTestStore(t)

	deals := []Result{
		{GameID: "klondike", CardsHome: 20, Moves: 150},
		{GameID: "klondike", CardsHome: 52, Moves: 210, Won: true},
		{GameID: "klondike", CardsHome: 20, Moves: 120},
		{GameID: "klondike", CardsHome: 7, Moves: 60},
	}
	for _, d := range deals {
		if _, err := store.SaveResult(d); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}

	results, err := store.BestResults("klondike", 10)
	if err != nil {
		t.Fatalf("BestResults() error = %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("BestResults() returned %d results, want 4", len(results))
	}

	if results[0].CardsHome != 52 || !results[0].Won {
		t.Errorf("best result = %+v, want the won deal first", results[0])
	}
	// Same cards home: fewer moves ranks higher
	if results[1].Moves != 120 || results[2].Moves != 150 {
		t.Errorf("tie-break by moves failed: %d then %d", results[1].Moves, results[2].Moves)
	}
}

func TestRecentResultsLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveResult(Result{GameID: "klondike", CardsHome: i, Moves: i * 10}); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}

	results, err := store.RecentResults("klondike", 5)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(results) != 5 {
		t.Errorf("RecentResults(limit=5) returned %d results", len(results))
	}
}

func TestResultsIsolatedPerGame(t *testing.T) {
	store := newTestStore(t)

	store.SaveResult(Result{GameID: "klondike", CardsHome: 10, Moves: 50})
	store.SaveResult(Result{GameID: "klondike_daily", CardsHome: 30, Moves: 90})

	results, err := store.RecentResults("klondike", 10)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(results) != 1 || results[0].GameID != "klondike" {
		t.Errorf("expected only klondike results, got %+v", results)
	}
}

func TestGameStats(t *testing.T) {
	store := newTestStore(t)

	store.SaveResult(Result{GameID: "klondike", CardsHome: 52, Moves: 200, Won: true})
	store.SaveResult(Result{GameID: "klondike", CardsHome: 10, Moves: 100})

	stats, err := store.GameStats("klondike")
	if err != nil {
		t.Fatalf("GameStats() error = %v", err)
	}
	if stats.DealsCount != 2 {
		t.Errorf("DealsCount = %d, want 2", stats.DealsCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.BestHome != 52 {
		t.Errorf("BestHome = %d, want 52", stats.BestHome)
	}
	if stats.AvgMoves != 150 {
		t.Errorf("AvgMoves = %v, want 150", stats.AvgMoves)
	}
}

func TestGameStatsEmpty(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.GameStats("klondike")
	if err != nil {
		t.Fatalf("GameStats() error = %v", err)
	}
	if stats.DealsCount != 0 || stats.Wins != 0 || stats.BestHome != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
	if !stats.LastPlayed.IsZero() {
		t.Errorf("LastPlayed = %v, want zero time", stats.LastPlayed)
	}
}

func TestAllGameStats(t *testing.T) {
	store := newTestStore(t)

	store.SaveResult(Result{GameID: "klondike", CardsHome: 15, Moves: 80})
	store.SaveResult(Result{GameID: "klondike_daily", CardsHome: 52, Moves: 190, Won: true})

	all, err := store.AllGameStats()
	if err != nil {
		t.Fatalf("AllGameStats() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllGameStats() returned %d entries, want 2", len(all))
	}
	if all["klondike_daily"].Wins != 1 {
		t.Errorf("daily Wins = %d, want 1", all["klondike_daily"].Wins)
	}
}

func TestClearResults(t *testing.T) {
	store := newTestStore(t)

	store.SaveResult(Result{GameID: "klondike", CardsHome: 5, Moves: 40})
	store.SaveResult(Result{GameID: "klondike_daily", CardsHome: 9, Moves: 70})

	if err := store.ClearResults("klondike"); err != nil {
		t.Fatalf("ClearResults() error = %v", err)
	}

	results, _ := store.RecentResults("klondike", 10)
	if len(results) != 0 {
		t.Errorf("expected no klondike results after clear, got %d", len(results))
	}
	daily, _ := store.RecentResults("klondike_daily", 10)
	if len(daily) != 1 {
		t.Errorf("daily results should survive the clear, got %d", len(daily))
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path error = %v", err)
	}
	store.Close()
}
