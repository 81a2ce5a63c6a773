package storage

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lava-escape/internal/leaderboard"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenRunsMigrationsAgain(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := first.Save([]leaderboard.Entry{{Score: 10, Time: 2}}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	first.Close()

	second, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopening failed: %v", err)
	}
	defer second.Close()

	entries, err := second.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Score != 10 {
		t.Errorf("board did not survive reopening: %v", entries)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	board := []leaderboard.Entry{
		{Score: 150, Time: 20},
		{Score: 100, Time: 40},
		{Score: 42, Legacy: true},
	}
	if err := store.Save(board); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !slices.Equal(got, board) {
		t.Errorf("Load() = %v, expected %v", got, board)
	}

	// Saving again replaces rather than appends.
	if err := store.Save(board[:1]); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, _ = store.Load()
	if len(got) != 1 {
		t.Errorf("expected 1 entry after replacing, got %d", len(got))
	}
}

func TestStoreEmptyLoad(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("fresh store should be empty, got %v", entries)
	}
}

func TestStoreArchiveAndStats(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []leaderboard.Entry{{Score: 10, Time: 5}, {Score: 30, Time: 12}, {Score: 20, Time: 40}} {
		if err := store.Archive(e); err != nil {
			t.Fatalf("Archive() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BestScore != 30 || stats.LongestRun != 40 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 20 || runs[1].Score != 30 {
		t.Errorf("RecentRuns() = %+v, expected newest first", runs)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.Save([]leaderboard.Entry{{Score: 1, Time: 1}})
	store.Archive(leaderboard.Entry{Score: 1, Time: 1})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	entries, _ := store.Load()
	stats, _ := store.Stats()
	if len(entries) != 0 || stats.Runs != 0 {
		t.Errorf("clear left %d entries and %d runs", len(entries), stats.Runs)
	}
}

func TestStoreBackedBoard(t *testing.T) {
	store := openTestStore(t)
	board := leaderboard.NewBoard(store, log.New(io.Discard))

	for _, e := range []leaderboard.Entry{
		{Score: 150, Time: 20}, {Score: 100, Time: 40}, {Score: 90, Time: 10}, {Score: 100, Time: 30},
	} {
		if err := board.Record(e); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	got, _ := store.Load()
	want := []leaderboard.Entry{{Score: 150, Time: 20}, {Score: 100, Time: 40}, {Score: 100, Time: 30}, {Score: 90, Time: 10}}
	if !slices.Equal(got, want) {
		t.Errorf("stored board = %v, expected %v", got, want)
	}

	stats, _ := store.Stats()
	if stats.Runs != 4 {
		t.Errorf("every recorded run should be archived, got %d", stats.Runs)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.lavaescape/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".lavaescape", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}
