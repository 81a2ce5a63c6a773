package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lava-escape/internal/leaderboard"
	"github.com/vovakirdan/lava-escape/internal/platform/tui"
	"github.com/vovakirdan/lava-escape/internal/storage"
)

// recentRuns is how many finished runs the scoreboard lists.
const recentRuns = 20

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 5 climbs and, for the sqlite store, recent runs and totals.

In a terminal the scoreboard is interactive; otherwise it is printed as text.

Examples:
  lavaescape scores
  lavaescape scores --store gdata
  lavaescape scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	data, err := loadScoreData(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(data, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(os.Stdout, data)
}

// loadScoreData reads the board and, when the store keeps it, the run history.
func loadScoreData(store leaderboard.Store) (tui.ScoreData, error) {
	entries, err := store.Load()
	if err != nil {
		return tui.ScoreData{}, err
	}
	leaderboard.Sort(entries)
	data := tui.ScoreData{Entries: entries}

	if db, ok := store.(*storage.Store); ok {
		recent, err := db.RecentRuns(recentRuns)
		if err != nil {
			return data, err
		}
		stats, err := db.Stats()
		if err != nil {
			return data, err
		}
		if recent == nil {
			recent = []storage.Run{}
		}
		data.Recent, data.Stats = recent, stats
	}
	return data, nil
}

// printScores writes a plain-text scoreboard.
func printScores(w io.Writer, data tui.ScoreData) {
	fmt.Fprintln(w, "Lava Escape - Top Climbs")
	fmt.Fprintln(w)

	if len(data.Entries) == 0 {
		fmt.Fprintln(w, "No climbs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'lavaescape play' to set the first record!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Height", "Time")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "------", "----")
	for i, e := range data.Entries {
		t := fmt.Sprintf("%ds", e.Time)
		if e.Legacy {
			t = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-10s  %s\n", i+1, fmt.Sprintf("%dm", e.Score), t)
	}

	if s := data.Stats; s != nil && s.Runs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Best: %dm  Average: %.1fm  Longest: %ds\n", s.Runs, s.BestScore, s.AvgScore, s.LongestRun)
		if !s.LastPlayed.IsZero() {
			fmt.Fprintf(w, "Last played: %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}
