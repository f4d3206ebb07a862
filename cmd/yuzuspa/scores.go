package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/yuzu-spa/internal/games/capyspa"
	"github.com/vovakirdan/yuzu-spa/internal/leaderboard"
	"github.com/vovakirdan/yuzu-spa/internal/platform/tui"
	"github.com/vovakirdan/yuzu-spa/internal/storage"
)

var (
	flagHistory     bool
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores of the spa.

With --history, also list recent runs and aggregate statistics.
With --interactive, open the scoreboard screen instead of printing.

Examples:
  yuzuspa scores
  yuzuspa scores --history --limit 20
  yuzuspa scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Also show recent runs and statistics")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("yuzuspa", os.Stderr)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	board := leaderboard.NewManager(store, loadGameConfig().Leaderboard.Capacity, logger)
	if err := board.Load(time.Now()); err != nil {
		logger.Warn("could not load leaderboard", "error", err)
	}
	entries := board.Entries()

	if flagInteractive {
		runs, err := store.RecentRuns(flagLimit)
		if err != nil {
			fail("retrieving runs: %v", err)
		}
		stats, err := store.RunStats()
		if err != nil {
			fail("retrieving stats: %v", err)
		}

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		data := tui.ScoreboardData{Leaderboard: entries, Runs: runs, Stats: stats}
		if err := tui.RunScoreboard(data, width, height); err != nil {
			fail("running scoreboard: %v", err)
		}
		return
	}

	fmt.Println("Capy's Yuzu Spa - Top Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'yuzuspa play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range entries {
			dateStr := entry.Date.Local().Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}
		fmt.Println()
		fmt.Printf("Best: %d\n", board.Best())
	}

	if !flagHistory {
		return
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}
	stats, err := store.RunStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}

	fmt.Println()
	fmt.Println("Recent Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	fmt.Printf("  %-10s  %-8s  %s\n", "Score", "Time", "Played")
	fmt.Printf("  %-10s  %-8s  %s\n", "-----", "----", "------")
	for _, run := range runs {
		fmt.Printf("  %-10d  %-8s  %s\n", run.Score,
			capyspa.FormatElapsed(run.Elapsed.Milliseconds()), run.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println(tui.FormatStats(stats))
}
