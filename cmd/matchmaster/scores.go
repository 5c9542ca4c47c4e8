package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match-master/internal/games/match3"
	"github.com/vovakirdan/match-master/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and level results",
	Long: `Display the top 10 run scores and the best result for each level.

Examples:
  matchmaster scores
  matchmaster scores --all
  matchmaster scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run, newest first")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores and level results")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(match3.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(match3.GameID)
	} else {
		scores, err = store.TopScores(match3.GameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Match Master")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'matchmaster play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(match3.GameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if stats, err := store.GetGameStats(match3.GameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	printLevelBests(store)
}

func printLevelBests(store *storage.Store) {
	bests, err := store.BestLevelResults(match3.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level results: %v\n", err)
		return
	}
	if len(bests) == 0 {
		return
	}

	names := map[int]string{}
	if cfg, err := loadLevels(); err == nil {
		for i, l := range cfg.Levels {
			names[i] = l.Name
		}
	}

	fmt.Println()
	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-3s  %-18s  %-6s  %-7s  %-6s  %s\n", "#", "Name", "Played", "Cleared", "Best", "Fewest moves")
	fmt.Printf("  %-3s  %-18s  %-6s  %-7s  %-6s  %s\n", "-", "----", "------", "-------", "----", "------------")
	for _, b := range bests {
		fewest := "-"
		if b.FewestMove > 0 {
			fewest = fmt.Sprintf("%d", b.FewestMove)
		}
		fmt.Printf("  %-3d  %-18s  %-6d  %-7d  %-6d  %s\n",
			b.Level+1, names[b.Level], b.Attempts, b.Clears, b.BestScore, fewest)
	}
}
