package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match-master/internal/config"
	"github.com/vovakirdan/match-master/internal/games/match3"
)

var flagLevelsYAML bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Shows the board size, booster settings and level table that
'play' would use with the current --config and --difficulty.

Use --yaml to print the built-in configuration as a starting point
for a custom --config file.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagLevelsYAML, "yaml", false, "Print the built-in config YAML")
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagLevelsYAML {
		os.Stdout.Write(config.GetDefaultYAML(match3.GameID))
		return
	}

	cfg, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset := flagDifficulty
	if preset == "" {
		preset = string(config.DifficultyNormal)
	}

	fmt.Printf("Board: %dx%d  Booster: %d cells at %d stars  Difficulty: %s\n",
		cfg.Board.Rows, cfg.Board.Cols, cfg.Booster.Cells, cfg.Booster.StarThreshold, preset)
	fmt.Println()

	fmt.Printf("  %-3s  %-18s  %-6s  %-5s  %s\n", "#", "Name", "Target", "Moves", "Time")
	fmt.Printf("  %-3s  %-18s  %-6s  %-5s  %s\n", "-", "----", "------", "-----", "----")
	for i, l := range cfg.Levels {
		fmt.Printf("  %-3d  %-18s  %-6d  %-5d  %s\n",
			i+1, l.Name, l.TargetScore, l.MaxMoves, match3.FormatTime(l.TimeLimit))
	}

	fmt.Println()
	fmt.Println("Run 'matchmaster play --level <n>' to start from a level.")
}
