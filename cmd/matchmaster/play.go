package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match-master/internal/games/match3"
	"github.com/vovakirdan/match-master/internal/platform/tui"
	"github.com/vovakirdan/match-master/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level campaign",
	Long: `Start playing Match Master.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Select a tile, swap with a selected neighbour
  Mouse click  - Select or swap the clicked tile
  X            - Fire the star booster
  N            - Next level (after a level is complete)
  R            - Replay (after a level ends)
  P            - Pause
  Esc/Q        - Quit

Difficulty options:
  easy   - Lower targets, more moves and time
  normal - Level table as configured
  hard   - Higher targets, fewer moves and less time
  fixed  - Level table as configured

Examples:
  matchmaster play
  matchmaster play --level 3
  matchmaster play --difficulty easy
  matchmaster play --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from (1-based)")
}

func runPlay(_ *cobra.Command, _ []string) {
	levels, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLevel < 1 || flagLevel > len(levels.Levels) {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", len(levels.Levels))
		os.Exit(1)
	}
	match3.SetStartLevel(flagLevel)

	game, err := registry.Create(match3.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
