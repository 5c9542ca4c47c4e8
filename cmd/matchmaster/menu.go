package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match-master/internal/games/match3"
	"github.com/vovakirdan/match-master/internal/platform/tui"
	"github.com/vovakirdan/match-master/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a main menu",
	Long: `Start Match Master in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Pick a starting level or browse the scoreboard. Leaving a game
with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  matchmaster menu
  matchmaster menu --fps 60
  matchmaster menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	levels, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	names := make([]string, len(levels.Levels))
	for i, l := range levels.Levels {
		names[i] = l.Name
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(levels.Levels, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, match3.GameID, registry.Title(match3.GameID),
				names, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue

		case tui.ChoicePlay:
			// handled below

		default:
			return
		}

		match3.SetStartLevel(res.Level)

		game, err := registry.Create(match3.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		// Fresh board for each game unless a seed was given
		run := cfg
		if flagSeed == 0 {
			run.Seed = time.Now().UnixNano()
		}

		toMenu, err := tui.Run(game, store, run, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !toMenu {
			return
		}
	}
}
