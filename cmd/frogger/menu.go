package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
)

// runMenu is the root command: title menu, then game, then back to the menu.
//
// Controls:
//
//	Up/Down/j/k  - Navigate menu
//	Enter/Space  - Select
//	Tab          - High scores
//	Q            - Quit
func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	logger, closeLog := openLogger()
	defer closeLog()

	cfg := runtimeConfig()
	title := frogger.New().Title()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, frogger.GameID, title, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, frogger.GameID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		preset := menuResult.Difficulty
		gameCfg, err := loadGameConfig(preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Fresh seed for each round unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(frogger.NewWithConfig(gameCfg), store, cfg, tui.Options{
			Player:     playerName(),
			Difficulty: string(preset),
			Logger:     logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}

