package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing right away, skipping the title menu.

Controls:
  Arrows/WASD  - Move one cell
  H            - Show controls
  P/Esc        - Pause
  R            - Restart (after game over)
  Tab          - High scores (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, slower traffic
  normal - 3 lives, the configured traffic
  hard   - 2 lives, faster and denser traffic

With --watch, edits to the config file are picked up while playing and
take effect from the next restart.

Examples:
  frogger play
  frogger play --difficulty easy
  frogger play --config ./my-frogger.yaml --watch
  frogger play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Fail early on a broken config instead of silently using defaults
	if _, err := config.LoadFrogger(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(frogger.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	opts := tui.Options{
		Player:     playerName(),
		Difficulty: flagDifficulty,
		Logger:     logger,
	}

	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: no config file to watch, using built-in defaults")
		} else {
			watcher, watchErr := config.NewWatcher(path)
			if watchErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", watchErr)
			} else {
				defer watcher.Close()
				opts.Reloads = watcher.Reloads
				go logWatchErrors(watcher, logger)
			}
		}
	}

	// Open score storage
	store := openStore()

	// Run the game
	_, runErr := tui.Run(game, store, runtimeConfig(), opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// logWatchErrors drains watcher errors until the watcher is closed.
func logWatchErrors(w *config.Watcher, logger *log.Logger) {
	for err := range w.Errors {
		logger.Warn("config watcher error", "path", w.Path(), "error", err)
	}
}
