// frogger is a terminal rendition of the classic road-crossing game.
//
// Usage:
//
//	frogger                  - Start the title menu
//	frogger play             - Play a round directly
//	frogger serve            - Start SSH server for remote play
//	frogger scores           - Show high scores
//	frogger config           - Print or create the game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.frogger/scores.db)
//	--config <path>      - Use a custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file while the game runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road in your terminal",
	Long: `Frogger is a terminal game: hop your frog across five lanes of
traffic to the far bank, then do it again. Each crossing scores points,
each hit costs a life.

Running frogger without a command opens the title menu.

Available commands:
  play     - Play a round directly
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print or create the game configuration

Examples:
  frogger
  frogger play --difficulty hard
  frogger play --config ./frogger.yaml --watch
  frogger serve --ssh :2222
  frogger scores --limit 20`,
	PersistentPreRunE: applyGlobalFlags,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: $USER)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags validates the shared flags and hands the config source to
// the game package, so registry-created games pick it up.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	frogger.SetConfigPath(flagConfig)
	frogger.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// loadGameConfig loads the frogger config and applies a difficulty preset.
func loadGameConfig(preset config.DifficultyPreset) (config.FroggerConfig, error) {
	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return config.FroggerConfig{}, err
	}
	config.ApplyFroggerPreset(&cfg, preset)
	return cfg, nil
}

// playerName returns the name stored with local runs.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.AnonymousPlayer
}

// openLogger returns the logger for interactive commands. Logs never go to
// the terminal the game is drawing on.
func openLogger() (*log.Logger, func()) {
	logger, closer, err := tui.OpenLogFile(flagLogFile, flagLogLevel, "frogger")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, _ = tui.NewLogger(io.Discard, flagLogLevel, "frogger")
		return logger, func() {}
	}
	return logger, func() { closer.Close() }
}
