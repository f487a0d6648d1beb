package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var (
	flagConfigPath  bool
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a new round would use, after the search
order and the --difficulty preset have been applied.

Search order:
  1. --config <path>
  2. ~/.frogger/configs/frogger.yaml
  3. ./configs/frogger.yaml
  4. built-in defaults

Examples:
  frogger config
  frogger config --difficulty hard
  frogger config --path
  frogger config init`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to ~/.frogger/configs",
	Args:  cobra.NoArgs,
	Run:   runConfigInit,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Only print which file is used")
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigPath {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			path = "(built-in defaults)"
		}
		fmt.Println(path)
		return
	}

	preset, _ := config.ParseDifficulty(flagDifficulty)
	cfg, err := loadGameConfig(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runConfigInit(_ *cobra.Command, _ []string) {
	dir := config.UserDir()
	if dir == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot locate home directory")
		os.Exit(1)
	}
	path := filepath.Join(dir, "configs", config.ConfigFile)

	if _, err := os.Stat(path); err == nil && !flagConfigForce {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		os.Exit(1)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
