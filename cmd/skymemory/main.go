// skymemory is a terminal memory-path puzzle: watch the route light up,
// then climb it from memory before the storm catches your plane.
//
// Usage:
//
//	skymemory play [--level N]  - Play a level
//	skymemory menu              - Pick levels interactively
//	skymemory levels            - List the campaign with your progress
//	skymemory wallet            - Show coins and recent movements
//	skymemory skins             - List, buy and select plane skins
//	skymemory history           - Show recent attempts
//	skymemory serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible paths
//	--db <path>           - Set database path (default: ~/.skymemory/skymemory.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-memory/internal/config"
	"github.com/vovakirdan/sky-memory/internal/core"
	"github.com/vovakirdan/sky-memory/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skymemory",
	Short: "Sky Memory - a memory-path puzzle in your terminal",
	Long: `Sky Memory shows a path across a grid of sky tiles for a few seconds,
then hides it. Climb the path row by row from memory while the rows sway
and a storm rises from below. Finish the climb to earn coins and stars.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - Show the campaign and your best results
  wallet   - Show your coin balance and ledger
  skins    - Manage plane skins
  history  - Show recent attempts
  serve    - Start SSH server for remote play

Examples:
  skymemory play
  skymemory play --level 3 --difficulty hard
  skymemory menu
  skymemory skins buy red_baron
  skymemory serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skymemory/skymemory.db", "Path to wallet and history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the level config and applies the difficulty preset.
func loadGameConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds a logger writing to stderr at the --log-level level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	setLevel(logger)
	return logger
}

// newFileLogger builds a logger for full-screen modes, where stderr is
// covered by the alternate screen. The returned close func is never nil.
func newFileLogger(prefix string) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".skymemory")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "skymemory.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	setLevel(logger)
	// Package-level log calls from the TUI go to the same file.
	log.SetDefault(logger)
	return logger, func() { f.Close() }
}

func setLevel(logger *log.Logger) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
}

// openStore opens the database. Without it the game still runs, but no
// coins are credited and nothing is recorded.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		return nil
	}
	store.SetLogger(logger.WithPrefix("storage"))
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
