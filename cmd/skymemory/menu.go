package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-memory/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels interactively",
	Long: `Start Sky Memory with the level picker.

Levels unlock as you win them. After a level you return to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play level
  Tab          - Flight log
  Q            - Quit

Examples:
  skymemory menu
  skymemory menu --fps 30
  skymemory menu --db ./skymemory.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	levels, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newFileLogger("skymemory")
	defer closeLog()
	store := openStore(logger)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, levels, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		// A fixed --seed replays the same paths every time.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		goBack, err := tui.Run(tui.PlayOptions{
			Config:  levels,
			Level:   menuResult.Level,
			Store:   store,
			Runtime: cfg,
			Logger:  logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !goBack {
			break // User quit from the level
		}
	}

	if store != nil {
		store.Close()
	}
}
