package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-memory/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing a level of the campaign.

The path is shown first, then fades. Climb it one row at a time by
clicking the tile above your plane, or aim with left/right and press
enter. A wrong tile costs a life and coins and speeds up the storm.

Controls:
  Click/Enter   - Climb to the aimed tile
  Left/Right    - Aim
  H             - Show the path again
  P             - Pause
  R             - Restart
  N             - Next level (after a win)
  Esc/B         - Leave the level
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower storm
  normal - Configured speeds
  hard   - Faster storm
  fixed  - Storm never accelerates

Examples:
  skymemory play
  skymemory play --level 2
  skymemory play --difficulty hard
  skymemory play --config ./my-levels.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number to start on")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLevel < 1 || flagLevel > cfg.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: level %d does not exist (1-%d)\n", flagLevel, cfg.LevelCount())
		fmt.Fprintln(os.Stderr, "Run 'skymemory levels' to see the campaign.")
		os.Exit(1)
	}

	logger, closeLog := newFileLogger("skymemory")
	store := openStore(logger)

	_, runErr := tui.Run(tui.PlayOptions{
		Config:  cfg,
		Level:   flagLevel - 1,
		Store:   store,
		Runtime: runtimeConfig(),
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
