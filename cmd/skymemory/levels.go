package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-memory/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Shows every level of the campaign with its size, stake and storm
speed, plus your plays, wins and best stars.

Examples:
  skymemory levels
  skymemory levels --config ./my-levels.yaml`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.LevelCount() == 0 {
		fmt.Println("No levels configured.")
		return
	}

	var bests map[int]storage.LevelBest
	if store := openStore(newLogger("skymemory")); store != nil {
		bests, err = store.LevelBests()
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read progress: %v\n", err)
		}
	}

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 18},
		{Title: "Grid", Width: 6},
		{Title: "Stake", Width: 6},
		{Title: "Storm", Width: 6},
		{Title: "Plays", Width: 6},
		{Title: "Wins", Width: 5},
		{Title: "Best", Width: 5},
	}
	rows := make([]table.Row, 0, cfg.LevelCount())
	for i := range cfg.LevelCount() {
		lvl, _ := cfg.Level(i)
		b := bests[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.Name,
			fmt.Sprintf("%dx%d", lvl.Columns, lvl.Rows),
			fmt.Sprintf("%d", lvl.Stake),
			fmt.Sprintf("%.2f", lvl.HazardSpeed),
			fmt.Sprintf("%d", b.Plays),
			fmt.Sprintf("%d", b.Wins),
			strings.Repeat("*", b.BestStars),
		})
	}

	fmt.Println("Sky Memory campaign")
	fmt.Println()
	printTable(columns, rows)
	fmt.Println()
	fmt.Println("Run 'skymemory play --level <n>' to play a level.")
}
