package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent attempts",
	Long: `Display the most recent attempts with their result, stars and reward.
Attempts left mid-climb are listed as abandoned.

Examples:
  skymemory history
  skymemory history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of attempts to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	records, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		return
	}

	fmt.Println("Flight log")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skymemory play' to make the first climb!")
		return
	}

	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Level", Width: 20},
		{Title: "Result", Width: 9},
		{Title: "Stars", Width: 5},
		{Title: "Reward", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Session", Width: 8},
	}
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d. %s", r.Level+1, r.LevelName),
			r.Outcome,
			fmt.Sprintf("%d", r.Stars),
			fmt.Sprintf("%d", r.Reward),
			fmt.Sprintf("%.1fs", r.Duration),
			shortRef(r.ID),
		}
	}
	printTable(columns, rows)
}
