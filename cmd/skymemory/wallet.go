package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
)

var flagLedgerLimit int

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show the coin balance and recent movements",
	Long: `Display the wallet balance and the most recent ledger entries.
Wins credit the coins left at stake; skins are paid from the wallet.

Examples:
  skymemory wallet
  skymemory wallet --limit 50`,
	Run: runWallet,
}

func init() {
	walletCmd.Flags().IntVar(&flagLedgerLimit, "limit", 10, "Number of ledger entries to show")
}

func runWallet(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	balance, err := store.Balance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading balance: %v\n", err)
		return
	}
	entries, err := store.Ledger(flagLedgerLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return
	}

	fmt.Printf("Balance: %d coins\n", balance)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No movements yet. Win a level to earn coins!")
		return
	}

	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Amount", Width: 8},
		{Title: "Balance", Width: 8},
		{Title: "Reason", Width: 26},
		{Title: "Ref", Width: 8},
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			e.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%+d", e.Amount),
			fmt.Sprintf("%d", e.BalanceAfter),
			e.Reason,
			shortRef(e.ID),
		}
	}
	printTable(columns, rows)
}

// shortRef trims a uuid reference for display.
func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
