package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-memory/internal/storage"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List, buy and select plane skins",
	Long: `Skins change how your plane looks. They are bought with coins won in
the campaign and never change how a level plays.

Examples:
  skymemory skins
  skymemory skins buy red_baron
  skymemory skins select red_baron`,
	Run: runSkinsList,
}

var skinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skins with price and ownership",
	Run:   runSkinsList,
}

var skinsBuyCmd = &cobra.Command{
	Use:   "buy <skin>",
	Short: "Buy a skin with coins",
	Args:  cobra.ExactArgs(1),
	Run:   runSkinsBuy,
}

var skinsSelectCmd = &cobra.Command{
	Use:   "select <skin>",
	Short: "Fly with an owned skin",
	Args:  cobra.ExactArgs(1),
	Run:   runSkinsSelect,
}

func init() {
	skinsCmd.AddCommand(skinsListCmd)
	skinsCmd.AddCommand(skinsBuyCmd)
	skinsCmd.AddCommand(skinsSelectCmd)
}

func runSkinsList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	owned, err := store.OwnedSkins()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading skins: %v\n", err)
		return
	}
	selected, err := store.SelectedSkin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading skins: %v\n", err)
		return
	}
	balance, err := store.Balance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading balance: %v\n", err)
		return
	}

	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: 12},
		{Title: "Price", Width: 6},
		{Title: "Status", Width: 10},
	}
	rows := make([]table.Row, len(storage.Skins))
	for i, sk := range storage.Skins {
		status := ""
		switch {
		case sk.ID == selected:
			status = "flying"
		case owned[sk.ID]:
			status = "owned"
		}
		rows[i] = table.Row{sk.ID, sk.Name, fmt.Sprintf("%d", sk.Price), status}
	}

	fmt.Printf("Balance: %d coins\n", balance)
	fmt.Println()
	printTable(columns, rows)
	fmt.Println()
	fmt.Println("Run 'skymemory skins buy <id>' to buy a skin.")
}

func runSkinsBuy(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	id := args[0]
	bought, err := store.BuySkin(id)
	switch {
	case errors.Is(err, storage.ErrUnknownSkin):
		fmt.Fprintf(os.Stderr, "Error: unknown skin %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'skymemory skins' to see the catalogue.")
		store.Close()
		os.Exit(1)
	case errors.Is(err, storage.ErrInsufficientFunds):
		sk, _ := storage.SkinByID(id)
		balance, _ := store.Balance()
		fmt.Fprintf(os.Stderr, "Error: %s costs %d coins, you have %d\n", sk.Name, sk.Price, balance)
		store.Close()
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error buying skin: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if !bought {
		fmt.Printf("You already own %s.\n", id)
		return
	}
	fmt.Printf("Bought %s. Run 'skymemory skins select %s' to fly it.\n", id, id)
}

func runSkinsSelect(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	id := args[0]
	if err := store.SelectSkin(id); err != nil {
		switch {
		case errors.Is(err, storage.ErrUnknownSkin):
			fmt.Fprintf(os.Stderr, "Error: unknown skin %q\n", id)
		case errors.Is(err, storage.ErrSkinNotOwned):
			fmt.Fprintf(os.Stderr, "Error: you do not own %q yet\n", id)
		default:
			fmt.Fprintf(os.Stderr, "Error selecting skin: %v\n", err)
		}
		store.Close()
		os.Exit(1)
	}
	fmt.Printf("Now flying %s.\n", id)
}
