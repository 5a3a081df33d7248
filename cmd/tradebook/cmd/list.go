package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal trades",
	Long: `List the active account's trades for a date range.

Examples:
  tradebook list
  tradebook list --range today
  tradebook list --range custom --start 2026-02-01`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addRangeFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	acct, err := activeAccount(cfg)
	if err != nil {
		return err
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := loadAccountTrades(j, acct)
	if err != nil {
		return err
	}

	subset := filterFlagged(trades, time.Now())
	if len(subset) == 0 {
		fmt.Println("no trades in range")
		return nil
	}

	fmt.Printf("%-28s %-12s %-10s %-6s %10s %10s %10s\n",
		"TRADE", "SESSION", "ASSET", "DIR", "ENTRY", "EXIT", "P&L")
	for _, t := range subset {
		fmt.Printf("%-28s %-12s %-10s %-6s %10.4f %10.4f %10.2f\n",
			t.ID, analytics.SessionKey(t.Date), t.Asset, t.Direction,
			t.EntryPrice, t.ExitPrice, t.Profit)
	}
	return nil
}
