package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/spf13/cobra"
)

var rmultiplesCmd = &cobra.Command{
	Use:   "rmultiples",
	Short: "Show R-multiples for trades with a stop",
	Long: `Express each trade's outcome as a multiple of the amount risked.

Only trades recorded with a stop-loss away from the entry price are
eligible; the rest are skipped.`,
	Args: cobra.NoArgs,
	RunE: runRMultiples,
}

func init() {
	rootCmd.AddCommand(rmultiplesCmd)
	addRangeFlags(rmultiplesCmd)
}

func runRMultiples(cmd *cobra.Command, args []string) error {
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

	points := analytics.ComputeRMultiples(filterFlagged(trades, time.Now()))
	if len(points) == 0 {
		fmt.Println("no eligible trades in range")
		return nil
	}

	fmt.Printf("%-6s %-28s %8s %12s\n", "#", "TRADE", "R", "P&L")
	for _, p := range points {
		fmt.Printf("%-6d %-28s %8.2f %12.2f\n", p.Index, p.TradeID, p.R, p.Profit)
	}
	return nil
}
