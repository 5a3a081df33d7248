package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/spf13/cobra"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Show the cumulative P&L curve",
	Args:  cobra.NoArgs,
	RunE:  runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)
	addRangeFlags(curveCmd)
}

func runCurve(cmd *cobra.Command, args []string) error {
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

	curve := analytics.BuildCapitalCurve(filterFlagged(trades, time.Now()))
	if len(curve.Points) == 0 {
		fmt.Println("no trades in range")
		return nil
	}

	fmt.Printf("%-12s %12s %12s\n", "SESSION", "P&L", "CUMULATIVE")
	for _, p := range curve.Points {
		fmt.Printf("%-12s %12.2f %12.2f\n", p.Session, p.Profit, p.Cumulative)
	}
	fmt.Printf("zero offset: %.4f\n", curve.ZeroOffset)
	return nil
}
