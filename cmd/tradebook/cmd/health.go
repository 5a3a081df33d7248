package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show account drawdown health",
	Long: `Show the account's distance to its drawdown floor.

Health is always computed over the account's entire trade history,
not a date-filtered view.`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
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

	h := analytics.ComputeAccountHealth(trades, acct)

	fmt.Printf("Account:        %s (%s)\n", acct.Name, acct.ID)
	fmt.Printf("Balance:        %.2f (started %.2f, goal %.2f)\n", h.CurrentBalance, acct.InitialBalance, acct.Goal)
	fmt.Printf("Liquidation at: %.2f\n", h.LiquidationLevel)
	fmt.Printf("Cushion:        %.2f\n", h.Cushion)
	fmt.Printf("Health:         %.1f%%\n", h.HealthPercent)
	return nil
}
