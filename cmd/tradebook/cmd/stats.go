package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance statistics",
	Long: `Compute the performance scorecard over a date range.

Examples:
  tradebook stats
  tradebook stats --range month
  tradebook stats --range custom --start 2026-01-01 --end 2026-03-31 --format yaml`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsFormat  string
	statsHorizon int
)

func init() {
	rootCmd.AddCommand(statsCmd)
	addRangeFlags(statsCmd)
	statsCmd.Flags().StringVar(&statsFormat, "format", "text", "output format: text|yaml")
	statsCmd.Flags().IntVar(&statsHorizon, "horizon", 3, "projection horizon in months")
}

// statsReport is the combined yaml payload for --format yaml.
type statsReport struct {
	Summary    analytics.Summary         `yaml:"summary"`
	Advanced   analytics.AdvancedSummary `yaml:"advanced"`
	Projection float64                   `yaml:"projection"`
}

func runStats(cmd *cobra.Command, args []string) error {
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

	now := time.Now()
	subset := filterFlagged(trades, now)

	summary := analytics.ComputeStatistics(subset, acct.Deadline, now)
	advanced := analytics.ComputeAdvancedStatistics(subset, summary.NetProfit)
	projection := advanced.Projection(statsHorizon)

	if statsFormat == "yaml" {
		out, err := yaml.Marshal(statsReport{
			Summary:    summary,
			Advanced:   advanced,
			Projection: projection,
		})
		if err != nil {
			return fmt.Errorf("marshal stats: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	fmt.Printf("Trades:        %d (%d wins / %d losses)\n", summary.TotalTrades, summary.Wins, summary.Losses)
	fmt.Printf("Win rate:      %.2f%%\n", summary.WinRate)
	fmt.Printf("Net P&L:       %.2f\n", summary.NetProfit)
	fmt.Printf("Best trade:    %.2f\n", summary.BestTrade)
	fmt.Printf("Worst trade:   %.2f\n", summary.WorstTrade)
	fmt.Printf("Gross profit:  %.2f\n", advanced.GrossProfit)
	fmt.Printf("Gross loss:    %.2f\n", advanced.GrossLoss)
	fmt.Printf("Profit factor: %.2f\n", advanced.ProfitFactor)
	fmt.Printf("Expectancy:    %.2f\n", advanced.Expectancy)
	fmt.Printf("Trades/day:    %.2f\n", advanced.TradesPerDay)
	fmt.Printf("Projection:    %.2f over %d month(s)\n", projection, statsHorizon)
	fmt.Printf("Days to goal:  %d\n", summary.DaysRemaining)
	return nil
}
