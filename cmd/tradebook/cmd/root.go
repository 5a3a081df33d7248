package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A personal trading journal with performance and risk analytics",
	Long: `Tradebook is a personal trading journal written in Go.

It provides tools for:
  - Recording closed trades with prices, stops and realized P&L
  - Win rate, expectancy, profit factor and capital curve analytics
  - R-multiple analysis of risk-adjusted trade outcomes
  - Daily loss-limit and profit-target session halts
  - Account drawdown health against a configured goal`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "./tradebook.yaml", "path to config file")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openJournal(cfg *config.Config) (*journal.SQLite, error) {
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

// activeAccount resolves the configured active account into model form.
func activeAccount(cfg *config.Config) (journal.Account, error) {
	acct, err := cfg.Active().Account()
	if err != nil {
		return journal.Account{}, fmt.Errorf("account: %w", err)
	}
	return acct, nil
}

// loadAccountTrades returns the active account's trades, normalized and
// sorted the way the analytics expect.
func loadAccountTrades(j *journal.SQLite, acct journal.Account) ([]journal.Trade, error) {
	trades, err := j.ListTrades()
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	journal.Normalize(trades, acct.ID)
	trades = journal.ForAccount(trades, acct.ID)
	journal.SortByDate(trades)
	return trades, nil
}

var (
	rangeFlag string
	startFlag string
	endFlag   string
)

func addRangeFlags(c *cobra.Command) {
	c.Flags().StringVarP(&rangeFlag, "range", "r", "all", "date range: today|week|month|all|custom")
	c.Flags().StringVar(&startFlag, "start", "", "custom range start session (YYYY-MM-DD)")
	c.Flags().StringVar(&endFlag, "end", "", "custom range end session (YYYY-MM-DD)")
}

func filterFlagged(trades []journal.Trade, now time.Time) []journal.Trade {
	kind := analytics.Range(rangeFlag)
	custom := analytics.CustomRange{Start: startFlag, End: endFlag}
	return analytics.FilterByRange(trades, kind, custom, now)
}
