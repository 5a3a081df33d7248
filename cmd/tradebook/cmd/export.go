package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export trades as CSV",
	Long: `Export the active account's trades as CSV.

Examples:
  tradebook export
  tradebook export --out trades.csv --range month`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	addRangeFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	w := os.Stdout
	if exportOut != "" {
		w, err = os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer w.Close()
	}

	if err := journal.ExportCSV(w, subset); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}
