package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/rustyeddy/tradebook/risk"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a closed trade",
	Long: `Record a closed trade in the journal.

The daily risk gate is evaluated on every insert: when the session's
cumulative P&L crosses the account's daily loss limit or profit target,
a risk advisory is printed instead of the routine confirmation.

Example:
  tradebook add --asset ES --direction long --entry 5000 --exit 5010 --stop 4995 --profit 500`,
	RunE: runAdd,
}

var (
	addAsset     string
	addDirection string
	addEntry     float64
	addExit      float64
	addStop      float64
	addProfit    float64
	addNotes     string
	addTime      string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addAsset, "asset", "", "instrument symbol")
	addCmd.Flags().StringVar(&addDirection, "direction", "long", "trade direction: long|short")
	addCmd.Flags().Float64Var(&addEntry, "entry", 0, "entry price")
	addCmd.Flags().Float64Var(&addExit, "exit", 0, "exit price")
	addCmd.Flags().Float64Var(&addStop, "stop", 0, "stop-loss price (omit to skip R-multiple tracking)")
	addCmd.Flags().Float64Var(&addProfit, "profit", 0, "realized P&L in account currency")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form note")
	addCmd.Flags().StringVar(&addTime, "time", "", "execution time, RFC3339 (default now)")

	addCmd.MarkFlagRequired("asset")
	addCmd.MarkFlagRequired("entry")
	addCmd.MarkFlagRequired("exit")
	addCmd.MarkFlagRequired("profit")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	acct, err := activeAccount(cfg)
	if err != nil {
		return err
	}

	now := time.Now()
	when := now
	if addTime != "" {
		when, err = time.Parse(time.RFC3339, addTime)
		if err != nil {
			return fmt.Errorf("time: %w", err)
		}
	}

	dir := journal.Direction(addDirection)
	if !dir.Valid() {
		return fmt.Errorf("direction must be long or short, got %q", addDirection)
	}

	t := journal.Trade{
		ID:         id.New(),
		AccountID:  acct.ID,
		Date:       when,
		Asset:      addAsset,
		Direction:  dir,
		EntryPrice: addEntry,
		ExitPrice:  addExit,
		Profit:     addProfit,
		Notes:      addNotes,
	}
	if cmd.Flags().Changed("stop") {
		t.StopLoss = addStop
		t.HasStop = true
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	// keep the journal self-describing: the account the trade was scoped
	// to travels with the database
	if err := j.RecordAccount(acct); err != nil {
		return fmt.Errorf("record account: %w", err)
	}

	if err := j.RecordTrade(t); err != nil {
		return fmt.Errorf("record trade: %w", err)
	}

	all, err := loadAccountTrades(j, acct)
	if err != nil {
		return err
	}

	// the gate's clock is the wall clock, not the (possibly backdated)
	// trade timestamp
	res := risk.NewGate().Evaluate(all, acct, t, now)
	if res.Status.Halted() {
		fmt.Printf("[%s] %s\n", res.Status, res.Advisory.Message)
		return nil
	}

	fmt.Printf("recorded %s: %s\n", t.ID, res.Advisory.Message)
	return nil
}
