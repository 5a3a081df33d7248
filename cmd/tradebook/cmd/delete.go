package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade from the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	tradeID := args[0]
	if !id.Valid(tradeID) {
		return fmt.Errorf("%q is not a trade id", tradeID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	// confirm it exists so a typo reports instead of silently deleting nothing
	if _, err := j.GetTrade(tradeID); err != nil {
		return err
	}

	if err := j.DeleteTrade(tradeID); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("deleted %s\n", tradeID)
	return nil
}
