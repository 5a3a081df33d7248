package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/tradebook/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgFile); err == nil {
		return fmt.Errorf("%s already exists", cfgFile)
	}

	if err := config.Default().SaveToFile(cfgFile); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("wrote %s, edit the account settings before adding trades\n", cfgFile)
	return nil
}
