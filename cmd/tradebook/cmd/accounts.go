package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts [account-id]",
	Short: "List accounts recorded in the journal",
	Long: `List the accounts the journal database has seen trades for.

Every insert stamps the active account's settings into the database, so
this shows the configuration each account last traded under. With an
account ID, print that account's full settings.

Examples:
  tradebook accounts
  tradebook accounts ACC-001`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAccounts,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

func runAccounts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	if len(args) == 1 {
		a, err := j.GetAccount(args[0])
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}

		fmt.Printf("Account:             %s (%s)\n", a.Name, a.ID)
		fmt.Printf("Initial balance:     %.2f\n", a.InitialBalance)
		fmt.Printf("Goal:                %.2f\n", a.Goal)
		fmt.Printf("Max drawdown limit:  %.2f\n", a.MaxDrawdownLimit)
		fmt.Printf("Daily loss limit:    %.2f\n", a.DailyLossLimit)
		fmt.Printf("Daily profit target: %.2f\n", a.DailyProfitTarget)
		fmt.Printf("Deadline:            %s\n", a.Deadline.Format("2006-01-02"))
		return nil
	}

	accounts, err := j.ListAccounts()
	if err != nil {
		return fmt.Errorf("query accounts: %w", err)
	}
	if len(accounts) == 0 {
		fmt.Println("no accounts recorded yet, add a trade first")
		return nil
	}

	fmt.Printf("%-12s %-16s %12s %12s %12s\n", "ACCOUNT", "NAME", "BALANCE", "GOAL", "DEADLINE")
	for _, a := range accounts {
		fmt.Printf("%-12s %-16s %12.2f %12.2f %12s\n",
			a.ID, a.Name, a.InitialBalance, a.Goal, a.Deadline.Format("2006-01-02"))
	}
	return nil
}
