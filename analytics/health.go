package analytics

import "github.com/rustyeddy/tradebook/journal"

// AccountHealth expresses the drawdown buffer as a single percentage.
// HealthPercent may exceed 100 once the balance outgrows the original
// buffer, or go negative on a breach; clamping is left to presentation.
type AccountHealth struct {
	CurrentBalance   float64 `yaml:"current_balance" json:"current_balance"`
	LiquidationLevel float64 `yaml:"liquidation_level" json:"liquidation_level"`
	Cushion          float64 `yaml:"cushion" json:"cushion"`
	HealthPercent    float64 `yaml:"health_percent" json:"health_percent"`
}

// ComputeAccountHealth measures the distance to the account's drawdown
// floor. It always runs over the account's entire history, never a
// date-filtered view, so the buffer reflects every realized trade.
func ComputeAccountHealth(allTrades []journal.Trade, acct journal.Account) AccountHealth {
	balance := acct.InitialBalance
	for _, t := range allTrades {
		balance += t.Profit
	}

	liquidation := acct.InitialBalance - acct.MaxDrawdownLimit
	cushion := balance - liquidation

	return AccountHealth{
		CurrentBalance:   balance,
		LiquidationLevel: liquidation,
		Cushion:          cushion,
		HealthPercent:    cushion / acct.MaxDrawdownLimit * 100,
	}
}
