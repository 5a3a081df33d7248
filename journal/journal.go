// journal/journal.go
package journal

import (
	"sort"
	"time"
)

// Direction of a trade: long or short.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == Long || d == Short
}

// Trade is a single closed trade as recorded by the user. Profit is the
// realized P&L in account currency and is authoritative: it is never
// recomputed from the prices. Prices and stop are only consulted for
// R-multiple analysis.
type Trade struct {
	ID         string
	AccountID  string
	Date       time.Time
	Asset      string
	Direction  Direction
	EntryPrice float64
	ExitPrice  float64
	StopLoss   float64
	HasStop    bool
	Profit     float64
	Notes      string
}

// Account holds the goal and risk configuration a journal is kept against.
// DailyLossLimit and DailyProfitTarget are unconfigured when zero.
type Account struct {
	ID                string
	Name              string
	InitialBalance    float64
	Goal              float64
	MaxDrawdownLimit  float64
	DailyLossLimit    float64
	DailyProfitTarget float64
	Deadline          time.Time
}

// Journal persists trades and accounts.
type Journal interface {
	RecordTrade(Trade) error
	RecordAccount(Account) error
	Close() error
}

// Normalize assigns the default account to any trade recorded before
// accounts existed. Runs once at load so the analytics never have to
// branch on a missing AccountID.
func Normalize(trades []Trade, defaultAccountID string) {
	for i := range trades {
		if trades[i].AccountID == "" {
			trades[i].AccountID = defaultAccountID
		}
	}
}

// ForAccount returns the trades belonging to one account, order preserved.
func ForAccount(trades []Trade, accountID string) []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out
}

// SortByDate orders trades ascending by execution time. Ties keep their
// input order.
func SortByDate(trades []Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Date.Before(trades[j].Date)
	})
}
