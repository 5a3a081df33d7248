package analytics

import (
	"math"
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// Summary is the headline scorecard over a trade subset.
type Summary struct {
	TotalTrades   int     `yaml:"total_trades" json:"total_trades"`
	Wins          int     `yaml:"wins" json:"wins"`
	Losses        int     `yaml:"losses" json:"losses"`
	WinRate       float64 `yaml:"win_rate" json:"win_rate"`
	NetProfit     float64 `yaml:"net_profit" json:"net_profit"`
	BestTrade     float64 `yaml:"best_trade" json:"best_trade"`
	WorstTrade    float64 `yaml:"worst_trade" json:"worst_trade"`
	DaysRemaining int     `yaml:"days_remaining" json:"days_remaining"`
}

// AdvancedSummary carries the ratio statistics derived alongside Summary.
type AdvancedSummary struct {
	GrossProfit  float64 `yaml:"gross_profit" json:"gross_profit"`
	GrossLoss    float64 `yaml:"gross_loss" json:"gross_loss"`
	ProfitFactor float64 `yaml:"profit_factor" json:"profit_factor"`
	Expectancy   float64 `yaml:"expectancy" json:"expectancy"`
	TradesPerDay float64 `yaml:"trades_per_day" json:"trades_per_day"`
}

// tradingDaysPerMonth is the convention used by the linear projection.
const tradingDaysPerMonth = 20

// minTradesPerDay floors the projection's frequency input so a thin journal
// still projects something.
const minTradesPerDay = 0.5

// ProfitFactorCap stands in for an undefined ratio when there are gains but
// no losses to divide by.
const ProfitFactorCap = 100

// ComputeStatistics summarizes a date-filtered, time-sorted trade subset.
// Breakeven trades (profit exactly zero) count toward neither wins nor
// losses. Best and worst are clamped toward zero so an all-losing set still
// reports a best trade of 0 and vice versa.
func ComputeStatistics(sorted []journal.Trade, deadline, now time.Time) Summary {
	s := Summary{
		TotalTrades:   len(sorted),
		DaysRemaining: daysRemaining(deadline, now),
	}

	for _, t := range sorted {
		s.NetProfit += t.Profit
		switch {
		case t.Profit > 0:
			s.Wins++
		case t.Profit < 0:
			s.Losses++
		}
		if t.Profit > s.BestTrade {
			s.BestTrade = t.Profit
		}
		if t.Profit < s.WorstTrade {
			s.WorstTrade = t.Profit
		}
	}

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100
	}
	return s
}

// ComputeAdvancedStatistics derives the ratio statistics. netProfit is the
// already-summed P&L of the same subset so the two passes agree.
func ComputeAdvancedStatistics(sorted []journal.Trade, netProfit float64) AdvancedSummary {
	var a AdvancedSummary

	for _, t := range sorted {
		switch {
		case t.Profit > 0:
			a.GrossProfit += t.Profit
		case t.Profit < 0:
			a.GrossLoss += -t.Profit
		}
	}

	switch {
	case a.GrossLoss > 0:
		a.ProfitFactor = a.GrossProfit / a.GrossLoss
	case a.GrossProfit > 0:
		a.ProfitFactor = ProfitFactorCap
	}

	if n := len(sorted); n > 0 {
		a.Expectancy = netProfit / float64(n)
		if n >= 2 {
			spanned := sorted[n-1].Date.Sub(sorted[0].Date).Hours() / 24
			a.TradesPerDay = float64(n) / math.Max(1, spanned)
		}
	}
	return a
}

// Projection extrapolates net P&L over the given horizon: expectancy times
// trade frequency times 20 trading days a month. A straight line, not a
// forecast.
func (a AdvancedSummary) Projection(horizonMonths int) float64 {
	perDay := math.Max(a.TradesPerDay, minTradesPerDay)
	return a.Expectancy * perDay * tradingDaysPerMonth * float64(horizonMonths)
}

// daysRemaining counts whole days until the deadline, negative once it has
// passed.
func daysRemaining(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
