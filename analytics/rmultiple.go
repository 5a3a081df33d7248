package analytics

import (
	"math"

	"github.com/rustyeddy/tradebook/journal"
)

// riskEpsilon rejects stops so close to entry that the ratio would explode
// from rounding noise.
const riskEpsilon = 1e-9

// RMultiplePoint is one trade's outcome expressed as a multiple of the
// amount risked at entry. Profit is carried through so visualizations can
// cross-reference sign.
type RMultiplePoint struct {
	TradeID string  `yaml:"trade_id" json:"trade_id"`
	Index   int     `yaml:"index" json:"index"`
	R       float64 `yaml:"r" json:"r"`
	Profit  float64 `yaml:"profit" json:"profit"`
}

// ComputeRMultiples maps each eligible trade to its R-multiple, in input
// (time-sorted) order with a 1-based sequence index. Trades without a
// usable stop, or with a stop at entry, are skipped rather than reported as
// errors.
func ComputeRMultiples(sorted []journal.Trade) []RMultiplePoint {
	out := make([]RMultiplePoint, 0, len(sorted))
	for _, t := range sorted {
		if !t.HasStop || t.StopLoss == 0 || t.StopLoss == t.EntryPrice {
			continue
		}
		risk := math.Abs(t.EntryPrice - t.StopLoss)
		if risk < riskEpsilon {
			continue
		}

		reward := t.ExitPrice - t.EntryPrice
		if t.Direction == journal.Short {
			reward = t.EntryPrice - t.ExitPrice
		}

		out = append(out, RMultiplePoint{
			TradeID: t.ID,
			Index:   len(out) + 1,
			R:       math.Round(reward/risk*100) / 100,
			Profit:  t.Profit,
		})
	}
	return out
}
