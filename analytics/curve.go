package analytics

import "github.com/rustyeddy/tradebook/journal"

// CurvePoint is one step of the cumulative P&L series.
type CurvePoint struct {
	Session    string  `yaml:"session" json:"session"`
	Cumulative float64 `yaml:"cumulative" json:"cumulative"`
	Profit     float64 `yaml:"profit" json:"profit"`
}

// CapitalCurve is the running P&L series plus the fractional height at
// which it crosses zero. ZeroOffset feeds a two-stop gradient: 1 when the
// curve never dips below zero, 0 when it never rises above.
type CapitalCurve struct {
	Points     []CurvePoint `yaml:"points" json:"points"`
	ZeroOffset float64      `yaml:"zero_offset" json:"zero_offset"`
}

// BuildCapitalCurve walks trades already sorted by execution time and emits
// the cumulative series. Tie order among equal timestamps is whatever the
// caller's sort produced.
func BuildCapitalCurve(sorted []journal.Trade) CapitalCurve {
	if len(sorted) == 0 {
		return CapitalCurve{Points: []CurvePoint{}}
	}

	points := make([]CurvePoint, 0, len(sorted))
	var sum, min, max float64
	for i, t := range sorted {
		sum += t.Profit
		if i == 0 || sum < min {
			min = sum
		}
		if i == 0 || sum > max {
			max = sum
		}
		points = append(points, CurvePoint{
			Session:    SessionKey(t.Date),
			Cumulative: sum,
			Profit:     t.Profit,
		})
	}

	var offset float64
	switch {
	case max <= 0:
		offset = 0
	case min >= 0:
		offset = 1
	default:
		offset = max / (max - min)
	}

	return CapitalCurve{Points: points, ZeroOffset: offset}
}
