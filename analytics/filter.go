package analytics

import (
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// Range selects which slice of the journal a view is computed over.
type Range string

const (
	RangeToday  Range = "today"
	RangeWeek   Range = "week"
	RangeMonth  Range = "month"
	RangeAll    Range = "all"
	RangeCustom Range = "custom"
)

// CustomRange bounds a custom filter with inclusive session keys. End may be
// empty for an open-ended range; an empty Start makes the filter a no-op.
type CustomRange struct {
	Start string
	End   string
}

const week = 7 * 24 * time.Hour

// FilterByRange returns the trades relevant to the requested period, order
// preserved. An unknown kind behaves as RangeAll.
//
// Today and month compare session keys, so the 18:00 cutover applies. Week
// is deliberately different: a rolling 7x24h window over raw timestamps,
// which shifts membership at session boundaries. Kept separate per range
// kind so the policies stay independently adjustable.
func FilterByRange(trades []journal.Trade, kind Range, custom CustomRange, now time.Time) []journal.Trade {
	switch kind {
	case RangeToday:
		today := SessionKey(now)
		return keep(trades, func(t journal.Trade) bool {
			return SessionKey(t.Date) == today
		})

	case RangeWeek:
		return keep(trades, func(t journal.Trade) bool {
			return now.Sub(t.Date) <= week
		})

	case RangeMonth:
		return keep(trades, func(t journal.Trade) bool {
			d, ok := sessionTime(SessionKey(t.Date))
			return ok && d.Year() == now.Year() && d.Month() == now.Month()
		})

	case RangeCustom:
		if custom.Start == "" {
			return trades
		}
		return keep(trades, func(t journal.Trade) bool {
			key := SessionKey(t.Date)
			if key < custom.Start {
				return false
			}
			return custom.End == "" || key <= custom.End
		})

	default:
		return trades
	}
}

func keep(trades []journal.Trade, pred func(journal.Trade) bool) []journal.Trade {
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
