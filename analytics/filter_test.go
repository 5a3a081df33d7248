package analytics

import (
	"testing"
	"time"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tradeAt(id string, ts time.Time) journal.Trade {
	return journal.Trade{ID: id, Date: ts, Profit: 1}
}

func TestFilterAllIsIdentity(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	trades := []journal.Trade{
		tradeAt("a", now.AddDate(0, -2, 0)),
		tradeAt("b", now),
		tradeAt("c", now.AddDate(0, 0, -40)),
	}

	out := FilterByRange(trades, RangeAll, CustomRange{}, now)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestFilterUnknownKindFallsBackToAll(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	trades := []journal.Trade{tradeAt("a", now.AddDate(-1, 0, 0))}

	out := FilterByRange(trades, Range("fortnight"), CustomRange{}, now)
	assert.Len(t, out, 1)
}

func TestFilterTodayUsesSessionKeys(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	trades := []journal.Trade{
		tradeAt("morning", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)),
		// 19:00 yesterday rolls into today's session
		tradeAt("evening", time.Date(2026, 3, 9, 19, 0, 0, 0, time.UTC)),
		// 19:00 today belongs to tomorrow's session
		tradeAt("tonight", time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)),
		tradeAt("lastweek", time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)),
	}

	out := FilterByRange(trades, RangeToday, CustomRange{}, now)
	require.Len(t, out, 2)
	assert.Equal(t, "morning", out[0].ID)
	assert.Equal(t, "evening", out[1].ID)
}

func TestFilterWeekIsRollingWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	trades := []journal.Trade{
		tradeAt("in", now.Add(-6 * 24 * time.Hour)),
		tradeAt("edge", now.Add(-7 * 24 * time.Hour)),
		tradeAt("out", now.Add(-7*24*time.Hour - time.Minute)),
	}

	out := FilterByRange(trades, RangeWeek, CustomRange{}, now)
	require.Len(t, out, 2)
	assert.Equal(t, "in", out[0].ID)
	assert.Equal(t, "edge", out[1].ID)
}

func TestFilterMonthComparesSessionMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	trades := []journal.Trade{
		tradeAt("march", time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)),
		// Feb 28 evening session rolls into March 1
		tradeAt("febEvening", time.Date(2026, 2, 28, 20, 0, 0, 0, time.UTC)),
		tradeAt("feb", time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)),
		tradeAt("lastYear", time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)),
	}

	out := FilterByRange(trades, RangeMonth, CustomRange{}, now)
	require.Len(t, out, 2)
	assert.Equal(t, "march", out[0].ID)
	assert.Equal(t, "febEvening", out[1].ID)
}

func TestFilterCustomInclusiveBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	trades := []journal.Trade{
		tradeAt("before", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
		tradeAt("start", time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)),
		tradeAt("mid", time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)),
		tradeAt("end", time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)),
		tradeAt("after", time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)),
	}

	out := FilterByRange(trades, RangeCustom, CustomRange{Start: "2026-03-05", End: "2026-03-09"}, now)
	require.Len(t, out, 3)
	assert.Equal(t, "start", out[0].ID)
	assert.Equal(t, "end", out[2].ID)
}

func TestFilterCustomOpenEnded(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	trades := []journal.Trade{
		tradeAt("before", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
		tradeAt("after", time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)),
	}

	out := FilterByRange(trades, RangeCustom, CustomRange{Start: "2026-03-05"}, now)
	require.Len(t, out, 1)
	assert.Equal(t, "after", out[0].ID)
}

func TestFilterCustomMissingStartIsAll(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	trades := []journal.Trade{
		tradeAt("a", time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)),
		tradeAt("b", time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)),
	}

	out := FilterByRange(trades, RangeCustom, CustomRange{End: "2026-02-01"}, now)
	assert.Len(t, out, 2)
}
