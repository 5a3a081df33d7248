package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVHeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "trade_id")
	assert.Contains(t, lines[0], "profit")
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{
			ID:         "T1",
			AccountID:  "ACC-001",
			Date:       time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
			Asset:      "ES",
			Direction:  Long,
			EntryPrice: 5000,
			ExitPrice:  5010.25,
			StopLoss:   4995.5,
			HasStop:    true,
			Profit:     512.5,
			Notes:      "breakout, held through lunch",
		},
		{
			ID:         "T2",
			AccountID:  "ACC-001",
			Date:       time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
			Asset:      "NQ",
			Direction:  Short,
			EntryPrice: 18000,
			ExitPrice:  18050,
			Profit:     -100,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, trades))

	back, err := ImportCSV(&buf)
	require.NoError(t, err)
	require.Len(t, back, 2)

	assert.Equal(t, trades[0].ID, back[0].ID)
	assert.True(t, back[0].Date.Equal(trades[0].Date))
	assert.Equal(t, Long, back[0].Direction)
	assert.True(t, back[0].HasStop)
	assert.InDelta(t, 4995.5, back[0].StopLoss, 1e-9)
	assert.InDelta(t, 512.5, back[0].Profit, 1e-9)
	assert.Equal(t, trades[0].Notes, back[0].Notes)

	// unset stop survives as unset, not zero
	assert.False(t, back[1].HasStop)
	assert.Equal(t, Short, back[1].Direction)
	assert.InDelta(t, -100, back[1].Profit, 1e-9)
}

func TestImportCSVEmpty(t *testing.T) {
	t.Parallel()

	back, err := ImportCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, back)
}
