package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func sampleTrade(id string, ts time.Time) Trade {
	return Trade{
		ID:         id,
		AccountID:  "ACC-001",
		Date:       ts,
		Asset:      "ES",
		Direction:  Long,
		EntryPrice: 5000,
		ExitPrice:  5010,
		StopLoss:   4995,
		HasStop:    true,
		Profit:     500,
		Notes:      "breakout",
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','accounts')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["accounts"])
}

func TestSQLiteTradeRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	when := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	expected := sampleTrade("T1", when)
	require.NoError(t, j.RecordTrade(expected))

	actual, err := j.GetTrade("T1")
	require.NoError(t, err)

	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.AccountID, actual.AccountID)
	assert.True(t, actual.Date.Equal(expected.Date))
	assert.Equal(t, expected.Asset, actual.Asset)
	assert.Equal(t, Long, actual.Direction)
	assert.InDelta(t, expected.EntryPrice, actual.EntryPrice, 1e-9)
	assert.InDelta(t, expected.ExitPrice, actual.ExitPrice, 1e-9)
	assert.True(t, actual.HasStop)
	assert.InDelta(t, expected.StopLoss, actual.StopLoss, 1e-9)
	assert.InDelta(t, expected.Profit, actual.Profit, 1e-6)
	assert.Equal(t, expected.Notes, actual.Notes)
}

func TestSQLiteTradeWithoutStop(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	tr := sampleTrade("T1", time.Now().UTC())
	tr.StopLoss = 0
	tr.HasStop = false
	require.NoError(t, j.RecordTrade(tr))

	actual, err := j.GetTrade("T1")
	require.NoError(t, err)
	assert.False(t, actual.HasStop)
	assert.Equal(t, 0.0, actual.StopLoss)
}

func TestSQLiteRejectsBadDirection(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	tr := sampleTrade("T1", time.Now().UTC())
	tr.Direction = "sideways"
	err := j.RecordTrade(tr)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "direction")
}

func TestSQLiteGetTradeNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetTrade("nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteUpdateTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	tr := sampleTrade("T1", time.Now().UTC())
	require.NoError(t, j.RecordTrade(tr))

	tr.Profit = -250
	tr.Notes = "revised"
	require.NoError(t, j.UpdateTrade(tr))

	actual, err := j.GetTrade("T1")
	require.NoError(t, err)
	assert.InDelta(t, -250, actual.Profit, 1e-9)
	assert.Equal(t, "revised", actual.Notes)
}

func TestSQLiteUpdateMissingTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	err := j.UpdateTrade(sampleTrade("ghost", time.Now().UTC()))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteDeleteTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	require.NoError(t, j.RecordTrade(sampleTrade("T1", time.Now().UTC())))
	require.NoError(t, j.DeleteTrade("T1"))

	_, err := j.GetTrade("T1")
	assert.Error(t, err)
}

func TestSQLiteListTradesOrdered(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// insert out of chronological order
	require.NoError(t, j.RecordTrade(sampleTrade("T3", base.Add(48*time.Hour))))
	require.NoError(t, j.RecordTrade(sampleTrade("T1", base)))
	require.NoError(t, j.RecordTrade(sampleTrade("T2", base.Add(24*time.Hour))))

	trades, err := j.ListTrades()
	require.NoError(t, err)
	require.Len(t, trades, 3)

	assert.Equal(t, "T1", trades[0].ID)
	assert.Equal(t, "T2", trades[1].ID)
	assert.Equal(t, "T3", trades[2].ID)
}

func TestSQLiteListTradesForAccount(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mine := sampleTrade("T1", base)
	other := sampleTrade("T2", base.Add(time.Hour))
	other.AccountID = "ACC-002"

	require.NoError(t, j.RecordTrade(mine))
	require.NoError(t, j.RecordTrade(other))

	trades, err := j.ListTradesForAccount("ACC-001")
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "T1", trades[0].ID)
}

func TestSQLiteListTradesBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(sampleTrade("early", base.Add(1*time.Hour))))
	require.NoError(t, j.RecordTrade(sampleTrade("inside", base.Add(5*time.Hour))))
	require.NoError(t, j.RecordTrade(sampleTrade("late", base.Add(30*time.Hour))))

	trades, err := j.ListTradesBetween(base.Add(2*time.Hour), base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "inside", trades[0].ID)
}

func TestSQLiteAccountRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	expected := Account{
		ID:                "ACC-001",
		Name:              "Main",
		InitialBalance:    50000,
		Goal:              60000,
		MaxDrawdownLimit:  2500,
		DailyLossLimit:    500,
		DailyProfitTarget: 1500,
		Deadline:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, j.RecordAccount(expected))

	actual, err := j.GetAccount("ACC-001")
	require.NoError(t, err)
	assert.Equal(t, expected.Name, actual.Name)
	assert.InDelta(t, expected.InitialBalance, actual.InitialBalance, 1e-9)
	assert.InDelta(t, expected.MaxDrawdownLimit, actual.MaxDrawdownLimit, 1e-9)
	assert.InDelta(t, expected.DailyLossLimit, actual.DailyLossLimit, 1e-9)
	assert.True(t, actual.Deadline.Equal(expected.Deadline))

	// RecordAccount is an upsert
	expected.Goal = 75000
	require.NoError(t, j.RecordAccount(expected))

	accounts, err := j.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.InDelta(t, 75000, accounts[0].Goal, 1e-9)
}
