package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t Trade) error {
	if !t.Direction.Valid() {
		return fmt.Errorf("trade %q: unknown direction %q", t.ID, t.Direction)
	}

	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, account_id, date, asset, direction, entry_price, exit_price, stop_loss, profit, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.AccountID, t.Date, t.Asset, string(t.Direction),
		t.EntryPrice, t.ExitPrice, stopValue(t), t.Profit, t.Notes,
	)
	return err
}

// UpdateTrade replaces the stored record whole; trades are immutable except
// by full-record update.
func (j *SQLite) UpdateTrade(t Trade) error {
	res, err := j.db.Exec(`
		UPDATE trades
		SET account_id = ?, date = ?, asset = ?, direction = ?, entry_price = ?, exit_price = ?, stop_loss = ?, profit = ?, notes = ?
		WHERE trade_id = ?`,
		t.AccountID, t.Date, t.Asset, string(t.Direction),
		t.EntryPrice, t.ExitPrice, stopValue(t), t.Profit, t.Notes, t.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", t.ID)
	}
	return nil
}

func (j *SQLite) DeleteTrade(tradeID string) error {
	_, err := j.db.Exec(`DELETE FROM trades WHERE trade_id = ?`, tradeID)
	return err
}

func (j *SQLite) RecordAccount(a Account) error {
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO accounts
		(account_id, name, initial_balance, goal, max_drawdown_limit, daily_loss_limit, daily_profit_target, deadline)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.InitialBalance, a.Goal, a.MaxDrawdownLimit,
		a.DailyLossLimit, a.DailyProfitTarget, a.Deadline,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// stopValue maps an unset stop to SQL NULL so it round-trips as HasStop.
func stopValue(t Trade) interface{} {
	if !t.HasStop {
		return nil
	}
	return t.StopLoss
}
