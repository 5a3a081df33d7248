package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const tradeColumns = `trade_id, account_id, date, asset, direction, entry_price, exit_price, stop_loss, profit, notes`

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (Trade, error) {
	row := j.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return Trade{}, err
	}
	return t, nil
}

// ListTrades returns every trade ordered ascending by execution time,
// which is the pre-sorted sequence the analytics expect.
func (j *SQLite) ListTrades() ([]Trade, error) {
	rows, err := j.db.Query(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// ListTradesForAccount returns one account's trades ordered ascending by
// execution time.
func (j *SQLite) ListTradesForAccount(accountID string) ([]Trade, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE account_id = ?
		ORDER BY date ASC`, accountID)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// ListTradesBetween returns trades executed within [start, end).
func (j *SQLite) ListTradesBetween(start, end time.Time) ([]Trade, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE date >= ? AND date < ?
		ORDER BY date ASC`, start, end)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// GetAccount returns a single account by ID.
func (j *SQLite) GetAccount(accountID string) (Account, error) {
	var a Account
	row := j.db.QueryRow(`
		SELECT account_id, name, initial_balance, goal, max_drawdown_limit, daily_loss_limit, daily_profit_target, deadline
		FROM accounts
		WHERE account_id = ?`, accountID)

	err := row.Scan(&a.ID, &a.Name, &a.InitialBalance, &a.Goal,
		&a.MaxDrawdownLimit, &a.DailyLossLimit, &a.DailyProfitTarget, &a.Deadline)
	if err != nil {
		if err == sql.ErrNoRows {
			return Account{}, fmt.Errorf("account %q not found", accountID)
		}
		return Account{}, err
	}
	return a, nil
}

// ListAccounts returns all accounts, insertion order by rowid.
func (j *SQLite) ListAccounts() ([]Account, error) {
	rows, err := j.db.Query(`
		SELECT account_id, name, initial_balance, goal, max_drawdown_limit, daily_loss_limit, daily_profit_target, deadline
		FROM accounts
		ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.InitialBalance, &a.Goal,
			&a.MaxDrawdownLimit, &a.DailyLossLimit, &a.DailyProfitTarget, &a.Deadline); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrade(row rowScanner) (Trade, error) {
	var t Trade
	var dir string
	var stop sql.NullFloat64

	err := row.Scan(&t.ID, &t.AccountID, &t.Date, &t.Asset, &dir,
		&t.EntryPrice, &t.ExitPrice, &stop, &t.Profit, &t.Notes)
	if err != nil {
		return Trade{}, err
	}

	t.Direction = Direction(dir)
	if stop.Valid {
		t.StopLoss = stop.Float64
		t.HasStop = true
	}
	return t, nil
}

func collectTrades(rows *sql.Rows) ([]Trade, error) {
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
