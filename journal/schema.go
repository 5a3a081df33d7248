// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	date DATETIME NOT NULL,
	asset TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	stop_loss REAL,
	profit REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS accounts (
	account_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	initial_balance REAL NOT NULL,
	goal REAL NOT NULL,
	max_drawdown_limit REAL NOT NULL,
	daily_loss_limit REAL NOT NULL DEFAULT 0,
	daily_profit_target REAL NOT NULL DEFAULT 0,
	deadline DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account_id);
`
