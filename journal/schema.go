package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	entry_time TEXT NOT NULL DEFAULT '',
	exit_time TEXT NOT NULL DEFAULT '',
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL,
	pnl REAL NOT NULL,
	rr REAL,
	status TEXT NOT NULL,
	exit_date TEXT NOT NULL DEFAULT '',
	setup TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]',
	notes TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);

CREATE TABLE IF NOT EXISTS journal_entries (
	date TEXT PRIMARY KEY,
	mood INTEGER NOT NULL,
	followed_system INTEGER NOT NULL,
	is_news_day INTEGER NOT NULL,
	pre_market TEXT NOT NULL DEFAULT '',
	review TEXT NOT NULL DEFAULT '',
	lessons TEXT NOT NULL DEFAULT ''
);
`
