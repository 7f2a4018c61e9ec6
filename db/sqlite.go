package db

import (
	"database/sql"
	"os"

	_ "modernc.org/sqlite"
)

var DB *sql.DB

// Schema is applied on every connect; CREATE TABLE IF NOT EXISTS keeps it
// idempotent. The UNIQUE constraint on fakeid is what rejects duplicate
// tracked accounts.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	fakeid TEXT NOT NULL UNIQUE,
	added_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

func Connect() error {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "app.db"
	}

	var err error
	DB, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}

	// modernc sqlite allows a single writer.
	DB.SetMaxOpenConns(1)

	if err := DB.Ping(); err != nil {
		return err
	}

	_, err = DB.Exec(Schema)
	return err
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
