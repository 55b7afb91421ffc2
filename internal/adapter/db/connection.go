package db

import (
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"taskplanner/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	if dir := filepath.Dir(conf.SqlitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Connect("sqlite3", conf.SqlitePath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; serializing through one connection keeps
	// the mirror writes from tripping over each other.
	db.SetMaxOpenConns(1)

	return db, nil
}
