package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"family-organizer/pkg/logger"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS app_state (
	key TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// NewSQLite opens (and creates if needed) the single-file store and ensures
// the state table exists.
func NewSQLite(path string, log logger.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	log.Info("db: opening sqlite", "path", path)
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; the store already serializes updates.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("sqlite wal: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return sqlDB, nil
}
