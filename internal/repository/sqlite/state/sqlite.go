package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"family-organizer/internal/storage"
)

type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

func (b *SQLiteBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := b.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (b *SQLiteBackend) Save(ctx context.Context, key string, payload []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO app_state (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, time.Now().UTC().Unix())
	return err
}
