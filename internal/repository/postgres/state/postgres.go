package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"family-organizer/internal/storage"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Key       string    `gorm:"primaryKey"`
	Payload   string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Entry) TableName() string {
	return "app_state"
}

type PostgresBackend struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	if err := b.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("state: app_state is missing, migrations not applied: %w", err)
		}
		return nil, err
	}
	return []byte(entry.Payload), nil
}

func (b *PostgresBackend) Save(ctx context.Context, key string, payload []byte) error {
	entry := Entry{
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}

	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&entry).Error
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
