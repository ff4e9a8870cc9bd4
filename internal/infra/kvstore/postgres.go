package kvstore

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the single-table schema backing the postgres store.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key;type:varchar(255)"`
	Value string `gorm:"column:value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func MigratePostgres(db *gorm.DB) error {
	return db.AutoMigrate(&KVEntry{})
}

func (s *PostgresStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).Take(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "PostgresStore.Get")
	}
	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		return false, errors.Wrap(err, "PostgresStore.Get: unmarshal")
	}
	return true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "PostgresStore.Set: marshal")
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{"value": string(raw)}),
	}).Create(&KVEntry{Key: key, Value: string(raw)}).Error
	if err != nil {
		return errors.Wrap(err, "PostgresStore.Set")
	}
	return nil
}
