package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow maps a whole collection document to one table row, keeping the
// full-collection read/replace contract while making replacement transactional.
type collectionRow struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (collectionRow) TableName() string {
	return "collections"
}

// SQLiteStore is a Store backend over an embedded SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database and migrates the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Read decodes the stored collection row into out, reporting found=false when
// the collection has never been written.
func (s *SQLiteStore) Read(ctx context.Context, collection string, out interface{}) (bool, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", collection, err)
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", collection, err)
	}
	return true, nil
}

// Replace upserts the collection row inside a transaction.
func (s *SQLiteStore) Replace(ctx context.Context, collection string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := collectionRow{Name: collection, Data: payload, UpdatedAt: time.Now()}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("write %s: %w", collection, err)
		}
		return nil
	})
}
