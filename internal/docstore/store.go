// Package docstore provides an opaque key to JSON-document store used for
// process-wide configuration records such as the rate book. Records that
// fail to decode degrade to "no data" rather than surfacing an error.
package docstore

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Store interface {
	// Get returns the stored document bytes for key, or nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

type Document struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Data      []byte    `gorm:"type:blob;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Document) TableName() string { return "documents" }

type gormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc Document
	err := s.db.WithContext(ctx).Raw(
		`SELECT key, data, updated_at FROM documents WHERE key = ?`, key,
	).Scan(&doc).Error
	if err != nil {
		return nil, err
	}
	if doc.Key == "" {
		return nil, nil
	}
	return doc.Data, nil
}

func (s *gormStore) Put(ctx context.Context, key string, data []byte) error {
	now := time.Now().UTC()
	res := s.db.WithContext(ctx).Exec(
		`UPDATE documents SET data = ?, updated_at = ? WHERE key = ?`, data, now, key,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return s.db.WithContext(ctx).Exec(
		`INSERT INTO documents (key, data, updated_at) VALUES (?, ?, ?)`, key, data, now,
	).Error
}

// Decode unmarshals stored bytes into out. A decode failure is absorbed: out
// is left untouched, the failure is logged and ok is false, as is the case
// for a missing document.
func Decode(log *zap.Logger, key string, data []byte, out any) (ok bool) {
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		if log != nil {
			log.Warn("discarding undecodable document",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return false
	}
	return true
}
