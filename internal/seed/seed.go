// Package seed bootstraps startup records so a fresh database serves
// sensible defaults before anyone touches the admin endpoints.
package seed

import (
	"context"
	"encoding/json"

	"github.com/brushworkslabs/brushworks/internal/docstore"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	ratebookservice "github.com/brushworkslabs/brushworks/internal/ratebook/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("seed",
	fx.Invoke(EnsureRateBook),
)

// EnsureRateBook writes the default rate book document when none exists.
// An existing document, including one with operator overrides, is left alone.
func EnsureRateBook(db *gorm.DB, log *zap.Logger) error {
	ctx := context.Background()
	store := docstore.New(db)

	data, err := store.Get(ctx, ratebookservice.DocumentKey)
	if err != nil {
		return err
	}
	if len(data) > 0 {
		return nil
	}

	book := ratebookdomain.DefaultRateBook()
	encoded, err := json.Marshal(book)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, ratebookservice.DocumentKey, encoded); err != nil {
		return err
	}

	log.Named("seed").Info("seeded default rate book",
		zap.Float64("base_rate", book.BaseRate()),
	)
	return nil
}
