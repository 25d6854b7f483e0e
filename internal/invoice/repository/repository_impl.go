package repository

import (
	"context"

	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() invoicedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, item *invoicedomain.Invoice) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, item *invoicedomain.Invoice) error {
	return db.WithContext(ctx).Save(item).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*invoicedomain.Invoice, error) {
	var item invoicedomain.Invoice
	err := db.WithContext(ctx).Where("id = ?", id).Take(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]invoicedomain.Invoice, error) {
	var items []invoicedomain.Invoice
	err := db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListOpen(ctx context.Context, db *gorm.DB) ([]invoicedomain.Invoice, error) {
	var items []invoicedomain.Invoice
	err := db.WithContext(ctx).
		Where("status NOT IN ?", []invoicedomain.Status{invoicedomain.StatusPaid, invoicedomain.StatusCancelled}).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
