package repository

import (
	"context"

	equipmentdomain "github.com/brushworkslabs/brushworks/internal/equipment/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() equipmentdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, item *equipmentdomain.Equipment) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, item *equipmentdomain.Equipment) error {
	return db.WithContext(ctx).Save(item).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*equipmentdomain.Equipment, error) {
	var item equipmentdomain.Equipment
	err := db.WithContext(ctx).Where("id = ?", id).Take(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]equipmentdomain.Equipment, error) {
	var items []equipmentdomain.Equipment
	err := db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&equipmentdomain.Equipment{}).Error
}
