// Package domain contains crew+equipment bundle models and the aggregate
// cost engine that prices a loadout's billing rate.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("loadout_not_found")
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidMarkup = errors.New("invalid_markup")
)

// Loadout is a named crew+equipment bundle. Markup is configurable per
// loadout and is distinct from the fixed equipment-level rate markup.
type Loadout struct {
	ID               snowflake.ID               `json:"id" gorm:"primaryKey"`
	Name             string                     `json:"name" gorm:"type:text;not null"`
	MarkupMultiplier float64                    `json:"markup_multiplier" gorm:"not null;default:1.5"`
	EmployeeIDs      datatypes.JSONSlice[int64] `json:"employee_ids" gorm:"not null"`
	EquipmentIDs     datatypes.JSONSlice[int64] `json:"equipment_ids" gorm:"not null"`
	CreatedAt        time.Time                  `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time                  `json:"updated_at" gorm:"not null"`
}

func (Loadout) TableName() string { return "loadouts" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Loadout) error
	Update(ctx context.Context, db *gorm.DB, item *Loadout) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Loadout, error)
	List(ctx context.Context, db *gorm.DB) ([]Loadout, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (*Loadout, error)
	Update(ctx context.Context, id string, req UpsertRequest) (*Loadout, error)
	Get(ctx context.Context, id string) (*Loadout, error)
	List(ctx context.Context) ([]Loadout, error)
	Delete(ctx context.Context, id string) error

	// Calculation resolves the loadout's members and returns its aggregate
	// cost and profitability picture.
	Calculation(ctx context.Context, id string) (*Calculation, error)
}

type UpsertRequest struct {
	Name             string   `json:"name"`
	MarkupMultiplier float64  `json:"markup_multiplier"`
	EmployeeIDs      []string `json:"employee_ids"`
	EquipmentIDs     []string `json:"equipment_ids"`
}
