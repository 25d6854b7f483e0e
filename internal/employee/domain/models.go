// Package domain contains crew member models. An employee's true hourly
// cost is the base wage grossed up by a burden multiplier covering payroll
// taxes, workers comp and benefits.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("employee_not_found")
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidWage   = errors.New("invalid_wage")
	ErrInvalidBurden = errors.New("invalid_burden_multiplier")
)

type Employee struct {
	ID               snowflake.ID `json:"id" gorm:"primaryKey"`
	Name             string       `json:"name" gorm:"type:text;not null"`
	Role             string       `json:"role" gorm:"type:text"`
	BaseHourlyWage   float64      `json:"base_hourly_wage" gorm:"not null;default:0"`
	BurdenMultiplier float64      `json:"burden_multiplier" gorm:"not null;default:1.25"`
	CreatedAt        time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time    `json:"updated_at" gorm:"not null"`
}

func (Employee) TableName() string { return "employees" }

// TrueHourlyCost is the fully burdened hourly cost of keeping this person on
// a crew.
func (e Employee) TrueHourlyCost() float64 {
	return e.BaseHourlyWage * e.BurdenMultiplier
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Employee) error
	Update(ctx context.Context, db *gorm.DB, item *Employee) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Employee, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]Employee, error)
	List(ctx context.Context, db *gorm.DB) ([]Employee, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (*Employee, error)
	Update(ctx context.Context, id string, req UpsertRequest) (*Employee, error)
	Get(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}

type UpsertRequest struct {
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	BaseHourlyWage   float64 `json:"base_hourly_wage"`
	BurdenMultiplier float64 `json:"burden_multiplier"`
}
