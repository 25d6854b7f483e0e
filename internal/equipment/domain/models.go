// Package domain contains the equipment fleet models and the operating-cost
// engine that turns purchase, usage and maintenance inputs into an hourly
// cost and a recommended billing rate.
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
	ErrNotFound     = errors.New("equipment_not_found")
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidYears = errors.New("invalid_years_of_service")
	ErrInvalidUsage = errors.New("invalid_usage")
)

// Equipment is a single machine in the fleet with the inputs the cost engine
// needs. Usage (days/hours) and financial fields are stored flat, matching
// how they are edited.
type Equipment struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"type:text;not null"`
	Category  string       `json:"category" gorm:"type:text"`
	ModelYear int          `json:"model_year" gorm:"not null;default:0"`

	PurchasePrice        float64 `json:"purchase_price" gorm:"not null;default:0"`
	YearsOfService       float64 `json:"years_of_service" gorm:"not null;default:1"`
	EstimatedResaleValue float64 `json:"estimated_resale_value" gorm:"not null;default:0"`
	DailyFuelCost        float64 `json:"daily_fuel_cost" gorm:"not null;default:0"`
	AnnualMaintenance    float64 `json:"annual_maintenance" gorm:"not null;default:0"`
	AnnualInsuranceCost  float64 `json:"annual_insurance_cost" gorm:"not null;default:0"`
	DaysPerYear          float64 `json:"days_per_year" gorm:"not null;default:0"`
	HoursPerDay          float64 `json:"hours_per_day" gorm:"not null;default:0"`

	Metadata  datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"not null"`
}

func (Equipment) TableName() string { return "equipment" }

// Age returns the machine age in years as of now. Unknown model years
// report as zero age.
func (e Equipment) Age(now time.Time) int {
	if e.ModelYear <= 0 {
		return 0
	}
	age := now.Year() - e.ModelYear
	if age < 0 {
		return 0
	}
	return age
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Equipment) error
	Update(ctx context.Context, db *gorm.DB, item *Equipment) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Equipment, error)
	List(ctx context.Context, db *gorm.DB) ([]Equipment, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (*Equipment, error)
	Update(ctx context.Context, id string, req UpsertRequest) (*Equipment, error)
	Get(ctx context.Context, id string) (*Equipment, error)
	List(ctx context.Context) ([]Equipment, error)
	Delete(ctx context.Context, id string) error

	// Insights returns the derived cost figures, validation alerts and
	// cost-breakdown analysis for one machine.
	Insights(ctx context.Context, id string) (*Insights, error)
}

type UpsertRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	ModelYear int    `json:"model_year"`

	PurchasePrice        float64 `json:"purchase_price"`
	YearsOfService       float64 `json:"years_of_service"`
	EstimatedResaleValue float64 `json:"estimated_resale_value"`
	DailyFuelCost        float64 `json:"daily_fuel_cost"`
	AnnualMaintenance    float64 `json:"annual_maintenance"`
	AnnualInsuranceCost  float64 `json:"annual_insurance_cost"`
	DaysPerYear          float64 `json:"days_per_year"`
	HoursPerDay          float64 `json:"hours_per_day"`

	Metadata map[string]any `json:"metadata"`
}

// Insights bundles everything the equipment detail screen needs.
type Insights struct {
	Calculation Calculation `json:"calculation"`
	Alerts      []Alert     `json:"alerts"`
	Breakdown   Breakdown   `json:"breakdown"`
}
