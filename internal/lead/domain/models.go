// Package domain contains the lead model, the first document in the
// lead → proposal → work order → invoice pipeline.
package domain

import (
	"context"
	"errors"
	"time"

	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("lead_not_found")
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidTier       = errors.New("invalid_tier")
	ErrInvalidTransition = errors.New("invalid_lead_transition")
)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQuoted    Status = "quoted"
	StatusQualified Status = "qualified"
	StatusLost      Status = "lost"
	StatusConverted Status = "converted"
)

var transitions = map[Status][]Status{
	StatusNew:       {StatusContacted},
	StatusContacted: {StatusQuoted},
	StatusQuoted:    {StatusQualified},
	StatusQualified: {StatusLost, StatusConverted},
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next. Lost and converted are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusLost || s == StatusConverted
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQuoted, StatusQualified, StatusLost, StatusConverted:
		return true
	}
	return false
}

type Lead struct {
	ID    snowflake.ID `json:"id" gorm:"primaryKey"`
	Name  string       `json:"name" gorm:"type:text;not null"`
	Phone string       `json:"phone" gorm:"type:text"`
	Email string       `json:"email" gorm:"type:text"`

	Address     string `json:"address" gorm:"type:text"`
	Zip         string `json:"zip" gorm:"type:text"`
	ProjectNote string `json:"project_note" gorm:"type:text"`

	LandSize       float64                    `json:"land_size" gorm:"not null;default:0"`
	PackageType    ratebookdomain.PackageTier `json:"package_type" gorm:"type:text;not null;default:'medium'"`
	TransportHours float64                    `json:"transport_hours" gorm:"not null;default:0"`
	EstimatedValue float64                    `json:"estimated_value" gorm:"not null;default:0"`

	Status    Status    `json:"status" gorm:"type:text;not null;default:'new'"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Lead) TableName() string { return "leads" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Lead) error
	Update(ctx context.Context, db *gorm.DB, item *Lead) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Lead, error)
	List(ctx context.Context, db *gorm.DB) ([]Lead, error)
}

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (*Lead, error)
	Update(ctx context.Context, id string, req UpsertRequest) (*Lead, error)
	Get(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context) ([]Lead, error)
	Transition(ctx context.Context, id string, next Status) (*Lead, error)

	// SetTransportEstimate records a round-trip transport estimate reported
	// by the routing collaborator.
	SetTransportEstimate(ctx context.Context, id string, hours float64) error
}

type UpsertRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Zip         string `json:"zip"`
	ProjectNote string `json:"project_note"`

	LandSize       float64                    `json:"land_size"`
	PackageType    ratebookdomain.PackageTier `json:"package_type"`
	TransportHours float64                    `json:"transport_hours"`
	EstimatedValue float64                    `json:"estimated_value"`
}
