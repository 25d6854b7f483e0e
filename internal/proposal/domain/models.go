// Package domain contains the proposal model and its derivation from a
// lead.
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
	ErrNotFound          = errors.New("proposal_not_found")
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidTransition = errors.New("invalid_proposal_transition")
	ErrSourceNotFound    = errors.New("source_lead_not_found")
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

var transitions = map[Status][]Status{
	StatusDraft: {StatusSent},
	StatusSent:  {StatusAccepted, StatusRejected, StatusExpired},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusExpired
}

type Proposal struct {
	ID     snowflake.ID `json:"id" gorm:"primaryKey"`
	LeadID snowflake.ID `json:"lead_id" gorm:"not null;index"`

	CustomerName  string `json:"customer_name" gorm:"type:text;not null"`
	CustomerPhone string `json:"customer_phone" gorm:"type:text"`
	CustomerEmail string `json:"customer_email" gorm:"type:text"`
	SiteAddress   string `json:"site_address" gorm:"type:text"`
	SiteZip       string `json:"site_zip" gorm:"type:text"`

	LandSize       float64                    `json:"land_size" gorm:"not null;default:0"`
	PackageType    ratebookdomain.PackageTier `json:"package_type" gorm:"type:text;not null;default:'medium'"`
	TransportHours float64                    `json:"transport_hours" gorm:"not null;default:2"`

	Subtotal    float64 `json:"subtotal" gorm:"not null;default:0"`
	TaxAmount   float64 `json:"tax_amount" gorm:"not null;default:0"`
	Discount    float64 `json:"discount" gorm:"not null;default:0"`
	TotalAmount float64 `json:"total_amount" gorm:"not null;default:0"`

	Status     Status     `json:"status" gorm:"type:text;not null;default:'draft'"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"not null"`
}

func (Proposal) TableName() string { return "proposals" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Proposal) error
	Update(ctx context.Context, db *gorm.DB, item *Proposal) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Proposal, error)
	List(ctx context.Context, db *gorm.DB) ([]Proposal, error)
}

type Service interface {
	CreateFromLead(ctx context.Context, leadID string) (*Proposal, error)
	UpdatePricing(ctx context.Context, id string, req PricingRequest) (*Proposal, error)
	Get(ctx context.Context, id string) (*Proposal, error)
	List(ctx context.Context) ([]Proposal, error)
	Transition(ctx context.Context, id string, next Status) (*Proposal, error)
}

type PricingRequest struct {
	Subtotal       float64    `json:"subtotal"`
	TaxAmount      float64    `json:"tax_amount"`
	Discount       float64    `json:"discount"`
	TransportHours float64    `json:"transport_hours"`
	ValidUntil     *time.Time `json:"valid_until"`
}
