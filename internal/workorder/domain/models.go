// Package domain contains the work order model, its status machine and its
// derivation from an accepted proposal.
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
	ErrNotFound          = errors.New("work_order_not_found")
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidCompletion = errors.New("invalid_completion_percentage")
	ErrInvalidTransition = errors.New("invalid_work_order_transition")
	ErrSourceNotFound    = errors.New("source_proposal_not_found")
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusScheduled:  {StatusInProgress},
	StatusInProgress: {StatusOnHold, StatusCompleted},
	StatusOnHold:     {StatusInProgress},
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next. Cancellation is reachable from any non-terminal state; completed and
// cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusCancelled {
		return !s.Terminal()
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type WorkOrder struct {
	ID         snowflake.ID `json:"id" gorm:"primaryKey"`
	ProposalID snowflake.ID `json:"proposal_id" gorm:"not null;index"`

	CustomerName string  `json:"customer_name" gorm:"type:text;not null"`
	SiteAddress  string  `json:"site_address" gorm:"type:text"`
	SiteZip      string  `json:"site_zip" gorm:"type:text"`
	LandSize     float64 `json:"land_size" gorm:"not null;default:0"`

	OriginalAmount  float64 `json:"original_amount" gorm:"not null;default:0"`
	AdditionalCosts float64 `json:"additional_costs" gorm:"not null;default:0"`
	FinalAmount     float64 `json:"final_amount" gorm:"not null;default:0"`

	LoadoutID            *snowflake.ID              `json:"loadout_id,omitempty" gorm:"index"`
	CrewNotes            string                     `json:"crew_notes" gorm:"type:text"`
	EquipmentIDs         datatypes.JSONSlice[int64] `json:"equipment_ids" gorm:"not null"`
	EstimatedHours       float64                    `json:"estimated_hours" gorm:"not null;default:0"`
	CompletionPercentage float64                    `json:"completion_percentage" gorm:"not null;default:0"`

	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Status       Status     `json:"status" gorm:"type:text;not null;default:'scheduled'"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"not null"`
}

func (WorkOrder) TableName() string { return "work_orders" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *WorkOrder) error
	Update(ctx context.Context, db *gorm.DB, item *WorkOrder) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*WorkOrder, error)
	List(ctx context.Context, db *gorm.DB) ([]WorkOrder, error)
}

type Service interface {
	CreateFromProposal(ctx context.Context, proposalID string) (*WorkOrder, error)
	UpdateWork(ctx context.Context, id string, req WorkRequest) (*WorkOrder, error)
	Get(ctx context.Context, id string) (*WorkOrder, error)
	List(ctx context.Context) ([]WorkOrder, error)
	Transition(ctx context.Context, id string, next Status) (*WorkOrder, error)
}

type WorkRequest struct {
	AdditionalCosts      float64    `json:"additional_costs"`
	LoadoutID            *string    `json:"loadout_id"`
	CrewNotes            string     `json:"crew_notes"`
	EquipmentIDs         []string   `json:"equipment_ids"`
	EstimatedHours       float64    `json:"estimated_hours"`
	CompletionPercentage float64    `json:"completion_percentage"`
	ScheduledFor         *time.Time `json:"scheduled_for"`
}
