// Package domain contains the invoice model, its derivation from a work
// order and the payment reconciliation rules.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("invoice_not_found")
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidTransition = errors.New("invalid_invoice_transition")
	ErrSourceNotFound    = errors.New("source_work_order_not_found")
)

type Status string

const (
	StatusDraft         Status = "draft"
	StatusSent          Status = "sent"
	StatusPartiallyPaid Status = "partially_paid"
	StatusOverdue       Status = "overdue"
	StatusPaid          Status = "paid"
	StatusCancelled     Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusDraft:         {StatusSent, StatusCancelled},
	StatusSent:          {StatusPartiallyPaid, StatusPaid, StatusCancelled},
	StatusPartiallyPaid: {StatusPaid, StatusCancelled},
	StatusOverdue:       {StatusPartiallyPaid, StatusPaid, StatusCancelled},
}

// CanTransitionTo reports whether a user-triggered move from s to next is
// allowed. Overdue is never a transition target; it is derived from the due
// date during reconciliation. Paid and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// PaidTolerance absorbs floating rounding when deciding whether an invoice
// is settled.
const PaidTolerance = 0.01

type Invoice struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	WorkOrderID snowflake.ID `json:"work_order_id" gorm:"not null;index"`

	CustomerName string `json:"customer_name" gorm:"type:text;not null"`
	SiteAddress  string `json:"site_address" gorm:"type:text"`

	OriginalAmount  float64 `json:"original_amount" gorm:"not null;default:0"`
	AdditionalCosts float64 `json:"additional_costs" gorm:"not null;default:0"`
	DiscountAmount  float64 `json:"discount_amount" gorm:"not null;default:0"`
	Subtotal        float64 `json:"subtotal" gorm:"not null;default:0"`
	TaxRate         float64 `json:"tax_rate" gorm:"not null;default:0"`
	TaxAmount       float64 `json:"tax_amount" gorm:"not null;default:0"`
	TotalAmount     float64 `json:"total_amount" gorm:"not null;default:0"`
	DepositAmount   float64 `json:"deposit_amount" gorm:"not null;default:0"`
	BalanceAmount   float64 `json:"balance_amount" gorm:"not null;default:0"`

	DepositPaid   bool       `json:"deposit_paid" gorm:"not null;default:false"`
	DepositPaidAt *time.Time `json:"deposit_paid_at,omitempty"`
	BalancePaid   bool       `json:"balance_paid" gorm:"not null;default:false"`
	BalancePaidAt *time.Time `json:"balance_paid_at,omitempty"`

	DueDate   *time.Time `json:"due_date,omitempty"`
	Status    Status     `json:"status" gorm:"type:text;not null;default:'draft'"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"not null"`
}

func (Invoice) TableName() string { return "invoices" }

// TotalPaid is the sum of the settled portions. Partial payments outside the
// deposit/balance split are not modeled.
func (i Invoice) TotalPaid() float64 {
	total := 0.0
	if i.DepositPaid {
		total += i.DepositAmount
	}
	if i.BalancePaid {
		total += i.BalanceAmount
	}
	return total
}

func (i Invoice) AmountDue() float64 {
	return i.TotalAmount - i.TotalPaid()
}

func (i Invoice) IsFullyPaid() bool {
	return i.AmountDue() <= PaidTolerance
}

// IsOverdue is a derived overlay: it holds whenever the due date has passed
// and a balance remains, regardless of the stored status.
func (i Invoice) IsOverdue(now time.Time) bool {
	if i.DueDate == nil || i.IsFullyPaid() {
		return false
	}
	return now.After(*i.DueDate)
}

// Reconcile recomputes the stored status from the payment flags. Fully paid
// promotes to paid; any payment promotes to partially paid; an unpaid
// invoice past its due date surfaces as overdue. Terminal statuses are never
// demoted or reopened.
func (i *Invoice) Reconcile(now time.Time) {
	if i.Status.Terminal() {
		return
	}

	switch {
	case i.IsFullyPaid():
		i.Status = StatusPaid
	case i.TotalPaid() > 0:
		i.Status = StatusPartiallyPaid
	case i.IsOverdue(now):
		i.Status = StatusOverdue
	}
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Invoice) error
	Update(ctx context.Context, db *gorm.DB, item *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB) ([]Invoice, error)
	ListOpen(ctx context.Context, db *gorm.DB) ([]Invoice, error)
}

type Service interface {
	CreateFromWorkOrder(ctx context.Context, workOrderID string) (*Invoice, error)
	UpdateCharges(ctx context.Context, id string, req ChargesRequest) (*Invoice, error)
	RecordPayment(ctx context.Context, id string, req PaymentRequest) (*Invoice, error)
	Get(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context) ([]Invoice, error)
	Transition(ctx context.Context, id string, next Status) (*Invoice, error)

	// SweepOverdue reconciles every open invoice against the current time,
	// surfacing overdue ones. Returns how many invoices changed status.
	SweepOverdue(ctx context.Context) (int, error)
}

type ChargesRequest struct {
	AdditionalCosts float64    `json:"additional_costs"`
	DiscountAmount  float64    `json:"discount_amount"`
	TaxRate         *float64   `json:"tax_rate"`
	DueDate         *time.Time `json:"due_date"`
}

type PaymentRequest struct {
	DepositPaid bool `json:"deposit_paid"`
	BalancePaid bool `json:"balance_paid"`
}
