package domain

import (
	"testing"
	"time"

	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

func TestFromWorkOrderDerivation(t *testing.T) {
	node := testNode(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	workOrder := workorderdomain.WorkOrder{
		ID:           node.Generate(),
		CustomerName: "Hollis Creek Farm",
		SiteAddress:  "412 Hollis Creek Rd",
		FinalAmount:  9195.40,
	}

	inv := FromWorkOrder(node.Generate(), workOrder, 0.0875, 0.25, now)

	assert.Equal(t, workOrder.ID, inv.WorkOrderID)
	assert.Equal(t, StatusDraft, inv.Status)
	assert.InDelta(t, 9195.40, inv.OriginalAmount, 1e-9)
	assert.InDelta(t, 9195.40, inv.Subtotal, 1e-9)
	assert.InDelta(t, 9195.40*0.0875, inv.TaxAmount, 1e-6)
	assert.InDelta(t, 9195.40*1.0875, inv.TotalAmount, 1e-6)
	assert.InDelta(t, inv.TotalAmount*0.25, inv.DepositAmount, 1e-6)
	assert.InDelta(t, inv.TotalAmount-inv.DepositAmount, inv.BalanceAmount, 1e-6)
	require.NotNil(t, inv.DueDate)
	assert.Equal(t, now.AddDate(0, 0, DefaultDueDays), *inv.DueDate)
}

func TestRecomputeTotalsAfterChargeEdits(t *testing.T) {
	inv := Invoice{
		OriginalAmount:  10000,
		AdditionalCosts: 500,
		DiscountAmount:  1000,
		TaxRate:         0.10,
	}
	inv.RecomputeTotals(0.25)

	assert.InDelta(t, 9500.0, inv.Subtotal, 1e-9)
	assert.InDelta(t, 950.0, inv.TaxAmount, 1e-9)
	assert.InDelta(t, 10450.0, inv.TotalAmount, 1e-9)
	assert.InDelta(t, 2612.50, inv.DepositAmount, 1e-9)
	assert.InDelta(t, 7837.50, inv.BalanceAmount, 1e-9)
}

func TestRecomputeTotalsFreezesPaidDeposit(t *testing.T) {
	inv := Invoice{
		OriginalAmount: 10000,
		TaxRate:        0.10,
		DepositPaid:    true,
		DepositAmount:  2750,
	}

	inv.AdditionalCosts = 2000
	inv.RecomputeTotals(0.25)

	assert.InDelta(t, 13200.0, inv.TotalAmount, 1e-9)
	assert.InDelta(t, 2750.0, inv.DepositAmount, 1e-9, "a paid deposit never changes value")
	assert.InDelta(t, 13200.0-2750.0, inv.BalanceAmount, 1e-9)
	assert.InDelta(t, 2750.0, inv.TotalPaid(), 1e-9)
}

func TestPaymentReconciliation(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	inv := Invoice{
		TotalAmount:   10000,
		DepositAmount: 2500,
		BalanceAmount: 7500,
		Status:        StatusSent,
	}

	inv.DepositPaid = true
	inv.Reconcile(now)
	assert.InDelta(t, 2500.0, inv.TotalPaid(), 1e-9)
	assert.InDelta(t, 7500.0, inv.AmountDue(), 1e-9)
	assert.False(t, inv.IsFullyPaid())
	assert.Equal(t, StatusPartiallyPaid, inv.Status)

	inv.BalancePaid = true
	inv.Reconcile(now)
	assert.InDelta(t, 0.0, inv.AmountDue(), 1e-9)
	assert.True(t, inv.IsFullyPaid())
	assert.Equal(t, StatusPaid, inv.Status)
}

func TestIsFullyPaidTolerance(t *testing.T) {
	inv := Invoice{
		TotalAmount:   100.00,
		DepositAmount: 25.00,
		BalanceAmount: 74.995,
		DepositPaid:   true,
		BalancePaid:   true,
	}
	assert.True(t, inv.IsFullyPaid(), "a residue within the cent tolerance counts as settled")
}

func TestOverdueIsDerivedOverlay(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	inv := Invoice{
		TotalAmount:   5000,
		DepositAmount: 1250,
		BalanceAmount: 3750,
		DueDate:       &due,
		Status:        StatusSent,
	}

	assert.False(t, inv.IsOverdue(due.Add(-time.Hour)))
	assert.True(t, inv.IsOverdue(due.Add(time.Hour)))

	inv.Reconcile(due.Add(24 * time.Hour))
	assert.Equal(t, StatusOverdue, inv.Status)

	// paying in full clears the overlay even past the due date
	inv.DepositPaid = true
	inv.BalancePaid = true
	assert.False(t, inv.IsOverdue(due.Add(48*time.Hour)))
	inv.Reconcile(due.Add(48 * time.Hour))
	assert.Equal(t, StatusPaid, inv.Status)
}

func TestReconcileNeverDemotesTerminalStatus(t *testing.T) {
	now := time.Now()

	cancelled := Invoice{Status: StatusCancelled, TotalAmount: 100, DepositAmount: 100, DepositPaid: true}
	cancelled.Reconcile(now)
	assert.Equal(t, StatusCancelled, cancelled.Status, "a cancelled invoice is never auto-reopened")

	paid := Invoice{Status: StatusPaid, TotalAmount: 100}
	paid.Reconcile(now)
	assert.Equal(t, StatusPaid, paid.Status)
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusDraft, StatusPaid, false},
		{StatusSent, StatusPaid, true},
		{StatusSent, StatusCancelled, true},
		{StatusPartiallyPaid, StatusPaid, true},
		{StatusOverdue, StatusPaid, true},
		{StatusSent, StatusOverdue, false},
		{StatusPaid, StatusCancelled, false},
		{StatusCancelled, StatusDraft, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
