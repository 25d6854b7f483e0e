package service

import (
	"context"
	"testing"
	"time"

	"github.com/brushworkslabs/brushworks/internal/clock"
	"github.com/brushworkslabs/brushworks/internal/config"
	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	invoicerepository "github.com/brushworkslabs/brushworks/internal/invoice/repository"
	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	workorderrepository "github.com/brushworkslabs/brushworks/internal/workorder/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc   invoicedomain.Service
	db    *gorm.DB
	clock *clock.FakeClock
	node  *snowflake.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&workorderdomain.WorkOrder{}, &invoicedomain.Invoice{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fake := clock.NewFakeClock(time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:            db,
		Log:           zap.NewNop(),
		GenID:         node,
		Repo:          invoicerepository.Provide(),
		WorkOrderRepo: workorderrepository.Provide(),
		Pricing:       config.NewStaticPricingConfigHolder(config.DefaultPricingConfig()),
		Clock:         fake,
	})
	return &fixture{svc: svc, db: db, clock: fake, node: node}
}

func (f *fixture) seedWorkOrder(t *testing.T, finalAmount float64) workorderdomain.WorkOrder {
	t.Helper()
	wo := workorderdomain.WorkOrder{
		ID:             f.node.Generate(),
		ProposalID:     f.node.Generate(),
		CustomerName:   "Hollis Creek Farm",
		OriginalAmount: finalAmount,
		FinalAmount:    finalAmount,
		Status:         workorderdomain.StatusCompleted,
		CreatedAt:      f.clock.Now(),
		UpdatedAt:      f.clock.Now(),
	}
	require.NoError(t, f.db.Create(&wo).Error)
	return wo
}

func TestCreateFromWorkOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	wo := f.seedWorkOrder(t, 10000)

	inv, err := f.svc.CreateFromWorkOrder(ctx, wo.ID.String())
	require.NoError(t, err)
	assert.Equal(t, wo.ID, inv.WorkOrderID)
	assert.Equal(t, invoicedomain.StatusDraft, inv.Status)
	assert.InDelta(t, 10000*1.0875, inv.TotalAmount, 1e-6)
	assert.InDelta(t, inv.TotalAmount*0.25, inv.DepositAmount, 1e-6)
	require.NotNil(t, inv.DueDate)
	assert.Equal(t, f.clock.Now().AddDate(0, 0, invoicedomain.DefaultDueDays), *inv.DueDate)

	_, err = f.svc.CreateFromWorkOrder(ctx, f.node.Generate().String())
	assert.ErrorIs(t, err, invoicedomain.ErrSourceNotFound)

	_, err = f.svc.CreateFromWorkOrder(ctx, "not-an-id")
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidID)
}

func TestRecordPaymentPromotesStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	wo := f.seedWorkOrder(t, 10000)

	inv, err := f.svc.CreateFromWorkOrder(ctx, wo.ID.String())
	require.NoError(t, err)
	id := inv.ID.String()

	inv, err = f.svc.Transition(ctx, id, invoicedomain.StatusSent)
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.StatusSent, inv.Status)

	inv, err = f.svc.RecordPayment(ctx, id, invoicedomain.PaymentRequest{DepositPaid: true})
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.StatusPartiallyPaid, inv.Status)
	require.NotNil(t, inv.DepositPaidAt)
	assert.InDelta(t, inv.BalanceAmount, inv.AmountDue(), 1e-6)

	f.clock.Advance(24 * time.Hour)
	inv, err = f.svc.RecordPayment(ctx, id, invoicedomain.PaymentRequest{BalancePaid: true})
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.StatusPaid, inv.Status)
	require.NotNil(t, inv.BalancePaidAt)
	assert.True(t, inv.BalancePaidAt.After(*inv.DepositPaidAt))

	// flags never clear once set
	inv, err = f.svc.RecordPayment(ctx, id, invoicedomain.PaymentRequest{})
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.StatusPaid, inv.Status)
	assert.True(t, inv.DepositPaid)
	assert.True(t, inv.BalancePaid)
}

func TestUpdateChargesRecomputesAroundPaidDeposit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	wo := f.seedWorkOrder(t, 10000)

	inv, err := f.svc.CreateFromWorkOrder(ctx, wo.ID.String())
	require.NoError(t, err)
	id := inv.ID.String()

	_, err = f.svc.Transition(ctx, id, invoicedomain.StatusSent)
	require.NoError(t, err)
	inv, err = f.svc.RecordPayment(ctx, id, invoicedomain.PaymentRequest{DepositPaid: true})
	require.NoError(t, err)
	paidDeposit := inv.DepositAmount

	inv, err = f.svc.UpdateCharges(ctx, id, invoicedomain.ChargesRequest{AdditionalCosts: 1000})
	require.NoError(t, err)
	assert.InDelta(t, 11000*1.0875, inv.TotalAmount, 1e-6)
	assert.InDelta(t, paidDeposit, inv.DepositAmount, 1e-6, "charge edits land on the balance once the deposit is paid")
	assert.InDelta(t, inv.TotalAmount-paidDeposit, inv.BalanceAmount, 1e-6)
	assert.Equal(t, invoicedomain.StatusPartiallyPaid, inv.Status)
}

func TestUpdateChargesRejectsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	wo := f.seedWorkOrder(t, 5000)

	inv, err := f.svc.CreateFromWorkOrder(ctx, wo.ID.String())
	require.NoError(t, err)
	id := inv.ID.String()

	_, err = f.svc.Transition(ctx, id, invoicedomain.StatusSent)
	require.NoError(t, err)
	_, err = f.svc.Transition(ctx, id, invoicedomain.StatusCancelled)
	require.NoError(t, err)

	_, err = f.svc.UpdateCharges(ctx, id, invoicedomain.ChargesRequest{AdditionalCosts: 100})
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidTransition)
}

func TestSweepOverdue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	wo := f.seedWorkOrder(t, 8000)

	inv, err := f.svc.CreateFromWorkOrder(ctx, wo.ID.String())
	require.NoError(t, err)
	_, err = f.svc.Transition(ctx, inv.ID.String(), invoicedomain.StatusSent)
	require.NoError(t, err)

	changed, err := f.svc.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed, "nothing past due yet")

	f.clock.Advance(31 * 24 * time.Hour)
	changed, err = f.svc.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	got, err := f.svc.Get(ctx, inv.ID.String())
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.StatusOverdue, got.Status)

	// a second sweep is a no-op
	changed, err = f.svc.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)
}
