// Package e2e drives the whole lead → proposal → work order → invoice
// pipeline through the real services against an in-memory database.
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/brushworkslabs/brushworks/internal/clock"
	"github.com/brushworkslabs/brushworks/internal/config"
	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	invoicerepository "github.com/brushworkslabs/brushworks/internal/invoice/repository"
	invoiceservice "github.com/brushworkslabs/brushworks/internal/invoice/service"
	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	leadrepository "github.com/brushworkslabs/brushworks/internal/lead/repository"
	leadservice "github.com/brushworkslabs/brushworks/internal/lead/service"
	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	proposalrepository "github.com/brushworkslabs/brushworks/internal/proposal/repository"
	proposalservice "github.com/brushworkslabs/brushworks/internal/proposal/service"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	workorderrepository "github.com/brushworkslabs/brushworks/internal/workorder/repository"
	workorderservice "github.com/brushworkslabs/brushworks/internal/workorder/service"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type pipeline struct {
	leads      leaddomain.Service
	proposals  proposaldomain.Service
	workOrders workorderdomain.Service
	invoices   invoicedomain.Service
	clock      *clock.FakeClock
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&leaddomain.Lead{},
		&proposaldomain.Proposal{},
		&workorderdomain.WorkOrder{},
		&invoicedomain.Invoice{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fake := clock.NewFakeClock(time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC))
	log := zap.NewNop()
	pricing := config.NewStaticPricingConfigHolder(config.DefaultPricingConfig())

	leadRepo := leadrepository.Provide()
	proposalRepo := proposalrepository.Provide()
	workOrderRepo := workorderrepository.Provide()

	return &pipeline{
		leads: leadservice.New(leadservice.Params{
			DB: db, Log: log, GenID: node, Repo: leadRepo, Clock: fake,
		}),
		proposals: proposalservice.New(proposalservice.Params{
			DB: db, Log: log, GenID: node, Repo: proposalRepo, LeadRepo: leadRepo, Clock: fake,
		}),
		workOrders: workorderservice.New(workorderservice.Params{
			DB: db, Log: log, GenID: node, Repo: workOrderRepo, ProposalRepo: proposalRepo, Clock: fake,
		}),
		invoices: invoiceservice.New(invoiceservice.Params{
			DB: db, Log: log, GenID: node, Repo: invoicerepository.Provide(),
			WorkOrderRepo: workOrderRepo, Pricing: pricing, Clock: fake,
		}),
		clock: fake,
	}
}

func TestLeadToPaidInvoice(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)

	lead, err := p.leads.Create(ctx, leaddomain.UpsertRequest{
		Name:           "Hollis Creek Farm",
		Phone:          "706-555-0114",
		Email:          "office@holliscreek.example",
		Address:        "412 Hollis Creek Rd",
		Zip:            "30720",
		LandSize:       4,
		PackageType:    ratebookdomain.TierMaxLight,
		TransportHours: 3,
		EstimatedValue: 40000,
	})
	require.NoError(t, err)
	assert.Equal(t, leaddomain.StatusNew, lead.Status)

	for _, next := range []leaddomain.Status{
		leaddomain.StatusContacted, leaddomain.StatusQuoted, leaddomain.StatusQualified,
	} {
		lead, err = p.leads.Transition(ctx, lead.ID.String(), next)
		require.NoError(t, err)
	}

	// qualified lead becomes a draft proposal; pricing context resets
	proposal, err := p.proposals.CreateFromLead(ctx, lead.ID.String())
	require.NoError(t, err)
	assert.Equal(t, proposaldomain.StatusDraft, proposal.Status)
	assert.Equal(t, ratebookdomain.TierMedium, proposal.PackageType)
	assert.InDelta(t, 40000.0, proposal.TotalAmount, 1e-9)

	lead, err = p.leads.Transition(ctx, lead.ID.String(), leaddomain.StatusConverted)
	require.NoError(t, err)
	assert.True(t, lead.Status.Terminal())

	proposal, err = p.proposals.UpdatePricing(ctx, proposal.ID.String(), proposaldomain.PricingRequest{
		Subtotal:       42000,
		TaxAmount:      3675,
		Discount:       675,
		TransportHours: 3,
	})
	require.NoError(t, err)
	assert.InDelta(t, 45000.0, proposal.TotalAmount, 1e-9)

	proposal, err = p.proposals.Transition(ctx, proposal.ID.String(), proposaldomain.StatusSent)
	require.NoError(t, err)
	proposal, err = p.proposals.Transition(ctx, proposal.ID.String(), proposaldomain.StatusAccepted)
	require.NoError(t, err)

	// accepted proposal becomes a scheduled work order with the total frozen
	workOrder, err := p.workOrders.CreateFromProposal(ctx, proposal.ID.String())
	require.NoError(t, err)
	assert.Equal(t, workorderdomain.StatusScheduled, workOrder.Status)
	assert.InDelta(t, 45000.0, workOrder.OriginalAmount, 1e-9)

	workOrder, err = p.workOrders.Transition(ctx, workOrder.ID.String(), workorderdomain.StatusInProgress)
	require.NoError(t, err)

	workOrder, err = p.workOrders.UpdateWork(ctx, workOrder.ID.String(), workorderdomain.WorkRequest{
		AdditionalCosts:      1500,
		CrewNotes:            "stump grinding added on site",
		EstimatedHours:       60,
		CompletionPercentage: 1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 46500.0, workOrder.FinalAmount, 1e-9)

	workOrder, err = p.workOrders.Transition(ctx, workOrder.ID.String(), workorderdomain.StatusCompleted)
	require.NoError(t, err)

	// completed work order becomes a draft invoice with tax and deposit split
	invoice, err := p.invoices.CreateFromWorkOrder(ctx, workOrder.ID.String())
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.StatusDraft, invoice.Status)
	assert.InDelta(t, 46500.0, invoice.Subtotal, 1e-9)
	assert.InDelta(t, 46500*1.0875, invoice.TotalAmount, 1e-6)
	assert.InDelta(t, invoice.TotalAmount*0.25, invoice.DepositAmount, 1e-6)

	invoice, err = p.invoices.Transition(ctx, invoice.ID.String(), invoicedomain.StatusSent)
	require.NoError(t, err)

	invoice, err = p.invoices.RecordPayment(ctx, invoice.ID.String(), invoicedomain.PaymentRequest{DepositPaid: true})
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.StatusPartiallyPaid, invoice.Status)

	p.clock.Advance(14 * 24 * time.Hour)
	invoice, err = p.invoices.RecordPayment(ctx, invoice.ID.String(), invoicedomain.PaymentRequest{BalancePaid: true})
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.StatusPaid, invoice.Status)
	assert.True(t, invoice.IsFullyPaid())
}

func TestConversionRequiresExistingSource(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)
	missing := node.Generate().String()

	_, err = p.proposals.CreateFromLead(ctx, missing)
	assert.ErrorIs(t, err, proposaldomain.ErrSourceNotFound)

	_, err = p.workOrders.CreateFromProposal(ctx, missing)
	assert.ErrorIs(t, err, workorderdomain.ErrSourceNotFound)

	_, err = p.invoices.CreateFromWorkOrder(ctx, missing)
	assert.ErrorIs(t, err, invoicedomain.ErrSourceNotFound)
}
