package service

import (
	"context"
	"strings"

	"github.com/brushworkslabs/brushworks/internal/clock"
	"github.com/brushworkslabs/brushworks/internal/config"
	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	obsmetrics "github.com/brushworkslabs/brushworks/internal/observability/metrics"
	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	GenID         *snowflake.Node
	Repo          invoicedomain.Repository
	WorkOrderRepo workorderdomain.Repository
	Pricing       *config.PricingConfigHolder
	Clock         clock.Clock
	Metrics       *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	genID         *snowflake.Node
	repo          invoicedomain.Repository
	workOrderRepo workorderdomain.Repository
	pricing       *config.PricingConfigHolder
	clock         clock.Clock
	metrics       *obsmetrics.Metrics
}

func New(p Params) invoicedomain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("invoice.service"),
		genID:         p.GenID,
		repo:          p.Repo,
		workOrderRepo: p.WorkOrderRepo,
		pricing:       p.Pricing,
		clock:         p.Clock,
		metrics:       p.Metrics,
	}
}

func (s *Service) CreateFromWorkOrder(ctx context.Context, workOrderID string) (*invoicedomain.Invoice, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(workOrderID))
	if err != nil {
		return nil, invoicedomain.ErrInvalidID
	}

	workOrder, err := s.workOrderRepo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if workOrder == nil {
		return nil, invoicedomain.ErrSourceNotFound
	}

	cfg := s.pricing.Get()
	item := invoicedomain.FromWorkOrder(
		s.genID.Generate(),
		*workOrder,
		cfg.InvoiceTaxRate,
		cfg.InvoiceDepositPercentage,
		s.clock.Now(),
	)
	if err := s.repo.Insert(ctx, s.db, &item); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DocumentsConverted.WithLabelValues("work_order_to_invoice").Inc()
	}
	s.log.Info("invoice derived from work order",
		zap.String("work_order_id", workOrder.ID.String()),
		zap.String("invoice_id", item.ID.String()),
		zap.Float64("total_amount", item.TotalAmount),
	)
	return &item, nil
}

// UpdateCharges edits additional costs, discount, tax rate and due date, then
// rebuilds the derived totals and reconciles the status. Editing charges on a
// paid or cancelled invoice is rejected.
func (s *Service) UpdateCharges(ctx context.Context, id string, req invoicedomain.ChargesRequest) (*invoicedomain.Invoice, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status.Terminal() {
		return nil, invoicedomain.ErrInvalidTransition
	}

	item.AdditionalCosts = req.AdditionalCosts
	item.DiscountAmount = req.DiscountAmount
	if req.TaxRate != nil {
		item.TaxRate = *req.TaxRate
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}

	now := s.clock.Now()
	item.RecomputeTotals(s.pricing.Get().InvoiceDepositPercentage)
	item.Reconcile(now)
	item.UpdatedAt = now

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RecordPayment sets the deposit/balance flags and reconciles the status.
// Payments only promote: a paid invoice stays paid even if a flag is later
// cleared in the request.
func (s *Service) RecordPayment(ctx context.Context, id string, req invoicedomain.PaymentRequest) (*invoicedomain.Invoice, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if req.DepositPaid && !item.DepositPaid {
		item.DepositPaid = true
		item.DepositPaidAt = &now
	}
	if req.BalancePaid && !item.BalancePaid {
		item.BalancePaid = true
		item.BalancePaidAt = &now
	}

	wasPaid := item.Status == invoicedomain.StatusPaid
	item.Reconcile(now)
	item.UpdatedAt = now

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	if !wasPaid && item.Status == invoicedomain.StatusPaid && s.metrics != nil {
		s.metrics.InvoicesPaid.Inc()
	}
	s.log.Info("invoice payment recorded",
		zap.String("invoice_id", item.ID.String()),
		zap.Float64("amount_due", item.AmountDue()),
		zap.String("status", string(item.Status)),
	)
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*invoicedomain.Invoice, error) {
	return s.find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Transition(ctx context.Context, id string, next invoicedomain.Status) (*invoicedomain.Invoice, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !item.Status.CanTransitionTo(next) {
		return nil, invoicedomain.ErrInvalidTransition
	}

	item.Status = next
	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) SweepOverdue(ctx context.Context) (int, error) {
	open, err := s.repo.ListOpen(ctx, s.db)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	changed := 0
	for idx := range open {
		item := &open[idx]
		before := item.Status
		item.Reconcile(now)
		if item.Status == before {
			continue
		}

		item.UpdatedAt = now
		if err := s.repo.Update(ctx, s.db, item); err != nil {
			return changed, err
		}
		changed++
		s.log.Info("invoice status reconciled",
			zap.String("invoice_id", item.ID.String()),
			zap.String("from", string(before)),
			zap.String("to", string(item.Status)),
		)
	}
	return changed, nil
}

func (s *Service) find(ctx context.Context, id string) (*invoicedomain.Invoice, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, invoicedomain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, invoicedomain.ErrNotFound
	}
	return item, nil
}
