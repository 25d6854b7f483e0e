// Package scheduler runs the periodic maintenance jobs. The only job today
// is the overdue-invoice sweep, which reconciles open invoices against the
// current time so overdue status surfaces without a user touching the
// record.
package scheduler

import (
	"context"
	"time"

	"github.com/brushworkslabs/brushworks/internal/clock"
	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	obsmetrics "github.com/brushworkslabs/brushworks/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const DefaultRunInterval = time.Hour

type Params struct {
	fx.In

	Log        *zap.Logger
	Clock      clock.Clock
	InvoiceSvc invoicedomain.Service
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Scheduler struct {
	log         *zap.Logger
	clock       clock.Clock
	invoiceSvc  invoicedomain.Service
	metrics     *obsmetrics.Metrics
	runInterval time.Duration
}

func New(p Params) *Scheduler {
	return &Scheduler{
		log:         p.Log.Named("scheduler"),
		clock:       p.Clock,
		invoiceSvc:  p.InvoiceSvc,
		metrics:     p.Metrics,
		runInterval: DefaultRunInterval,
	}
}

func (s *Scheduler) RunOnce(ctx context.Context) error {
	jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	changed, err := s.invoiceSvc.SweepOverdue(jobCtx)
	if s.metrics != nil {
		s.metrics.OverdueSweepRuns.Inc()
	}
	if err != nil {
		s.log.Warn("overdue sweep failed", zap.Error(err))
		return err
	}
	if changed > 0 {
		s.log.Info("overdue sweep reconciled invoices", zap.Int("changed", changed))
	}
	return nil
}

func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.runInterval)
	defer ticker.Stop()

	for {
		_ = s.RunOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
