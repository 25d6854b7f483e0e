package service

import (
	"context"

	"github.com/brushworkslabs/brushworks/internal/config"
	obsmetrics "github.com/brushworkslabs/brushworks/internal/observability/metrics"
	quotedomain "github.com/brushworkslabs/brushworks/internal/quote/domain"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Pricing *config.PricingConfigHolder
	Rates   ratebookdomain.Service
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	pricing *config.PricingConfigHolder
	rates   ratebookdomain.Service
	metrics *obsmetrics.Metrics
}

func New(p Params) *Service {
	return &Service{
		log:     p.Log.Named("quote.service"),
		pricing: p.Pricing,
		rates:   p.Rates,
		metrics: p.Metrics,
	}
}

// Calculate resolves the current rate book and pricing defaults and returns
// the quote breakdown for in.
func (s *Service) Calculate(ctx context.Context, in quotedomain.Input) (quotedomain.Breakdown, error) {
	book, err := s.rates.Get(ctx)
	if err != nil {
		return quotedomain.Breakdown{}, err
	}

	cfg := s.pricing.Get()
	breakdown, err := quotedomain.Compute(in, book, quotedomain.Rates{
		TransportRatePerHour: cfg.TransportRatePerHour,
		DebrisRatePerYard:    cfg.DebrisRatePerYard,
		FinalMarkup:          cfg.FinalMarkup,
		DepositPercentage:    cfg.DepositPercentage,
	})
	if err != nil {
		return quotedomain.Breakdown{}, err
	}

	if s.metrics != nil {
		s.metrics.QuotesComputed.Inc()
	}
	return breakdown, nil
}
