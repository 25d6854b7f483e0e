package domain

import "context"

type Service interface {
	Get(ctx context.Context) (RateBook, error)
	SetBaseRate(ctx context.Context, rate float64) (RateBook, error)
	Override(ctx context.Context, tier PackageTier, rate float64) (RateBook, error)
	ResetToAuto(ctx context.Context, tier PackageTier) (RateBook, error)
}
