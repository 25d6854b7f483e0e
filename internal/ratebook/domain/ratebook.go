package domain

import "errors"

var (
	ErrInvalidTier   = errors.New("invalid_tier")
	ErrBaseTier      = errors.New("base_tier_not_overridable")
	ErrUnknownTier   = errors.New("unknown_tier")
	ErrNotMaxTier    = errors.New("not_a_max_tier")
	ErrMissingDebris = errors.New("missing_debris_estimate")
)

// RateEntry is a per-acre rate for one tier. Overridden marks a manually set
// rate that base-rate changes must leave alone. The medium entry is the base
// rate itself and never carries the flag; Max entries carry it only for
// symmetry with the UI, they are never auto-derived regardless.
type RateEntry struct {
	Rate       float64 `json:"rate"`
	Overridden bool    `json:"overridden"`
}

// RateBook is the process-wide pricing table: one RateEntry per tier plus
// the per-acre debris volume estimates for the Max tiers.
type RateBook struct {
	Rates       map[PackageTier]RateEntry `json:"rates"`
	DebrisYards map[PackageTier]float64   `json:"debris_yards_per_acre"`
}

// DefaultRateBook seeds the book with the shop's standing rates.
func DefaultRateBook() RateBook {
	book := RateBook{
		Rates: map[PackageTier]RateEntry{
			TierMedium:    {Rate: 2500},
			TierMaxLight:  {Rate: 8000},
			TierMaxMedium: {Rate: 10000},
			TierMaxHeavy:  {Rate: 12000},
		},
		DebrisYards: map[PackageTier]float64{
			TierMaxLight:  500,
			TierMaxMedium: 800,
			TierMaxHeavy:  1100,
		},
	}
	book.recomputeDerived()
	return book
}

// SetBaseRate sets the medium rate and recomputes every non-overridden
// standard tier from its multiplier. Max tiers are untouched.
func (b *RateBook) SetBaseRate(rate float64) {
	entry := b.Rates[TierMedium]
	entry.Rate = rate
	entry.Overridden = false
	b.Rates[TierMedium] = entry
	b.recomputeDerived()
}

// MarkOverridden flags a tier so subsequent SetBaseRate calls leave its rate
// alone. The base tier cannot be overridden; it is the source of truth.
func (b *RateBook) MarkOverridden(tier PackageTier, rate float64) error {
	if !tier.Valid() {
		return ErrInvalidTier
	}
	if tier == BaseTier {
		return ErrBaseTier
	}
	b.Rates[tier] = RateEntry{Rate: rate, Overridden: true}
	return nil
}

// ResetToAuto clears a standard tier's override and restores the multiplier
// relationship against the current base rate. Calling it on an already
// automatic tier recomputes the same value, so repeated calls do not drift.
func (b *RateBook) ResetToAuto(tier PackageTier) error {
	if !tier.Valid() {
		return ErrInvalidTier
	}
	if tier == BaseTier {
		return ErrBaseTier
	}
	mult, ok := TierMultipliers[tier]
	if !ok {
		// Max tier: clearing the flag keeps the current flat rate.
		entry := b.Rates[tier]
		entry.Overridden = false
		b.Rates[tier] = entry
		return nil
	}
	b.Rates[tier] = RateEntry{Rate: b.BaseRate() * mult, Overridden: false}
	return nil
}

// BaseRate returns the medium rate.
func (b *RateBook) BaseRate() float64 {
	return b.Rates[TierMedium].Rate
}

// RateFor returns the per-acre rate for tier.
func (b *RateBook) RateFor(tier PackageTier) (float64, error) {
	entry, ok := b.Rates[tier]
	if !ok {
		return 0, ErrUnknownTier
	}
	return entry.Rate, nil
}

// DebrisYardsPerAcre returns the estimated cleared volume per acre for a Max
// tier and 0 for every standard tier, which carry no debris estimate.
func (b *RateBook) DebrisYardsPerAcre(tier PackageTier) float64 {
	if !tier.IsMax() {
		return 0
	}
	return b.DebrisYards[tier]
}

func (b *RateBook) recomputeDerived() {
	base := b.BaseRate()
	for tier, mult := range TierMultipliers {
		if tier == TierMedium {
			continue
		}
		entry := b.Rates[tier]
		if entry.Overridden {
			continue
		}
		b.Rates[tier] = RateEntry{Rate: base * mult, Overridden: false}
	}
}
