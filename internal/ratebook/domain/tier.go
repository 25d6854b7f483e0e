package domain

// PackageTier identifies a service package level. The four standard tiers
// share a multiplier relationship with the medium base rate; the three Max
// tiers are flat per-acre rates for heavy mulching work and are never
// derived from the base rate.
type PackageTier string

const (
	TierSmall     PackageTier = "small"
	TierMedium    PackageTier = "medium"
	TierLarge     PackageTier = "large"
	TierXLarge    PackageTier = "xlarge"
	TierMaxLight  PackageTier = "max_light"
	TierMaxMedium PackageTier = "max_medium"
	TierMaxHeavy  PackageTier = "max_heavy"
)

// BaseTier is the source of truth for multiplier-derived rates.
const BaseTier = TierMedium

// TierMultipliers maps the standard tiers to their base-rate multipliers.
// Max tiers intentionally have no entry.
var TierMultipliers = map[PackageTier]float64{
	TierSmall:  0.85,
	TierMedium: 1.0,
	TierLarge:  1.35,
	TierXLarge: 1.70,
}

// StandardTiers lists the multiplier-derived tier family in display order.
var StandardTiers = []PackageTier{TierSmall, TierMedium, TierLarge, TierXLarge}

// MaxTiers lists the flat-rate tier family in display order.
var MaxTiers = []PackageTier{TierMaxLight, TierMaxMedium, TierMaxHeavy}

// AllTiers lists every tier in display order.
var AllTiers = []PackageTier{
	TierSmall, TierMedium, TierLarge, TierXLarge,
	TierMaxLight, TierMaxMedium, TierMaxHeavy,
}

func (t PackageTier) Valid() bool {
	switch t {
	case TierSmall, TierMedium, TierLarge, TierXLarge,
		TierMaxLight, TierMaxMedium, TierMaxHeavy:
		return true
	}
	return false
}

// IsMax reports whether t belongs to the flat-rate Max family.
func (t PackageTier) IsMax() bool {
	switch t {
	case TierMaxLight, TierMaxMedium, TierMaxHeavy:
		return true
	}
	return false
}
