// Package domain holds the quote breakdown calculation. The calculation is
// a pure function of its inputs; callers are responsible for validating
// acreage and hours before invoking it.
package domain

import (
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
)

// Input is everything the breakdown depends on besides the rate book.
type Input struct {
	Acres            float64                    `json:"acres"`
	Tier             ratebookdomain.PackageTier `json:"tier"`
	TransportHours   float64                    `json:"transport_hours"`
	ManualDebrisYard float64                    `json:"manual_debris_yards"`
}

// Rates carries the unit rates and percentages the breakdown applies on top
// of the per-acre tier rate.
type Rates struct {
	TransportRatePerHour float64
	DebrisRatePerYard    float64
	FinalMarkup          float64
	DepositPercentage    float64
}

// Breakdown is the derived quote. It is recomputed on every input change and
// never persisted standalone.
type Breakdown struct {
	BaseCost             float64 `json:"base_cost"`
	TransportCost        float64 `json:"transport_cost"`
	EstimatedDebrisYards float64 `json:"estimated_debris_yards"`
	DebrisCost           float64 `json:"debris_cost"`
	Subtotal             float64 `json:"subtotal"`
	FinalPrice           float64 `json:"final_price"`
	DepositAmount        float64 `json:"deposit_amount"`
	BalanceDue           float64 `json:"balance_due"`
}

// Compute derives the full price breakdown. For Max tiers the tier's debris
// estimate is added to any manually entered yards; standard tiers bill only
// the manual yards.
func Compute(in Input, book ratebookdomain.RateBook, rates Rates) (Breakdown, error) {
	tierRate, err := book.RateFor(in.Tier)
	if err != nil {
		return Breakdown{}, err
	}

	baseCost := in.Acres * tierRate
	transportCost := in.TransportHours * rates.TransportRatePerHour

	estimatedYards := 0.0
	if in.Tier.IsMax() {
		estimatedYards = in.Acres * book.DebrisYardsPerAcre(in.Tier)
	}
	debrisCost := (estimatedYards + in.ManualDebrisYard) * rates.DebrisRatePerYard

	subtotal := baseCost + transportCost + debrisCost
	finalPrice := subtotal * rates.FinalMarkup
	deposit := finalPrice * rates.DepositPercentage

	return Breakdown{
		BaseCost:             baseCost,
		TransportCost:        transportCost,
		EstimatedDebrisYards: estimatedYards,
		DebrisCost:           debrisCost,
		Subtotal:             subtotal,
		FinalPrice:           finalPrice,
		DepositAmount:        deposit,
		BalanceDue:           finalPrice - deposit,
	}, nil
}
