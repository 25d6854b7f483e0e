package domain

// Breakdown expresses each cost component as a share of total annual cost.
// InsurancePct is the remainder after the other three, so floating rounding
// accumulates there and the four always sum to exactly 100.
type Breakdown struct {
	DepreciationPct    float64 `json:"depreciation_pct"`
	FuelPct            float64 `json:"fuel_pct"`
	MaintenancePct     float64 `json:"maintenance_pct"`
	InsurancePct       float64 `json:"insurance_pct"`
	DominantCostFactor string  `json:"dominant_cost_factor"`
}

// AnalyzeCostBreakdown computes the percentage split of calc. A zero total
// cost yields an all-zero breakdown with no dominant factor.
func AnalyzeCostBreakdown(calc Calculation) Breakdown {
	if calc.TotalAnnualCost == 0 {
		return Breakdown{}
	}

	depreciation := calc.AnnualDepreciation / calc.TotalAnnualCost * 100
	fuel := calc.AnnualFuel / calc.TotalAnnualCost * 100
	maintenance := calc.AnnualMaintenance / calc.TotalAnnualCost * 100
	insurance := 100 - depreciation - fuel - maintenance

	b := Breakdown{
		DepreciationPct: depreciation,
		FuelPct:         fuel,
		MaintenancePct:  maintenance,
		InsurancePct:    insurance,
	}

	dominant := "depreciation"
	max := depreciation
	if fuel > max {
		dominant, max = "fuel", fuel
	}
	if maintenance > max {
		dominant, max = "maintenance", maintenance
	}
	if insurance > max {
		dominant = "insurance"
	}
	b.DominantCostFactor = dominant

	return b
}
