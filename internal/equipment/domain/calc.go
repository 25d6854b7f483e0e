package domain

// RecommendedRateMarkup is the fixed markup the engine applies on top of the
// hourly operating cost when suggesting a billing rate for a single machine.
const RecommendedRateMarkup = 1.3

// Calculation is the derived annual and hourly cost picture for one machine.
type Calculation struct {
	AnnualHours        float64 `json:"annual_hours"`
	AnnualDepreciation float64 `json:"annual_depreciation"`
	AnnualFuel         float64 `json:"annual_fuel"`
	AnnualMaintenance  float64 `json:"annual_maintenance"`
	AnnualInsurance    float64 `json:"annual_insurance"`
	TotalAnnualCost    float64 `json:"total_annual_cost"`
	HourlyCost         float64 `json:"hourly_cost"`
	RecommendedRate    float64 `json:"recommended_rate"`
}

// Calculate derives the cost picture from the machine's usage and financial
// inputs. Depreciation is floored at zero so a resale value above purchase
// price never produces a negative cost. When annual hours are zero the
// hourly cost and recommended rate are reported as zero; every caller gets
// the same degraded value instead of a division fault.
func Calculate(e Equipment) Calculation {
	annualHours := e.DaysPerYear * e.HoursPerDay

	annualDepreciation := 0.0
	if e.YearsOfService > 0 {
		annualDepreciation = (e.PurchasePrice - e.EstimatedResaleValue) / e.YearsOfService
		if annualDepreciation < 0 {
			annualDepreciation = 0
		}
	}

	annualFuel := e.DailyFuelCost * e.DaysPerYear
	totalAnnualCost := annualDepreciation + annualFuel + e.AnnualMaintenance + e.AnnualInsuranceCost

	hourlyCost := 0.0
	if annualHours > 0 {
		hourlyCost = totalAnnualCost / annualHours
	}

	return Calculation{
		AnnualHours:        annualHours,
		AnnualDepreciation: annualDepreciation,
		AnnualFuel:         annualFuel,
		AnnualMaintenance:  e.AnnualMaintenance,
		AnnualInsurance:    e.AnnualInsuranceCost,
		TotalAnnualCost:    totalAnnualCost,
		HourlyCost:         hourlyCost,
		RecommendedRate:    hourlyCost * RecommendedRateMarkup,
	}
}
