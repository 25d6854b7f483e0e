package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateReferenceMachine(t *testing.T) {
	calc := Calculate(Equipment{
		PurchasePrice:        65000,
		EstimatedResaleValue: 13000,
		YearsOfService:       7,
		DailyFuelCost:        150,
		DaysPerYear:          200,
		HoursPerDay:          6,
		AnnualMaintenance:    5000,
		AnnualInsuranceCost:  6500,
	})

	assert.InDelta(t, 1200.0, calc.AnnualHours, 1e-9)
	assert.InDelta(t, (65000.0-13000.0)/7, calc.AnnualDepreciation, 1e-6)
	assert.InDelta(t, 30000.0, calc.AnnualFuel, 1e-9)
	assert.InDelta(t, 48928.571428, calc.TotalAnnualCost, 1e-3)
	assert.InDelta(t, 40.77, calc.HourlyCost, 0.01)
	assert.InDelta(t, 53.0, calc.RecommendedRate, 0.01)
}

func TestCalculateDepreciationFlooredAtZero(t *testing.T) {
	calc := Calculate(Equipment{
		PurchasePrice:        10000,
		EstimatedResaleValue: 15000,
		YearsOfService:       5,
		DaysPerYear:          100,
		HoursPerDay:          8,
	})

	assert.Zero(t, calc.AnnualDepreciation, "resale above purchase must not produce negative depreciation")
}

func TestCalculateZeroAnnualHours(t *testing.T) {
	calc := Calculate(Equipment{
		PurchasePrice:     50000,
		YearsOfService:    5,
		AnnualMaintenance: 2000,
	})

	assert.Zero(t, calc.AnnualHours)
	assert.Zero(t, calc.HourlyCost, "zero utilization reports zero hourly cost, not a division fault")
	assert.Zero(t, calc.RecommendedRate)
	assert.NotZero(t, calc.TotalAnnualCost, "annual figures still accrue")
}

func TestValidateRuleTable(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		equipment Equipment
		wantCodes []string
	}{
		{
			name: "healthy machine trips nothing",
			equipment: Equipment{
				ModelYear:            2022,
				PurchasePrice:        65000,
				EstimatedResaleValue: 13000,
				YearsOfService:       7,
				DailyFuelCost:        150,
				DaysPerYear:          200,
				HoursPerDay:          6,
				AnnualMaintenance:    5000,
				AnnualInsuranceCost:  6500,
			},
			wantCodes: []string{},
		},
		{
			name: "idle machine trips low cost, unprofitable rate and underutilized at once",
			equipment: Equipment{
				ModelYear:   2022,
				DaysPerYear: 10,
				HoursPerDay: 1,
			},
			wantCodes: []string{"hourly_cost_low", "rate_unprofitable", "underutilized"},
		},
		{
			name: "old expensive machine flags replacement",
			equipment: Equipment{
				ModelYear:           2005,
				PurchasePrice:       900000,
				YearsOfService:      5,
				DaysPerYear:         100,
				HoursPerDay:         10,
				AnnualMaintenance:   40000,
				AnnualInsuranceCost: 20000,
			},
			wantCodes: []string{"hourly_cost_high", "consider_replacement"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := Validate(tt.equipment, Calculate(tt.equipment), now)

			codes := make([]string, 0, len(alerts))
			for _, a := range alerts {
				codes = append(codes, a.Code)
			}
			assert.ElementsMatch(t, tt.wantCodes, codes)
		})
	}
}

func TestAnalyzeCostBreakdownSumsToHundred(t *testing.T) {
	calc := Calculate(Equipment{
		PurchasePrice:        65000,
		EstimatedResaleValue: 13000,
		YearsOfService:       7,
		DailyFuelCost:        150,
		DaysPerYear:          200,
		HoursPerDay:          6,
		AnnualMaintenance:    5000,
		AnnualInsuranceCost:  6500,
	})

	b := AnalyzeCostBreakdown(calc)
	total := b.DepreciationPct + b.FuelPct + b.MaintenancePct + b.InsurancePct
	assert.InDelta(t, 100.0, total, 1e-9, "insurance absorbs the rounding remainder")
	assert.Equal(t, "fuel", b.DominantCostFactor)
}

func TestAnalyzeCostBreakdownZeroTotal(t *testing.T) {
	b := AnalyzeCostBreakdown(Calculation{})
	assert.Zero(t, b.DepreciationPct+b.FuelPct+b.MaintenancePct+b.InsurancePct)
	assert.Empty(t, b.DominantCostFactor)
}
