package domain

// Revenue projections assume fixed utilization, not actual scheduled hours.
const (
	DailyHours   = 8
	WeeklyHours  = 40
	MonthlyHours = 160
)

// ProfitBand classifies a loadout's hourly margin.
type ProfitBand string

const (
	BandLosing  ProfitBand = "losing"
	BandThin    ProfitBand = "thin"
	BandHealthy ProfitBand = "healthy"
	BandPremium ProfitBand = "premium"
)

// Calculation is the aggregate hourly cost and profitability picture for a
// crew+equipment bundle.
type Calculation struct {
	TotalEmployeeCost  float64    `json:"total_employee_cost"`
	TotalEquipmentCost float64    `json:"total_equipment_cost"`
	TotalOperatingCost float64    `json:"total_operating_cost"`
	BillingRate        float64    `json:"billing_rate"`
	HourlyProfit       float64    `json:"hourly_profit"`
	ProfitMargin       float64    `json:"profit_margin"`
	DailyRevenue       float64    `json:"daily_revenue"`
	WeeklyRevenue      float64    `json:"weekly_revenue"`
	MonthlyRevenue     float64    `json:"monthly_revenue"`
	Band               ProfitBand `json:"band"`
}

// Calculate aggregates member hourly costs into a billing rate and
// projections. employeeCosts are fully burdened hourly costs; equipmentCosts
// are hourly operating costs from the equipment engine.
func Calculate(employeeCosts, equipmentCosts []float64, markup float64) Calculation {
	totalEmployee := sum(employeeCosts)
	totalEquipment := sum(equipmentCosts)
	operating := totalEmployee + totalEquipment

	billingRate := operating * markup
	profit := billingRate - operating

	margin := 0.0
	if billingRate > 0 {
		margin = profit / billingRate
	}

	return Calculation{
		TotalEmployeeCost:  totalEmployee,
		TotalEquipmentCost: totalEquipment,
		TotalOperatingCost: operating,
		BillingRate:        billingRate,
		HourlyProfit:       profit,
		ProfitMargin:       margin,
		DailyRevenue:       billingRate * DailyHours,
		WeeklyRevenue:      billingRate * WeeklyHours,
		MonthlyRevenue:     billingRate * MonthlyHours,
		Band:               bandFor(margin),
	}
}

func bandFor(margin float64) ProfitBand {
	switch {
	case margin <= 0:
		return BandLosing
	case margin < 0.15:
		return BandThin
	case margin < 0.35:
		return BandHealthy
	default:
		return BandPremium
	}
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
