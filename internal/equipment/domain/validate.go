package domain

import "time"

type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeverityError   AlertSeverity = "error"
)

type Alert struct {
	Code     string        `json:"code"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// Validate runs the diagnostic rule table against a machine's calculation.
// Every rule is evaluated; a machine can trip several alerts at once.
func Validate(e Equipment, calc Calculation, now time.Time) []Alert {
	alerts := []Alert{}

	if calc.HourlyCost < 10 {
		alerts = append(alerts, Alert{
			Code:     "hourly_cost_low",
			Severity: SeverityWarning,
			Message:  "hourly operating cost is suspiciously low; check fuel and maintenance inputs",
		})
	}
	if calc.HourlyCost > 200 {
		alerts = append(alerts, Alert{
			Code:     "hourly_cost_high",
			Severity: SeverityWarning,
			Message:  "hourly operating cost is suspiciously high; verify purchase price and utilization",
		})
	}
	if calc.RecommendedRate < 25 {
		alerts = append(alerts, Alert{
			Code:     "rate_unprofitable",
			Severity: SeverityError,
			Message:  "recommended rate is below minimum viable billing; machine is likely unprofitable",
		})
	}
	if calc.AnnualHours < 400 {
		alerts = append(alerts, Alert{
			Code:     "underutilized",
			Severity: SeverityInfo,
			Message:  "machine runs fewer than 400 hours a year; fixed costs dominate",
		})
	}
	if e.Age(now) > 15 && calc.HourlyCost > 100 {
		alerts = append(alerts, Alert{
			Code:     "consider_replacement",
			Severity: SeverityWarning,
			Message:  "machine is over 15 years old with a high hourly cost; consider replacement",
		})
	}

	return alerts
}
