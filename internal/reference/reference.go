// Package reference maps domain enums to display labels. Calculators and
// services return raw values; labeling is a presentation concern that lives
// here only.
package reference

import (
	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var tierLabels = map[ratebookdomain.PackageTier]string{
	ratebookdomain.TierSmall:     "Small (brush & saplings)",
	ratebookdomain.TierMedium:    "Medium (standard clearing)",
	ratebookdomain.TierLarge:     "Large (dense growth)",
	ratebookdomain.TierXLarge:    "X-Large (heavy timber)",
	ratebookdomain.TierMaxLight:  "Max Light (full removal, light debris)",
	ratebookdomain.TierMaxMedium: "Max Medium (full removal, moderate debris)",
	ratebookdomain.TierMaxHeavy:  "Max Heavy (full removal, heavy debris)",
}

var leadStatusLabels = map[leaddomain.Status]string{
	leaddomain.StatusNew:       "New",
	leaddomain.StatusContacted: "Contacted",
	leaddomain.StatusQuoted:    "Quoted",
	leaddomain.StatusQualified: "Qualified",
	leaddomain.StatusConverted: "Converted",
	leaddomain.StatusLost:      "Lost",
}

var proposalStatusLabels = map[proposaldomain.Status]string{
	proposaldomain.StatusDraft:    "Draft",
	proposaldomain.StatusSent:     "Sent",
	proposaldomain.StatusAccepted: "Accepted",
	proposaldomain.StatusRejected: "Rejected",
	proposaldomain.StatusExpired:  "Expired",
}

var workOrderStatusLabels = map[workorderdomain.Status]string{
	workorderdomain.StatusScheduled:  "Scheduled",
	workorderdomain.StatusInProgress: "In Progress",
	workorderdomain.StatusOnHold:     "On Hold",
	workorderdomain.StatusCompleted:  "Completed",
	workorderdomain.StatusCancelled:  "Cancelled",
}

var invoiceStatusLabels = map[invoicedomain.Status]string{
	invoicedomain.StatusDraft:         "Draft",
	invoicedomain.StatusSent:          "Sent",
	invoicedomain.StatusPartiallyPaid: "Partially Paid",
	invoicedomain.StatusOverdue:       "Overdue",
	invoicedomain.StatusPaid:          "Paid",
	invoicedomain.StatusCancelled:     "Cancelled",
}

func TierLabel(tier ratebookdomain.PackageTier) string {
	if label, ok := tierLabels[tier]; ok {
		return label
	}
	return string(tier)
}

func LeadStatusLabel(status leaddomain.Status) string {
	if label, ok := leadStatusLabels[status]; ok {
		return label
	}
	return string(status)
}

func ProposalStatusLabel(status proposaldomain.Status) string {
	if label, ok := proposalStatusLabels[status]; ok {
		return label
	}
	return string(status)
}

func WorkOrderStatusLabel(status workorderdomain.Status) string {
	if label, ok := workOrderStatusLabels[status]; ok {
		return label
	}
	return string(status)
}

func InvoiceStatusLabel(status invoicedomain.Status) string {
	if label, ok := invoiceStatusLabels[status]; ok {
		return label
	}
	return string(status)
}

// TierOptions lists every package tier in display order, for dropdowns.
func TierOptions() []Option {
	options := make([]Option, 0, len(ratebookdomain.AllTiers))
	for _, tier := range ratebookdomain.AllTiers {
		options = append(options, Option{Value: string(tier), Label: TierLabel(tier)})
	}
	return options
}
