package domain

import (
	"time"

	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	"github.com/bwmarrin/snowflake"
)

// Invoices fall due 30 days after issue unless edited.
const DefaultDueDays = 30

// FromWorkOrder derives a draft invoice from a work order. The copy is
// one-way; the work order's own amounts are never recomputed from the
// invoice.
//
// The invoice carries the work order's final amount as its original amount
// and recomputes its own tax and deposit split: taxRate and depositPct come
// from the shop's invoice defaults, independent of whatever deposit
// percentage was quoted at the proposal stage.
func FromWorkOrder(id snowflake.ID, wo workorderdomain.WorkOrder, taxRate, depositPct float64, now time.Time) Invoice {
	inv := Invoice{
		ID:          id,
		WorkOrderID: wo.ID,

		CustomerName: wo.CustomerName,
		SiteAddress:  wo.SiteAddress,

		OriginalAmount:  wo.FinalAmount,
		AdditionalCosts: 0,
		TaxRate:         taxRate,

		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	due := now.AddDate(0, 0, DefaultDueDays)
	inv.DueDate = &due

	inv.recomputeTotals(depositPct)
	return inv
}

// recomputeTotals rebuilds the derived money fields from original amount,
// additional costs, discount and tax rate. Once the deposit is paid its
// amount is frozen and charge edits fall entirely on the balance side, so a
// recorded deposit payment never changes value after the fact.
func (i *Invoice) recomputeTotals(depositPct float64) {
	i.Subtotal = i.OriginalAmount + i.AdditionalCosts - i.DiscountAmount
	i.TaxAmount = i.Subtotal * i.TaxRate
	i.TotalAmount = i.Subtotal + i.TaxAmount
	if !i.DepositPaid {
		i.DepositAmount = i.TotalAmount * depositPct
	}
	i.BalanceAmount = i.TotalAmount - i.DepositAmount
}

// RecomputeTotals is the exported entry used by the service after charge
// edits.
func (i *Invoice) RecomputeTotals(depositPct float64) {
	i.recomputeTotals(depositPct)
}
