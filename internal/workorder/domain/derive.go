package domain

import (
	"time"

	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	"github.com/bwmarrin/snowflake"
)

// FromProposal derives a scheduled work order from a proposal. The copy is
// one-way: the proposal keeps its own pricing snapshot and is never touched
// again.
//
// The work order's original amount is the proposal's total. Work-specific
// fields (crew, equipment, hours, completion) start empty; the final amount
// starts equal to the original until additional costs are recorded.
func FromProposal(id snowflake.ID, p proposaldomain.Proposal, now time.Time) WorkOrder {
	return WorkOrder{
		ID:         id,
		ProposalID: p.ID,

		CustomerName: p.CustomerName,
		SiteAddress:  p.SiteAddress,
		SiteZip:      p.SiteZip,
		LandSize:     p.LandSize,

		OriginalAmount: p.TotalAmount,
		FinalAmount:    p.TotalAmount,

		Status:    StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
