package domain

import (
	"time"

	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"github.com/bwmarrin/snowflake"
)

// DefaultTransportHours is assumed for a fresh proposal until a transport
// estimate is entered.
const DefaultTransportHours = 2.0

// FromLead derives a draft proposal from a lead. The copy is one-way: later
// edits to the proposal never flow back to the lead.
//
// Field loss: the lead's chosen package tier and transport estimate are NOT
// carried over. The proposal starts at the medium tier with the default
// transport assumption, and its subtotal and total both start at the lead's
// estimated value with no tax or discount applied.
func FromLead(id snowflake.ID, lead leaddomain.Lead, now time.Time) Proposal {
	return Proposal{
		ID:     id,
		LeadID: lead.ID,

		CustomerName:  lead.Name,
		CustomerPhone: lead.Phone,
		CustomerEmail: lead.Email,
		SiteAddress:   lead.Address,
		SiteZip:       lead.Zip,

		LandSize:       lead.LandSize,
		PackageType:    ratebookdomain.TierMedium,
		TransportHours: DefaultTransportHours,

		Subtotal:    lead.EstimatedValue,
		TotalAmount: lead.EstimatedValue,

		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
