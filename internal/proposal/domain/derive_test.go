package domain

import (
	"testing"
	"time"

	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLeadCopiesContactAndDropsPricingContext(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	lead := leaddomain.Lead{
		ID:      node.Generate(),
		Name:    "Dalton Ridge HOA",
		Phone:   "706-555-0138",
		Email:   "board@daltonridge.example",
		Address: "1 Ridgeview Dr",
		Zip:     "30720",

		LandSize:       6.5,
		PackageType:    ratebookdomain.TierMaxHeavy,
		TransportHours: 3.5,
		EstimatedValue: 78000,
	}

	p := FromLead(node.Generate(), lead, now)

	assert.Equal(t, lead.ID, p.LeadID)
	assert.Equal(t, lead.Name, p.CustomerName)
	assert.Equal(t, lead.Phone, p.CustomerPhone)
	assert.Equal(t, lead.Email, p.CustomerEmail)
	assert.Equal(t, lead.Address, p.SiteAddress)
	assert.Equal(t, lead.Zip, p.SiteZip)
	assert.InDelta(t, lead.LandSize, p.LandSize, 1e-9)

	// the lead's tier and transport estimate are not carried over
	assert.Equal(t, ratebookdomain.TierMedium, p.PackageType)
	assert.InDelta(t, DefaultTransportHours, p.TransportHours, 1e-9)

	assert.InDelta(t, 78000.0, p.Subtotal, 1e-9)
	assert.InDelta(t, 78000.0, p.TotalAmount, 1e-9)
	assert.Equal(t, StatusDraft, p.Status)
}

func TestProposalStatusMachine(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusDraft, StatusAccepted, false},
		{StatusSent, StatusAccepted, true},
		{StatusSent, StatusRejected, true},
		{StatusSent, StatusExpired, true},
		{StatusAccepted, StatusSent, false},
		{StatusRejected, StatusDraft, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
