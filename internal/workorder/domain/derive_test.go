package domain

import (
	"testing"
	"time"

	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromProposalSnapshotsTotal(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	now := time.Date(2026, 2, 15, 8, 0, 0, 0, time.UTC)

	p := proposaldomain.Proposal{
		ID:           node.Generate(),
		CustomerName: "Tate Timber Co",
		SiteAddress:  "88 Sawmill Rd",
		SiteZip:      "30143",
		LandSize:     12,
		TotalAmount:  45200,
	}

	wo := FromProposal(node.Generate(), p, now)

	assert.Equal(t, p.ID, wo.ProposalID)
	assert.Equal(t, p.CustomerName, wo.CustomerName)
	assert.InDelta(t, 45200.0, wo.OriginalAmount, 1e-9)
	assert.InDelta(t, 45200.0, wo.FinalAmount, 1e-9)
	assert.Equal(t, StatusScheduled, wo.Status)

	// work tracking starts empty
	assert.Zero(t, wo.AdditionalCosts)
	assert.Zero(t, wo.EstimatedHours)
	assert.Zero(t, wo.CompletionPercentage)
	assert.Nil(t, wo.LoadoutID)
	assert.Empty(t, wo.CrewNotes)
}

func TestWorkOrderStatusMachine(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusScheduled, StatusInProgress, true},
		{StatusInProgress, StatusOnHold, true},
		{StatusOnHold, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusScheduled, StatusCancelled, true},
		{StatusOnHold, StatusCancelled, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusScheduled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
