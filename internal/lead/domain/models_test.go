package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusMachine(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusNew, StatusContacted, true},
		{StatusNew, StatusQuoted, false},
		{StatusContacted, StatusQuoted, true},
		{StatusQuoted, StatusQualified, true},
		{StatusQualified, StatusLost, true},
		{StatusQualified, StatusConverted, true},
		{StatusLost, StatusNew, false},
		{StatusConverted, StatusQualified, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestLeadTerminalStatuses(t *testing.T) {
	assert.True(t, StatusLost.Terminal())
	assert.True(t, StatusConverted.Terminal())
	assert.False(t, StatusQualified.Terminal())
}
