package domain

import (
	"testing"

	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardRates() Rates {
	return Rates{
		TransportRatePerHour: 150,
		DebrisRatePerYard:    20,
		FinalMarkup:          1.15,
		DepositPercentage:    0.25,
	}
}

func TestComputeMediumTier(t *testing.T) {
	book := ratebookdomain.DefaultRateBook()

	got, err := Compute(Input{
		Acres:          2.5,
		Tier:           ratebookdomain.TierMedium,
		TransportHours: 2,
	}, book, standardRates())
	require.NoError(t, err)

	assert.InDelta(t, 6250.0, got.BaseCost, 1e-9)
	assert.InDelta(t, 300.0, got.TransportCost, 1e-9)
	assert.Zero(t, got.EstimatedDebrisYards)
	assert.Zero(t, got.DebrisCost)
	assert.InDelta(t, 6550.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 7532.50, got.FinalPrice, 1e-6)
	assert.InDelta(t, 1883.125, got.DepositAmount, 1e-6)
	assert.InDelta(t, 7532.50-1883.125, got.BalanceDue, 1e-6)
}

func TestComputeMaxTierAddsDebris(t *testing.T) {
	book := ratebookdomain.DefaultRateBook()

	got, err := Compute(Input{
		Acres: 4,
		Tier:  ratebookdomain.TierMaxLight,
	}, book, standardRates())
	require.NoError(t, err)

	assert.InDelta(t, 32000.0, got.BaseCost, 1e-9)
	assert.InDelta(t, 2000.0, got.EstimatedDebrisYards, 1e-9)
	assert.InDelta(t, 40000.0, got.DebrisCost, 1e-9)
	assert.InDelta(t, 72000.0, got.Subtotal, 1e-9)
}

func TestComputeManualDebrisOnStandardTier(t *testing.T) {
	book := ratebookdomain.DefaultRateBook()

	got, err := Compute(Input{
		Acres:            1,
		Tier:             ratebookdomain.TierSmall,
		ManualDebrisYard: 10,
	}, book, standardRates())
	require.NoError(t, err)

	assert.Zero(t, got.EstimatedDebrisYards, "standard tiers have no tier debris estimate")
	assert.InDelta(t, 200.0, got.DebrisCost, 1e-9, "manual yards are still billed")
}

func TestComputeManualDebrisStacksOnMaxTier(t *testing.T) {
	book := ratebookdomain.DefaultRateBook()

	got, err := Compute(Input{
		Acres:            1,
		Tier:             ratebookdomain.TierMaxHeavy,
		ManualDebrisYard: 100,
	}, book, standardRates())
	require.NoError(t, err)

	assert.InDelta(t, 1100.0, got.EstimatedDebrisYards, 1e-9)
	assert.InDelta(t, (1100.0+100.0)*20, got.DebrisCost, 1e-9)
}

func TestComputeUnknownTier(t *testing.T) {
	book := ratebookdomain.DefaultRateBook()
	_, err := Compute(Input{Acres: 1, Tier: "bogus"}, book, standardRates())
	assert.Error(t, err)
}
