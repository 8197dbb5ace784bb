package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeWaterfall(t *testing.T) {
	cfg := DistributionConfig{
		BusinessPercentage:            70,
		FounderPercentage:             30,
		BusinessSavingsPercentage:     30,
		BusinessOperationalPercentage: 70,
	}
	founders := []FounderShare{
		{ID: "f-1", Name: "Ani", Percentage: 50},
		{ID: "f-2", Name: "Sari", Percentage: 50},
	}

	dist := Distribute(1000000, cfg, founders)
	require.NotNil(t, dist)

	assert.InDelta(t, 1000000, dist.NetProfit, 0.001)
	assert.InDelta(t, 700000, dist.BusinessAmount, 0.001)
	assert.InDelta(t, 300000, dist.FounderAmount, 0.001)
	assert.InDelta(t, 210000, dist.BusinessSavingsAmount, 0.001)
	assert.InDelta(t, 490000, dist.BusinessOperationalAmount, 0.001)

	require.Len(t, dist.Founders, 2)
	assert.InDelta(t, 150000, dist.Founders[0].Amount, 0.001)
	assert.InDelta(t, 150000, dist.Founders[1].Amount, 0.001)
}

func TestDistributeLossOrBreakEvenReturnsNil(t *testing.T) {
	cfg := DistributionConfig{BusinessPercentage: 70, FounderPercentage: 30}

	assert.Nil(t, Distribute(0, cfg, nil))
	assert.Nil(t, Distribute(-500000, cfg, nil))
}

func TestNormalizeFoundersRescalesToHundred(t *testing.T) {
	allocations := NormalizeFounders([]FounderShare{
		{ID: "f-1", Name: "Ani", Percentage: 60},
		{ID: "f-2", Name: "Sari", Percentage: 90},
	})

	require.Len(t, allocations, 2)
	assert.InDelta(t, 40, allocations[0].Percentage, 0.001)
	assert.InDelta(t, 60, allocations[1].Percentage, 0.001)
}

func TestNormalizeFoundersAlreadyNormalizedIsUnchanged(t *testing.T) {
	allocations := NormalizeFounders([]FounderShare{
		{ID: "f-1", Name: "Ani", Percentage: 25},
		{ID: "f-2", Name: "Sari", Percentage: 75},
	})

	require.Len(t, allocations, 2)
	assert.InDelta(t, 25, allocations[0].Percentage, 0.001)
	assert.InDelta(t, 75, allocations[1].Percentage, 0.001)
}

func TestNormalizeFoundersZeroSumStaysZero(t *testing.T) {
	allocations := NormalizeFounders([]FounderShare{
		{ID: "f-1", Name: "Ani", Percentage: 0},
		{ID: "f-2", Name: "Sari", Percentage: 0},
	})

	require.Len(t, allocations, 2)
	assert.Zero(t, allocations[0].Percentage)
	assert.Zero(t, allocations[1].Percentage)
}

func TestDistributeUnevenFounderShares(t *testing.T) {
	cfg := DistributionConfig{
		BusinessPercentage:            50,
		FounderPercentage:             50,
		BusinessSavingsPercentage:     100,
		BusinessOperationalPercentage: 0,
	}
	founders := []FounderShare{
		{ID: "f-1", Name: "Ani", Percentage: 1},
		{ID: "f-2", Name: "Sari", Percentage: 3},
	}

	dist := Distribute(400000, cfg, founders)
	require.NotNil(t, dist)

	assert.InDelta(t, 200000, dist.FounderAmount, 0.001)
	assert.InDelta(t, 50000, dist.Founders[0].Amount, 0.001)
	assert.InDelta(t, 150000, dist.Founders[1].Amount, 0.001)
	assert.InDelta(t, 200000, dist.BusinessSavingsAmount, 0.001)
	assert.Zero(t, dist.BusinessOperationalAmount)
}
