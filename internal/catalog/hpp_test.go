package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailedHPPWeighted(t *testing.T) {
	// 500 gram at base cost 50,000 => 100,000/kg; packaging 2,000 and
	// processing 1,000 per kg => 103,000/kg => 51,500 per unit.
	resolver := NewResolver(
		map[string]float64{"p1": 50000},
		map[string]ProductDetail{
			"p1": {
				ProductID:      "p1",
				Weight:         500,
				WeightUnit:     WeightUnitGram,
				PackagingCost:  2000,
				ProcessingCost: 1000,
			},
		},
	)
	assert.InDelta(t, 51500, resolver.DetailedHPP("p1"), 0.0001)
}

func TestDetailedHPPKilogramUnit(t *testing.T) {
	resolver := NewResolver(
		map[string]float64{"p1": 80000},
		map[string]ProductDetail{
			"p1": {ProductID: "p1", Weight: 2, WeightUnit: "kg", PackagingCost: 500},
		},
	)
	// 40,000/kg + 500/kg = 40,500/kg over 2 kg.
	assert.InDelta(t, 81000, resolver.DetailedHPP("p1"), 0.0001)
}

func TestDetailedHPPWithoutWeightReturnsBase(t *testing.T) {
	resolver := NewResolver(
		map[string]float64{"p1": 25000},
		map[string]ProductDetail{
			// Additional components are ignored without weight info.
			"p1": {ProductID: "p1", PackagingCost: 9999},
		},
	)
	assert.Equal(t, 25000.0, resolver.DetailedHPP("p1"))
}

func TestDetailedHPPMissingRecords(t *testing.T) {
	resolver := NewResolver(nil, nil)
	assert.Equal(t, 0.0, resolver.DetailedHPP("ghost"))
}

func TestProfitAndMargin(t *testing.T) {
	resolver := NewResolver(map[string]float64{"p1": 6000}, nil)
	p := Product{ID: "p1", Price: 10000}
	assert.Equal(t, 4000.0, resolver.Profit(p))
	assert.InDelta(t, 40, resolver.Margin(p), 0.0001)
}

func TestMarginZeroPrice(t *testing.T) {
	resolver := NewResolver(map[string]float64{"p1": 6000}, nil)
	assert.Equal(t, 0.0, resolver.Margin(Product{ID: "p1", Price: 0}))
}
