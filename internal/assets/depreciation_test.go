package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed.UTC()
}

func TestStraightLineAfterTwoYears(t *testing.T) {
	asset := Asset{
		PurchaseDate:       "2023-01-01",
		PurchasePrice:      1200000,
		UsefulLife:         5,
		SalvageValue:       200000,
		DepreciationMethod: MethodStraightLine,
	}
	// Exactly 730 days so the fractional elapsed years are 2.0.
	asOf := mustDate(t, "2023-01-01").Add(730 * 24 * time.Hour)

	fig := Depreciate(asset, asOf)
	assert.InDelta(t, 200000, fig.Annual, 0.01)
	assert.InDelta(t, 400000, fig.Total, 0.01)
	assert.InDelta(t, 600000, fig.Remaining, 0.01)
}

func TestDepreciationZeroAtPurchaseDate(t *testing.T) {
	for _, method := range []string{MethodStraightLine, MethodReducingBalance} {
		asset := Asset{
			PurchaseDate:       "2024-03-10",
			PurchasePrice:      500000,
			UsefulLife:         4,
			SalvageValue:       50000,
			DepreciationMethod: method,
		}
		fig := Depreciate(asset, mustDate(t, "2024-03-10"))
		assert.Zero(t, fig.Total, "method %s", method)
	}
}

func TestFuturePurchaseDateYieldsZero(t *testing.T) {
	asset := Asset{
		PurchaseDate:       "2030-01-01",
		PurchasePrice:      500000,
		UsefulLife:         4,
		SalvageValue:       0,
		DepreciationMethod: MethodStraightLine,
	}
	fig := Depreciate(asset, mustDate(t, "2024-01-01"))
	assert.Zero(t, fig.Total)
	assert.GreaterOrEqual(t, fig.Remaining, 0.0)
}

func TestReducingBalanceIteratesWholeYears(t *testing.T) {
	asset := Asset{
		PurchaseDate:       "2020-01-01",
		PurchasePrice:      1000000,
		UsefulLife:         5,
		SalvageValue:       100000,
		DepreciationMethod: MethodReducingBalance,
	}
	// Rate 0.4: year1 dep 400,000 (book 600,000), year2 dep 240,000
	// (book 360,000).
	asOf := mustDate(t, "2020-01-01").Add(2 * 365 * 24 * time.Hour)
	fig := Depreciate(asset, asOf)
	assert.InDelta(t, 640000, fig.Total, 0.01)
	assert.InDelta(t, 360000*0.4, fig.Annual, 0.01)
	assert.InDelta(t, 260000, fig.Remaining, 0.01)
}

func TestReducingBalanceClampsAtSalvage(t *testing.T) {
	asset := Asset{
		PurchaseDate:       "2010-01-01",
		PurchasePrice:      1000000,
		UsefulLife:         2, // rate 1.0 drops straight to salvage
		SalvageValue:       150000,
		DepreciationMethod: MethodReducingBalance,
	}
	asOf := mustDate(t, "2010-01-01").Add(10 * 365 * 24 * time.Hour)
	fig := Depreciate(asset, asOf)
	assert.InDelta(t, 850000, fig.Total, 0.01)
	assert.Zero(t, fig.Remaining)
	// Projected annual is evaluated at the clamped book value.
	assert.InDelta(t, 150000, fig.Annual, 0.01)
}

func TestRemainingMonotonicStraightLine(t *testing.T) {
	asset := Asset{
		PurchaseDate:       "2022-06-01",
		PurchasePrice:      900000,
		UsefulLife:         3,
		SalvageValue:       90000,
		DepreciationMethod: MethodStraightLine,
	}
	prev := asset.PurchasePrice
	for days := 0; days <= 5*365; days += 30 {
		asOf := mustDate(t, "2022-06-01").Add(time.Duration(days) * 24 * time.Hour)
		fig := Depreciate(asset, asOf)
		assert.GreaterOrEqual(t, fig.Remaining, 0.0)
		assert.LessOrEqual(t, fig.Remaining, asset.PurchasePrice)
		assert.LessOrEqual(t, fig.Remaining, prev)
		prev = fig.Remaining
	}
}

func TestZeroUsefulLifeGuard(t *testing.T) {
	asset := Asset{
		PurchaseDate:       "2024-01-01",
		PurchasePrice:      100000,
		UsefulLife:         0,
		DepreciationMethod: MethodStraightLine,
	}
	assert.Equal(t, Figures{}, Depreciate(asset, mustDate(t, "2025-01-01")))
}

func TestMalformedPurchaseDateGuard(t *testing.T) {
	asset := Asset{
		PurchaseDate:       "bukan tanggal",
		PurchasePrice:      100000,
		UsefulLife:         5,
		DepreciationMethod: MethodStraightLine,
	}
	assert.Equal(t, Figures{}, Depreciate(asset, mustDate(t, "2025-01-01")))
}

func TestPeriodCharges(t *testing.T) {
	asset := Asset{
		PurchaseDate:       "2023-01-01",
		PurchasePrice:      1200000,
		UsefulLife:         5,
		SalvageValue:       200000,
		DepreciationMethod: MethodStraightLine,
	}
	asOf := mustDate(t, "2024-01-01")
	assert.InDelta(t, 200000.0/365, DailyCharge(asset, asOf), 0.0001)
	assert.InDelta(t, 200000.0/12, MonthlyCharge(asset, asOf), 0.0001)
	assert.InDelta(t, 200000, YearlyCharge(asset, asOf), 0.0001)
}
