package assets

import (
	"math"
	"time"

	"github.com/warungkas/warungkas/internal/shared"
)

const hoursPerYear = 24 * 365

// Figures carries the derived depreciation state of an asset at a point in
// time. Annual is the current yearly charge (for reducing balance, the
// projected next-year charge at the present book value), Total the
// accumulated depreciation since purchase, Remaining the book value still to
// be depreciated above salvage.
type Figures struct {
	Annual    float64 `json:"annual"`
	Total     float64 `json:"total"`
	Remaining float64 `json:"remaining"`
}

// Depreciate recomputes depreciation figures for an asset as of the given
// date. Assets with a non-positive useful life or an unparseable purchase
// date yield zero figures; creation-time validation is expected to reject
// such records before they reach storage. A purchase date in the future
// yields zero accumulated depreciation.
func Depreciate(a Asset, asOf time.Time) Figures {
	if a.UsefulLife <= 0 {
		return Figures{}
	}
	purchase, ok := shared.ParseRecordDate(a.PurchaseDate)
	if !ok {
		return Figures{}
	}
	years := asOf.UTC().Sub(purchase).Hours() / hoursPerYear
	if years < 0 {
		years = 0
	}

	if a.DepreciationMethod == MethodReducingBalance {
		return reducingBalance(a, years)
	}
	return straightLine(a, years)
}

func straightLine(a Asset, years float64) Figures {
	annual := (a.PurchasePrice - a.SalvageValue) / float64(a.UsefulLife)
	total := annual * years
	return Figures{
		Annual:    annual,
		Total:     total,
		Remaining: math.Max(0, a.PurchasePrice-total-a.SalvageValue),
	}
}

// reducingBalance applies double-declining depreciation over whole elapsed
// years, clamping the book value at salvage.
func reducingBalance(a Asset, years float64) Figures {
	rate := 2 / float64(a.UsefulLife)
	bookValue := a.PurchasePrice
	var total float64
	for i := 0; i < int(math.Floor(years)); i++ {
		yearDep := bookValue * rate
		if bookValue-yearDep <= a.SalvageValue {
			total += bookValue - a.SalvageValue
			bookValue = a.SalvageValue
			break
		}
		total += yearDep
		bookValue -= yearDep
	}
	return Figures{
		Annual:    bookValue * rate,
		Total:     total,
		Remaining: math.Max(0, bookValue-a.SalvageValue),
	}
}

// DailyCharge approximates the per-day depreciation as Annual/365. For
// reducing balance this is an approximation of an inherently annual-step
// method and daily figures will not sum exactly to the annual charge.
func DailyCharge(a Asset, asOf time.Time) float64 {
	return Depreciate(a, asOf).Annual / 365
}

// MonthlyCharge approximates the per-month depreciation as Annual/12.
func MonthlyCharge(a Asset, asOf time.Time) float64 {
	return Depreciate(a, asOf).Annual / 12
}

// YearlyCharge returns the annual depreciation charge.
func YearlyCharge(a Asset, asOf time.Time) float64 {
	return Depreciate(a, asOf).Annual
}
