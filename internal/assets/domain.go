package assets

// Depreciation methods supported for fixed assets.
const (
	MethodStraightLine    = "straight_line"
	MethodReducingBalance = "reducing_balance"
)

// Asset is a fixed asset owned by the business. Depreciation figures are
// always derived from the purchase data at query time, never stored.
type Asset struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	PurchaseDate       string  `json:"purchaseDate"`
	PurchasePrice      float64 `json:"purchasePrice"`
	UsefulLife         int     `json:"usefulLife"`
	SalvageValue       float64 `json:"salvageValue"`
	DepreciationMethod string  `json:"depreciationMethod"`
}

// AssetView joins an asset with its depreciation figures as of a query date.
type AssetView struct {
	Asset
	AnnualDepreciation      float64 `json:"annualDepreciation"`
	AccumulatedDepreciation float64 `json:"accumulatedDepreciation"`
	RemainingValue          float64 `json:"remainingValue"`
}
