package catalog

// WeightUnitGram marks product weights recorded in grams; any other unit is
// treated as kilograms.
const WeightUnitGram = "gram"

// Product is a sellable item in the shop catalog.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// ProductDetail carries the per-unit cost decomposition of a product. Weight
// and WeightUnit switch the HPP calculation to the weighted path.
type ProductDetail struct {
	ProductID      string  `json:"productId"`
	Weight         float64 `json:"weight"`
	WeightUnit     string  `json:"weightUnit"`
	PackagingCost  float64 `json:"packagingCost"`
	ProcessingCost float64 `json:"processingCost"`
	OtherCosts     float64 `json:"otherCosts"`
	MinStock       int     `json:"minStock"`
}

// ProductView is a product joined with its derived cost figures for listing.
type ProductView struct {
	Product
	HPP    float64 `json:"hpp"`
	Profit float64 `json:"profit"`
	Margin float64 `json:"margin"`
}
