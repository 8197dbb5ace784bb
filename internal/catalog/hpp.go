package catalog

// Resolver computes cost of goods (HPP), profit, and margin figures for
// products from the stored cost map and detail records. It is a pure
// calculator over an in-memory snapshot.
type Resolver struct {
	costs   map[string]float64
	details map[string]ProductDetail
}

// NewResolver builds a resolver over cost and detail snapshots. Nil maps are
// treated as empty.
func NewResolver(costs map[string]float64, details map[string]ProductDetail) *Resolver {
	return &Resolver{costs: costs, details: details}
}

// BaseCost returns the stored HPP for a product, zero when absent.
func (r *Resolver) BaseCost(productID string) float64 {
	if r == nil || r.costs == nil {
		return 0
	}
	return r.costs[productID]
}

// DetailedHPP returns the per-unit cost of goods. When the product detail
// carries weight information the base cost is decomposed per kilogram and the
// packaging, processing, and other cost components are added as flat per-kg
// figures before scaling back to the unit weight. Without weight information
// the stored base cost is returned unchanged and the additional components
// are ignored.
func (r *Resolver) DetailedHPP(productID string) float64 {
	base := r.BaseCost(productID)
	if r == nil || r.details == nil {
		return base
	}
	detail, ok := r.details[productID]
	if !ok || detail.Weight <= 0 || detail.WeightUnit == "" {
		return base
	}
	weightKg := detail.Weight
	if detail.WeightUnit == WeightUnitGram {
		weightKg = detail.Weight / 1000
	}
	if weightKg == 0 {
		return base
	}
	costPerKg := base / weightKg
	totalPerKg := costPerKg + detail.PackagingCost + detail.ProcessingCost + detail.OtherCosts
	return totalPerKg * weightKg
}

// Profit returns selling price minus stored base cost.
func (r *Resolver) Profit(p Product) float64 {
	return p.Price - r.BaseCost(p.ID)
}

// Margin returns the profit margin percentage, zero when the price is zero.
func (r *Resolver) Margin(p Product) float64 {
	if p.Price == 0 {
		return 0
	}
	return r.Profit(p) / p.Price * 100
}
