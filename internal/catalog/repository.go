package catalog

import "context"

// Repository abstracts persistence of catalog records.
type Repository interface {
	Products(ctx context.Context) ([]Product, error)
	SaveProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id string) error

	Costs(ctx context.Context) (map[string]float64, error)
	SetCost(ctx context.Context, productID string, amount float64) error

	Details(ctx context.Context) (map[string]ProductDetail, error)
	SetDetail(ctx context.Context, detail ProductDetail) error
}
