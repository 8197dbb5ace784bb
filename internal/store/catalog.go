package store

import (
	"context"

	"github.com/warungkas/warungkas/internal/catalog"
)

var _ catalog.Repository = (*Store)(nil)

// Products returns all catalog products.
func (s *Store) Products(ctx context.Context) ([]catalog.Product, error) {
	return listLoad[catalog.Product](ctx, s, keyProducts)
}

// SaveProduct inserts or replaces a product by id.
func (s *Store) SaveProduct(ctx context.Context, p catalog.Product) error {
	return listUpsert(ctx, s, keyProducts, p, func(other catalog.Product) bool {
		return other.ID == p.ID
	})
}

// DeleteProduct removes a product by id.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyProducts, func(p catalog.Product) bool {
		return p.ID == id
	})
}

// Costs returns the per-product base cost map.
func (s *Store) Costs(ctx context.Context) (map[string]float64, error) {
	costs := make(map[string]float64)
	if err := s.loadJSON(ctx, keyProductCosts, &costs); err != nil {
		return nil, err
	}
	return costs, nil
}

// SetCost stores the base cost for one product.
func (s *Store) SetCost(ctx context.Context, productID string, amount float64) error {
	costs, err := s.Costs(ctx)
	if err != nil {
		return err
	}
	costs[productID] = amount
	return s.saveJSON(ctx, keyProductCosts, costs)
}

// Details returns the per-product HPP detail map.
func (s *Store) Details(ctx context.Context) (map[string]catalog.ProductDetail, error) {
	details := make(map[string]catalog.ProductDetail)
	if err := s.loadJSON(ctx, keyProductDetails, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// SetDetail stores the HPP detail for one product.
func (s *Store) SetDetail(ctx context.Context, detail catalog.ProductDetail) error {
	details, err := s.Details(ctx)
	if err != nil {
		return err
	}
	details[detail.ProductID] = detail
	return s.saveJSON(ctx, keyProductDetails, details)
}
