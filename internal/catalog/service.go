package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/warungkas/warungkas/internal/shared"
)

// Service exposes catalog operations over the repository.
type Service struct {
	repo  Repository
	cache shared.CacheInvalidator
}

// NewService constructs a catalog service. cache may be nil.
func NewService(repo Repository, cache shared.CacheInvalidator) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns all products joined with their derived HPP, profit, and
// margin figures.
func (s *Service) List(ctx context.Context) ([]ProductView, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	resolver, err := s.Resolver(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Product: p,
			HPP:     resolver.DetailedHPP(p.ID),
			Profit:  resolver.Profit(p),
			Margin:  resolver.Margin(p),
		})
	}
	return views, nil
}

// Get returns a single product view.
func (s *Service) Get(ctx context.Context, id string) (ProductView, error) {
	views, err := s.List(ctx)
	if err != nil {
		return ProductView{}, err
	}
	for _, v := range views {
		if v.ID == id {
			return v, nil
		}
	}
	return ProductView{}, shared.ErrNotFound
}

// Create stores a new product, minting its id.
func (s *Service) Create(ctx context.Context, p Product) (Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return Product{}, fmt.Errorf("%w: nama produk wajib diisi", shared.ErrValidation)
	}
	p.ID = uuid.NewString()
	if err := s.repo.SaveProduct(ctx, p); err != nil {
		return Product{}, fmt.Errorf("save product: %w", err)
	}
	s.bump(ctx)
	return p, nil
}

// Update replaces an existing product.
func (s *Service) Update(ctx context.Context, p Product) (Product, error) {
	if p.ID == "" {
		return Product{}, shared.ErrNotFound
	}
	products, err := s.repo.Products(ctx)
	if err != nil {
		return Product{}, fmt.Errorf("load products: %w", err)
	}
	found := false
	for _, existing := range products {
		if existing.ID == p.ID {
			found = true
			break
		}
	}
	if !found {
		return Product{}, shared.ErrNotFound
	}
	if err := s.repo.SaveProduct(ctx, p); err != nil {
		return Product{}, fmt.Errorf("save product: %w", err)
	}
	s.bump(ctx)
	return p, nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.bump(ctx)
	return nil
}

// SetCost stores the base HPP for a product.
func (s *Service) SetCost(ctx context.Context, productID string, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: hpp tidak boleh negatif", shared.ErrValidation)
	}
	if err := s.repo.SetCost(ctx, productID, amount); err != nil {
		return fmt.Errorf("save cost: %w", err)
	}
	s.bump(ctx)
	return nil
}

// SetDetail stores the cost decomposition detail for a product.
func (s *Service) SetDetail(ctx context.Context, detail ProductDetail) error {
	if detail.ProductID == "" {
		return fmt.Errorf("%w: product id wajib diisi", shared.ErrValidation)
	}
	if err := s.repo.SetDetail(ctx, detail); err != nil {
		return fmt.Errorf("save detail: %w", err)
	}
	s.bump(ctx)
	return nil
}

// Resolver builds a cost resolver over the current cost and detail snapshots.
func (s *Service) Resolver(ctx context.Context) (*Resolver, error) {
	costs, err := s.repo.Costs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load costs: %w", err)
	}
	details, err := s.repo.Details(ctx)
	if err != nil {
		return nil, fmt.Errorf("load details: %w", err)
	}
	return NewResolver(costs, details), nil
}

func (s *Service) bump(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Bump(ctx)
	}
}
