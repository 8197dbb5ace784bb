package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/warungkas/warungkas/internal/catalog"
	"github.com/warungkas/warungkas/internal/shared"
)

// CartLine is a checkout request line; the price is resolved from the
// catalog at sale time.
type CartLine struct {
	ProductID string
	Quantity  int
}

// CheckoutRequest is the input for completing a sale.
type CheckoutRequest struct {
	Lines           []CartLine
	DiscountPercent float64
	AmountPaid      float64
}

// Service runs checkouts and lists past transactions.
type Service struct {
	repo    Repository
	catalog catalog.Repository
	cache   shared.CacheInvalidator
}

// NewService constructs a POS service. cache may be nil.
func NewService(repo Repository, catalogRepo catalog.Repository, cache shared.CacheInvalidator) *Service {
	return &Service{repo: repo, catalog: catalogRepo, cache: cache}
}

// List returns all transactions.
func (s *Service) List(ctx context.Context) ([]Transaction, error) {
	transactions, err := s.repo.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return transactions, nil
}

// Checkout completes a sale at the given time: prices each cart line from
// the catalog, applies the discount, verifies payment covers the total, and
// decrements product stock.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest, at time.Time) (Transaction, error) {
	if len(req.Lines) == 0 {
		return Transaction{}, fmt.Errorf("%w: keranjang kosong", shared.ErrValidation)
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return Transaction{}, fmt.Errorf("%w: diskon harus antara 0 dan 100", shared.ErrValidation)
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return Transaction{}, fmt.Errorf("%w: jumlah barang harus lebih dari nol", shared.ErrValidation)
		}
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("load products: %w", err)
	}
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]LineItem, 0, len(req.Lines))
	var subtotal float64
	for _, line := range req.Lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return Transaction{}, fmt.Errorf("produk %s: %w", line.ProductID, shared.ErrNotFound)
		}
		items = append(items, LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	total := subtotal * (1 - req.DiscountPercent/100)
	if req.AmountPaid < total {
		return Transaction{}, fmt.Errorf("%w: pembayaran kurang dari total", shared.ErrValidation)
	}

	transaction := Transaction{
		ID:              uuid.NewString(),
		Timestamp:       at.UTC().Format(time.RFC3339),
		Items:           items,
		DiscountPercent: req.DiscountPercent,
		Total:           total,
		AmountPaid:      req.AmountPaid,
		Change:          req.AmountPaid - total,
	}
	if err := s.repo.SaveTransaction(ctx, transaction); err != nil {
		return Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	for _, line := range req.Lines {
		product := byID[line.ProductID]
		product.Stock -= line.Quantity
		if err := s.catalog.SaveProduct(ctx, product); err != nil {
			return Transaction{}, fmt.Errorf("update stock: %w", err)
		}
		byID[line.ProductID] = product
	}

	if s.cache != nil {
		_ = s.cache.Bump(ctx)
	}
	return transaction, nil
}
