package pos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkas/warungkas/internal/catalog"
)

type mockRepo struct {
	transactions []Transaction
}

func (m *mockRepo) Transactions(ctx context.Context) ([]Transaction, error) {
	return m.transactions, nil
}

func (m *mockRepo) SaveTransaction(ctx context.Context, t Transaction) error {
	m.transactions = append(m.transactions, t)
	return nil
}

type mockCatalog struct {
	products map[string]catalog.Product
}

func (m *mockCatalog) Products(ctx context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockCatalog) SaveProduct(ctx context.Context, p catalog.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockCatalog) DeleteProduct(ctx context.Context, id string) error {
	delete(m.products, id)
	return nil
}

func (m *mockCatalog) Costs(ctx context.Context) (map[string]float64, error) {
	return nil, nil
}

func (m *mockCatalog) SetCost(ctx context.Context, productID string, amount float64) error {
	return nil
}

func (m *mockCatalog) Details(ctx context.Context) (map[string]catalog.ProductDetail, error) {
	return nil, nil
}

func (m *mockCatalog) SetDetail(ctx context.Context, detail catalog.ProductDetail) error {
	return nil
}

func newCheckoutService() (*Service, *mockRepo, *mockCatalog) {
	repo := &mockRepo{}
	cat := &mockCatalog{products: map[string]catalog.Product{
		"nasi":   {ID: "nasi", Name: "Nasi Goreng", Price: 25000, Stock: 10},
		"teh":    {ID: "teh", Name: "Es Teh", Price: 5000, Stock: 20},
		"gratis": {ID: "gratis", Name: "Sampel", Price: 0, Stock: 5},
	}}
	return NewService(repo, cat, nil), repo, cat
}

func TestCheckoutComputesTotals(t *testing.T) {
	svc, repo, cat := newCheckoutService()
	at := time.Date(2025, time.July, 1, 10, 30, 0, 0, time.UTC)

	trx, err := svc.Checkout(context.Background(), CheckoutRequest{
		Lines: []CartLine{
			{ProductID: "nasi", Quantity: 2},
			{ProductID: "teh", Quantity: 3},
		},
		DiscountPercent: 10,
		AmountPaid:      60000,
	}, at)
	require.NoError(t, err)

	// Subtotal 65,000 with 10% discount.
	assert.InDelta(t, 58500, trx.Total, 0.0001)
	assert.InDelta(t, 1500, trx.Change, 0.0001)
	assert.Equal(t, "2025-07-01T10:30:00Z", trx.Timestamp)
	assert.Equal(t, 5, trx.ItemCount())
	assert.Len(t, repo.transactions, 1)

	// Stock decremented.
	assert.Equal(t, 8, cat.products["nasi"].Stock)
	assert.Equal(t, 17, cat.products["teh"].Stock)
}

func TestCheckoutRejectsUnderpayment(t *testing.T) {
	svc, _, _ := newCheckoutService()
	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Lines:      []CartLine{{ProductID: "nasi", Quantity: 1}},
		AmountPaid: 10000,
	}, time.Now())
	assert.Error(t, err)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _, _ := newCheckoutService()
	_, err := svc.Checkout(context.Background(), CheckoutRequest{AmountPaid: 100}, time.Now())
	assert.Error(t, err)
}

func TestCheckoutRejectsUnknownProduct(t *testing.T) {
	svc, _, _ := newCheckoutService()
	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Lines:      []CartLine{{ProductID: "hilang", Quantity: 1}},
		AmountPaid: 100000,
	}, time.Now())
	assert.Error(t, err)
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newCheckoutService()
	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Lines:      []CartLine{{ProductID: "nasi", Quantity: 0}},
		AmountPaid: 100000,
	}, time.Now())
	assert.Error(t, err)
}
