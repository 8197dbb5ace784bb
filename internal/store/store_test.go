package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkas/warungkas/internal/catalog"
	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/pos"
	"github.com/warungkas/warungkas/internal/reports"
	"github.com/warungkas/warungkas/internal/shared"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client)
}

func TestProductUpsertAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProduct(ctx, catalog.Product{ID: "p-1", Name: "Keripik", Price: 15000}))
	require.NoError(t, s.SaveProduct(ctx, catalog.Product{ID: "p-2", Name: "Sambal", Price: 12000}))
	require.NoError(t, s.SaveProduct(ctx, catalog.Product{ID: "p-1", Name: "Keripik Pedas", Price: 16000}))

	products, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Keripik Pedas", products[0].Name)
	assert.InDelta(t, 16000, products[0].Price, 0.001)

	require.NoError(t, s.DeleteProduct(ctx, "p-2"))
	products, err = s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	err = s.DeleteProduct(ctx, "p-404")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCostAndDetailMaps(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetCost(ctx, "p-1", 8000))
	require.NoError(t, s.SetCost(ctx, "p-2", 9000))
	require.NoError(t, s.SetCost(ctx, "p-1", 8500))

	costs, err := s.Costs(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 8500, costs["p-1"], 0.001)
	assert.InDelta(t, 9000, costs["p-2"], 0.001)

	require.NoError(t, s.SetDetail(ctx, catalog.ProductDetail{ProductID: "p-1", Weight: 250, WeightUnit: catalog.WeightUnitGram}))
	details, err := s.Details(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 250, details["p-1"].Weight, 0.001)
}

func TestTransactionsAppendInOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransaction(ctx, pos.Transaction{ID: "trx-1", Total: 10000}))
	require.NoError(t, s.SaveTransaction(ctx, pos.Transaction{ID: "trx-2", Total: 20000}))

	transactions, err := s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "trx-1", transactions[0].ID)
	assert.Equal(t, "trx-2", transactions[1].ID)
}

func TestEmptyCollectionsLoadEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	costs, err := s.Costs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, costs)
	assert.Empty(t, costs)

	cfg, err := s.DistributionConfig(ctx)
	require.NoError(t, err)
	assert.Zero(t, cfg)
}

func TestSnapshotAssemblesAllCollections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransaction(ctx, pos.Transaction{ID: "trx-1", Timestamp: "2025-07-01T09:00:00Z", Total: 50000}))
	require.NoError(t, s.SetCost(ctx, "p-1", 8000))
	require.NoError(t, s.SaveExpense(ctx, ledger.Expense{ID: "exp-1", Category: "Listrik", Amount: 10000, Date: "2025-07-02"}))
	require.NoError(t, s.SaveDebt(ctx, ledger.FinancialRecord{ID: "debt-1", Amount: 5000, Date: "2025-07-03", Status: ledger.StatusUnpaid}))
	require.NoError(t, s.SaveFounder(ctx, reports.FounderShare{ID: "f-1", Name: "Ani", Percentage: 100}))
	require.NoError(t, s.SaveDistributionConfig(ctx, reports.DistributionConfig{BusinessPercentage: 70, FounderPercentage: 30}))

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)

	require.Len(t, snapshot.Transactions, 1)
	assert.InDelta(t, 8000, snapshot.ProductCosts["p-1"], 0.001)
	require.Len(t, snapshot.Expenses, 1)
	require.Len(t, snapshot.Debts, 1)
	require.Len(t, snapshot.Founders, 1)
	assert.InDelta(t, 70, snapshot.DistributionConfig.BusinessPercentage, 0.001)
}

func TestResetClearsEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProduct(ctx, catalog.Product{ID: "p-1", Name: "Keripik"}))
	require.NoError(t, s.SaveTransaction(ctx, pos.Transaction{ID: "trx-1"}))

	require.NoError(t, s.Reset(ctx))

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
	transactions, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProduct(ctx, catalog.Product{ID: "p-1", Name: "Keripik", Price: 15000}))
	require.NoError(t, s.SaveSupplier(ctx, ledger.Supplier{ID: "sup-1", Name: "Pak Joko"}))

	dump, err := s.Export(ctx)
	require.NoError(t, err)
	require.Contains(t, dump, keyProducts)
	require.Contains(t, dump, keySuppliers)

	other := newTestStore(t)
	require.NoError(t, other.Import(ctx, dump))

	products, err := other.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Keripik", products[0].Name)
}

func TestImportRejectsUnknownCollection(t *testing.T) {
	s := newTestStore(t)

	err := s.Import(context.Background(), map[string]json.RawMessage{
		"kas:tidak_ada": json.RawMessage(`[]`),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestImportRejectsInvalidJSON(t *testing.T) {
	s := newTestStore(t)

	err := s.Import(context.Background(), map[string]json.RawMessage{
		keyProducts: json.RawMessage(`{not json`),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
}
