package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkas/warungkas/internal/shared"
)

type mockRepo struct {
	expenses    []Expense
	categories  []string
	costs       []AccommodationCost
	debts       []FinancialRecord
	receivables []FinancialRecord
	suppliers   []Supplier
}

func (m *mockRepo) Expenses(ctx context.Context) ([]Expense, error) { return m.expenses, nil }

func (m *mockRepo) SaveExpense(ctx context.Context, e Expense) error {
	m.expenses = append(m.expenses, e)
	return nil
}

func (m *mockRepo) SaveExpenses(ctx context.Context, all []Expense) error {
	m.expenses = all
	return nil
}

func (m *mockRepo) DeleteExpense(ctx context.Context, id string) error {
	kept := m.expenses[:0]
	for _, e := range m.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.expenses = kept
	return nil
}

func (m *mockRepo) ExpenseCategories(ctx context.Context) ([]string, error) {
	return m.categories, nil
}

func (m *mockRepo) SaveExpenseCategories(ctx context.Context, categories []string) error {
	m.categories = categories
	return nil
}

func (m *mockRepo) AccommodationCosts(ctx context.Context) ([]AccommodationCost, error) {
	return m.costs, nil
}

func (m *mockRepo) SaveAccommodationCost(ctx context.Context, c AccommodationCost) error {
	m.costs = append(m.costs, c)
	return nil
}

func (m *mockRepo) DeleteAccommodationCost(ctx context.Context, id string) error { return nil }

func (m *mockRepo) Debts(ctx context.Context) ([]FinancialRecord, error) { return m.debts, nil }

func (m *mockRepo) SaveDebt(ctx context.Context, rec FinancialRecord) error {
	for i, existing := range m.debts {
		if existing.ID == rec.ID {
			m.debts[i] = rec
			return nil
		}
	}
	m.debts = append(m.debts, rec)
	return nil
}

func (m *mockRepo) DeleteDebt(ctx context.Context, id string) error { return nil }

func (m *mockRepo) Receivables(ctx context.Context) ([]FinancialRecord, error) {
	return m.receivables, nil
}

func (m *mockRepo) SaveReceivable(ctx context.Context, rec FinancialRecord) error {
	for i, existing := range m.receivables {
		if existing.ID == rec.ID {
			m.receivables[i] = rec
			return nil
		}
	}
	m.receivables = append(m.receivables, rec)
	return nil
}

func (m *mockRepo) DeleteReceivable(ctx context.Context, id string) error { return nil }

func (m *mockRepo) Suppliers(ctx context.Context) ([]Supplier, error) { return m.suppliers, nil }

func (m *mockRepo) SaveSupplier(ctx context.Context, s Supplier) error {
	m.suppliers = append(m.suppliers, s)
	return nil
}

func (m *mockRepo) DeleteSupplier(ctx context.Context, id string) error { return nil }

func TestCreateExpenseRegistersCategory(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nil)

	_, err := svc.CreateExpense(context.Background(), Expense{
		Category: "Bahan Baku",
		Amount:   75000,
		Date:     "2025-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bahan Baku"}, repo.categories)

	// Same category is not duplicated.
	_, err = svc.CreateExpense(context.Background(), Expense{
		Category: "Bahan Baku",
		Amount:   25000,
		Date:     "2025-02-02",
	})
	require.NoError(t, err)
	assert.Len(t, repo.categories, 1)
}

func TestAddCategoryRejectsDuplicate(t *testing.T) {
	repo := &mockRepo{categories: []string{"Listrik"}}
	svc := NewService(repo, nil)

	require.NoError(t, svc.AddCategory(context.Background(), "Sewa"))
	assert.Equal(t, []string{"Listrik", "Sewa"}, repo.categories)

	err := svc.AddCategory(context.Background(), "Listrik")
	assert.ErrorIs(t, err, shared.ErrConflict)
	assert.Len(t, repo.categories, 2)
}

func TestCreateExpenseRejectsBadDate(t *testing.T) {
	svc := NewService(&mockRepo{}, nil)
	_, err := svc.CreateExpense(context.Background(), Expense{Amount: 100, Date: "kemarin"})
	assert.Error(t, err)
}

func TestRenameCategoryCascades(t *testing.T) {
	repo := &mockRepo{
		categories: []string{"Bahan Baku", "Listrik"},
		expenses: []Expense{
			{ID: "1", Category: "Bahan Baku", Amount: 1000, Date: "2025-01-01"},
			{ID: "2", Category: "Listrik", Amount: 2000, Date: "2025-01-02"},
			{ID: "3", Category: "Bahan Baku", Amount: 3000, Date: "2025-01-03"},
		},
	}
	svc := NewService(repo, nil)

	require.NoError(t, svc.RenameCategory(context.Background(), "Bahan Baku", "Bahan Pokok"))

	assert.Equal(t, []string{"Bahan Pokok", "Listrik"}, repo.categories)
	assert.Equal(t, "Bahan Pokok", repo.expenses[0].Category)
	assert.Equal(t, "Listrik", repo.expenses[1].Category)
	assert.Equal(t, "Bahan Pokok", repo.expenses[2].Category)
}

func TestRenameMissingCategory(t *testing.T) {
	svc := NewService(&mockRepo{categories: []string{"Listrik"}}, nil)
	err := svc.RenameCategory(context.Background(), "Air", "Air Minum")
	assert.Error(t, err)
}

func TestSetDebtStatus(t *testing.T) {
	repo := &mockRepo{debts: []FinancialRecord{
		{ID: "d1", Name: "Pinjaman modal", Amount: 500000, Date: "2025-01-05", Status: StatusUnpaid},
	}}
	svc := NewService(repo, nil)

	rec, err := svc.SetDebtStatus(context.Background(), "d1", StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, rec.Status)
	assert.Equal(t, StatusPaid, repo.debts[0].Status)
}

func TestCreateAccommodationCostValidatesType(t *testing.T) {
	svc := NewService(&mockRepo{}, nil)
	_, err := svc.CreateAccommodationCost(context.Background(), AccommodationCost{
		Type: "ke_pasar",
		Date: "2025-01-01",
		Cost: 10000,
	})
	assert.Error(t, err)
}
