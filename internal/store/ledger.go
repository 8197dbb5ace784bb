package store

import (
	"context"

	"github.com/warungkas/warungkas/internal/ledger"
)

var _ ledger.Repository = (*Store)(nil)

// Expenses returns all expense entries.
func (s *Store) Expenses(ctx context.Context) ([]ledger.Expense, error) {
	return listLoad[ledger.Expense](ctx, s, keyExpenses)
}

// SaveExpense inserts or replaces an expense by id.
func (s *Store) SaveExpense(ctx context.Context, e ledger.Expense) error {
	return listUpsert(ctx, s, keyExpenses, e, func(other ledger.Expense) bool {
		return other.ID == e.ID
	})
}

// SaveExpenses replaces the whole expense collection. Used by the category
// rename cascade.
func (s *Store) SaveExpenses(ctx context.Context, all []ledger.Expense) error {
	return s.saveJSON(ctx, keyExpenses, all)
}

// DeleteExpense removes an expense by id.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyExpenses, func(e ledger.Expense) bool {
		return e.ID == id
	})
}

// ExpenseCategories returns the stored category names.
func (s *Store) ExpenseCategories(ctx context.Context) ([]string, error) {
	return listLoad[string](ctx, s, keyExpenseCategories)
}

// SaveExpenseCategories replaces the category list.
func (s *Store) SaveExpenseCategories(ctx context.Context, categories []string) error {
	return s.saveJSON(ctx, keyExpenseCategories, categories)
}

// AccommodationCosts returns all transport cost entries.
func (s *Store) AccommodationCosts(ctx context.Context) ([]ledger.AccommodationCost, error) {
	return listLoad[ledger.AccommodationCost](ctx, s, keyAccommodationCosts)
}

// SaveAccommodationCost inserts or replaces a transport cost by id.
func (s *Store) SaveAccommodationCost(ctx context.Context, c ledger.AccommodationCost) error {
	return listUpsert(ctx, s, keyAccommodationCosts, c, func(other ledger.AccommodationCost) bool {
		return other.ID == c.ID
	})
}

// DeleteAccommodationCost removes a transport cost by id.
func (s *Store) DeleteAccommodationCost(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyAccommodationCosts, func(c ledger.AccommodationCost) bool {
		return c.ID == id
	})
}

// Debts returns all debt records.
func (s *Store) Debts(ctx context.Context) ([]ledger.FinancialRecord, error) {
	return listLoad[ledger.FinancialRecord](ctx, s, keyDebts)
}

// SaveDebt inserts or replaces a debt by id.
func (s *Store) SaveDebt(ctx context.Context, rec ledger.FinancialRecord) error {
	return listUpsert(ctx, s, keyDebts, rec, func(other ledger.FinancialRecord) bool {
		return other.ID == rec.ID
	})
}

// DeleteDebt removes a debt by id.
func (s *Store) DeleteDebt(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyDebts, func(rec ledger.FinancialRecord) bool {
		return rec.ID == id
	})
}

// Receivables returns all receivable records.
func (s *Store) Receivables(ctx context.Context) ([]ledger.FinancialRecord, error) {
	return listLoad[ledger.FinancialRecord](ctx, s, keyReceivables)
}

// SaveReceivable inserts or replaces a receivable by id.
func (s *Store) SaveReceivable(ctx context.Context, rec ledger.FinancialRecord) error {
	return listUpsert(ctx, s, keyReceivables, rec, func(other ledger.FinancialRecord) bool {
		return other.ID == rec.ID
	})
}

// DeleteReceivable removes a receivable by id.
func (s *Store) DeleteReceivable(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyReceivables, func(rec ledger.FinancialRecord) bool {
		return rec.ID == id
	})
}

// Suppliers returns all supplier contacts.
func (s *Store) Suppliers(ctx context.Context) ([]ledger.Supplier, error) {
	return listLoad[ledger.Supplier](ctx, s, keySuppliers)
}

// SaveSupplier inserts or replaces a supplier by id.
func (s *Store) SaveSupplier(ctx context.Context, sup ledger.Supplier) error {
	return listUpsert(ctx, s, keySuppliers, sup, func(other ledger.Supplier) bool {
		return other.ID == sup.ID
	})
}

// DeleteSupplier removes a supplier by id.
func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	return listDelete(ctx, s, keySuppliers, func(sup ledger.Supplier) bool {
		return sup.ID == id
	})
}
