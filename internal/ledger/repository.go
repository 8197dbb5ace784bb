package ledger

import "context"

// Repository abstracts persistence of bookkeeping records.
type Repository interface {
	Expenses(ctx context.Context) ([]Expense, error)
	SaveExpense(ctx context.Context, e Expense) error
	SaveExpenses(ctx context.Context, all []Expense) error
	DeleteExpense(ctx context.Context, id string) error

	ExpenseCategories(ctx context.Context) ([]string, error)
	SaveExpenseCategories(ctx context.Context, categories []string) error

	AccommodationCosts(ctx context.Context) ([]AccommodationCost, error)
	SaveAccommodationCost(ctx context.Context, c AccommodationCost) error
	DeleteAccommodationCost(ctx context.Context, id string) error

	Debts(ctx context.Context) ([]FinancialRecord, error)
	SaveDebt(ctx context.Context, rec FinancialRecord) error
	DeleteDebt(ctx context.Context, id string) error

	Receivables(ctx context.Context) ([]FinancialRecord, error)
	SaveReceivable(ctx context.Context, rec FinancialRecord) error
	DeleteReceivable(ctx context.Context, id string) error

	Suppliers(ctx context.Context) ([]Supplier, error)
	SaveSupplier(ctx context.Context, s Supplier) error
	DeleteSupplier(ctx context.Context, id string) error
}
