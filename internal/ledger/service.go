package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/warungkas/warungkas/internal/shared"
)

// Service exposes bookkeeping operations over the repository.
type Service struct {
	repo  Repository
	cache shared.CacheInvalidator
}

// NewService constructs a ledger service. cache may be nil.
func NewService(repo Repository, cache shared.CacheInvalidator) *Service {
	return &Service{repo: repo, cache: cache}
}

// Expenses returns all expense entries.
func (s *Service) Expenses(ctx context.Context) ([]Expense, error) {
	expenses, err := s.repo.Expenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return expenses, nil
}

// CreateExpense stores a new expense, registering its category when unseen.
func (s *Service) CreateExpense(ctx context.Context, e Expense) (Expense, error) {
	if e.Amount < 0 {
		return Expense{}, fmt.Errorf("%w: jumlah pengeluaran tidak boleh negatif", shared.ErrValidation)
	}
	if _, ok := shared.ParseRecordDate(e.Date); !ok {
		return Expense{}, fmt.Errorf("%w: tanggal tidak valid", shared.ErrValidation)
	}
	e.ID = uuid.NewString()
	if err := s.repo.SaveExpense(ctx, e); err != nil {
		return Expense{}, fmt.Errorf("save expense: %w", err)
	}
	if category := strings.TrimSpace(e.Category); category != "" {
		if err := s.ensureCategory(ctx, category); err != nil {
			return Expense{}, err
		}
	}
	s.bump(ctx)
	return e, nil
}

// DeleteExpense removes an expense.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	s.bump(ctx)
	return nil
}

// Categories returns the expense category list.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.ExpenseCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return categories, nil
}

// AddCategory appends a new expense category. Adding an existing name is
// rejected; implicit registration through CreateExpense stays idempotent.
func (s *Service) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: nama kategori wajib diisi", shared.ErrValidation)
	}
	categories, err := s.repo.ExpenseCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	for _, c := range categories {
		if c == name {
			return fmt.Errorf("%w: kategori %s sudah ada", shared.ErrConflict, name)
		}
	}
	if err := s.repo.SaveExpenseCategories(ctx, append(categories, name)); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

// RenameCategory renames an expense category and cascades the rename to
// every expense referencing the old name.
func (s *Service) RenameCategory(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: nama kategori wajib diisi", shared.ErrValidation)
	}
	categories, err := s.repo.ExpenseCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	found := false
	for i, c := range categories {
		if c == oldName {
			categories[i] = newName
			found = true
		}
	}
	if !found {
		return shared.ErrNotFound
	}
	if err := s.repo.SaveExpenseCategories(ctx, categories); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}

	expenses, err := s.repo.Expenses(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	changed := false
	for i, e := range expenses {
		if e.Category == oldName {
			expenses[i].Category = newName
			changed = true
		}
	}
	if changed {
		if err := s.repo.SaveExpenses(ctx, expenses); err != nil {
			return fmt.Errorf("save expenses: %w", err)
		}
	}
	s.bump(ctx)
	return nil
}

// RemoveCategory deletes a category from the list. Expenses keep their
// category string; only the pick list shrinks.
func (s *Service) RemoveCategory(ctx context.Context, name string) error {
	categories, err := s.repo.ExpenseCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	kept := categories[:0]
	for _, c := range categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(categories) {
		return shared.ErrNotFound
	}
	if err := s.repo.SaveExpenseCategories(ctx, kept); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	s.bump(ctx)
	return nil
}

// AccommodationCosts returns all transport cost entries.
func (s *Service) AccommodationCosts(ctx context.Context) ([]AccommodationCost, error) {
	costs, err := s.repo.AccommodationCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accommodation costs: %w", err)
	}
	return costs, nil
}

// CreateAccommodationCost stores a transport cost entry.
func (s *Service) CreateAccommodationCost(ctx context.Context, c AccommodationCost) (AccommodationCost, error) {
	if c.Type != AccommodationSupplierToKitchen && c.Type != AccommodationKitchenToCustomer {
		return AccommodationCost{}, fmt.Errorf("%w: jenis akomodasi tidak dikenal", shared.ErrValidation)
	}
	if c.Cost < 0 {
		return AccommodationCost{}, fmt.Errorf("%w: biaya tidak boleh negatif", shared.ErrValidation)
	}
	if _, ok := shared.ParseRecordDate(c.Date); !ok {
		return AccommodationCost{}, fmt.Errorf("%w: tanggal tidak valid", shared.ErrValidation)
	}
	c.ID = uuid.NewString()
	if err := s.repo.SaveAccommodationCost(ctx, c); err != nil {
		return AccommodationCost{}, fmt.Errorf("save accommodation cost: %w", err)
	}
	s.bump(ctx)
	return c, nil
}

// DeleteAccommodationCost removes a transport cost entry.
func (s *Service) DeleteAccommodationCost(ctx context.Context, id string) error {
	if err := s.repo.DeleteAccommodationCost(ctx, id); err != nil {
		return fmt.Errorf("delete accommodation cost: %w", err)
	}
	s.bump(ctx)
	return nil
}

// Debts returns all debt records.
func (s *Service) Debts(ctx context.Context) ([]FinancialRecord, error) {
	debts, err := s.repo.Debts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load debts: %w", err)
	}
	return debts, nil
}

// Receivables returns all receivable records.
func (s *Service) Receivables(ctx context.Context) ([]FinancialRecord, error) {
	receivables, err := s.repo.Receivables(ctx)
	if err != nil {
		return nil, fmt.Errorf("load receivables: %w", err)
	}
	return receivables, nil
}

// CreateDebt stores a debt record.
func (s *Service) CreateDebt(ctx context.Context, rec FinancialRecord) (FinancialRecord, error) {
	rec, err := s.prepareFinancialRecord(rec)
	if err != nil {
		return FinancialRecord{}, err
	}
	if err := s.repo.SaveDebt(ctx, rec); err != nil {
		return FinancialRecord{}, fmt.Errorf("save debt: %w", err)
	}
	s.bump(ctx)
	return rec, nil
}

// CreateReceivable stores a receivable record.
func (s *Service) CreateReceivable(ctx context.Context, rec FinancialRecord) (FinancialRecord, error) {
	rec, err := s.prepareFinancialRecord(rec)
	if err != nil {
		return FinancialRecord{}, err
	}
	if err := s.repo.SaveReceivable(ctx, rec); err != nil {
		return FinancialRecord{}, fmt.Errorf("save receivable: %w", err)
	}
	s.bump(ctx)
	return rec, nil
}

// SetDebtStatus marks a debt paid or unpaid.
func (s *Service) SetDebtStatus(ctx context.Context, id, status string) (FinancialRecord, error) {
	return s.setRecordStatus(ctx, id, status, s.repo.Debts, s.repo.SaveDebt)
}

// SetReceivableStatus marks a receivable paid or unpaid.
func (s *Service) SetReceivableStatus(ctx context.Context, id, status string) (FinancialRecord, error) {
	return s.setRecordStatus(ctx, id, status, s.repo.Receivables, s.repo.SaveReceivable)
}

// DeleteDebt removes a debt record.
func (s *Service) DeleteDebt(ctx context.Context, id string) error {
	if err := s.repo.DeleteDebt(ctx, id); err != nil {
		return fmt.Errorf("delete debt: %w", err)
	}
	s.bump(ctx)
	return nil
}

// DeleteReceivable removes a receivable record.
func (s *Service) DeleteReceivable(ctx context.Context, id string) error {
	if err := s.repo.DeleteReceivable(ctx, id); err != nil {
		return fmt.Errorf("delete receivable: %w", err)
	}
	s.bump(ctx)
	return nil
}

// Suppliers returns the supplier list.
func (s *Service) Suppliers(ctx context.Context) ([]Supplier, error) {
	suppliers, err := s.repo.Suppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load suppliers: %w", err)
	}
	return suppliers, nil
}

// CreateSupplier stores a supplier contact.
func (s *Service) CreateSupplier(ctx context.Context, sup Supplier) (Supplier, error) {
	if strings.TrimSpace(sup.Name) == "" {
		return Supplier{}, fmt.Errorf("%w: nama pemasok wajib diisi", shared.ErrValidation)
	}
	sup.ID = uuid.NewString()
	if err := s.repo.SaveSupplier(ctx, sup); err != nil {
		return Supplier{}, fmt.Errorf("save supplier: %w", err)
	}
	return sup, nil
}

// DeleteSupplier removes a supplier contact.
func (s *Service) DeleteSupplier(ctx context.Context, id string) error {
	if err := s.repo.DeleteSupplier(ctx, id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func (s *Service) prepareFinancialRecord(rec FinancialRecord) (FinancialRecord, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return FinancialRecord{}, fmt.Errorf("%w: nama wajib diisi", shared.ErrValidation)
	}
	if rec.Amount < 0 {
		return FinancialRecord{}, fmt.Errorf("%w: jumlah tidak boleh negatif", shared.ErrValidation)
	}
	if _, ok := shared.ParseRecordDate(rec.Date); !ok {
		return FinancialRecord{}, fmt.Errorf("%w: tanggal tidak valid", shared.ErrValidation)
	}
	if rec.Status == "" {
		rec.Status = StatusUnpaid
	}
	if rec.Status != StatusPaid && rec.Status != StatusUnpaid {
		return FinancialRecord{}, fmt.Errorf("%w: status tidak dikenal", shared.ErrValidation)
	}
	rec.ID = uuid.NewString()
	return rec, nil
}

func (s *Service) setRecordStatus(
	ctx context.Context,
	id, status string,
	load func(context.Context) ([]FinancialRecord, error),
	save func(context.Context, FinancialRecord) error,
) (FinancialRecord, error) {
	if status != StatusPaid && status != StatusUnpaid {
		return FinancialRecord{}, fmt.Errorf("%w: status tidak dikenal", shared.ErrValidation)
	}
	records, err := load(ctx)
	if err != nil {
		return FinancialRecord{}, fmt.Errorf("load records: %w", err)
	}
	for _, rec := range records {
		if rec.ID == id {
			rec.Status = status
			if err := save(ctx, rec); err != nil {
				return FinancialRecord{}, fmt.Errorf("save record: %w", err)
			}
			s.bump(ctx)
			return rec, nil
		}
	}
	return FinancialRecord{}, shared.ErrNotFound
}

func (s *Service) ensureCategory(ctx context.Context, name string) error {
	categories, err := s.repo.ExpenseCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	for _, c := range categories {
		if c == name {
			return nil
		}
	}
	if err := s.repo.SaveExpenseCategories(ctx, append(categories, name)); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

func (s *Service) bump(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Bump(ctx)
	}
}
