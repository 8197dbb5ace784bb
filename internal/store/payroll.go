package store

import (
	"context"

	"github.com/warungkas/warungkas/internal/payroll"
)

var _ payroll.Repository = (*Store)(nil)

// Employees returns all employees.
func (s *Store) Employees(ctx context.Context) ([]payroll.Employee, error) {
	return listLoad[payroll.Employee](ctx, s, keyEmployees)
}

// SaveEmployee inserts or replaces an employee by id.
func (s *Store) SaveEmployee(ctx context.Context, e payroll.Employee) error {
	return listUpsert(ctx, s, keyEmployees, e, func(other payroll.Employee) bool {
		return other.ID == e.ID
	})
}

// DeleteEmployee removes an employee by id. Work records referencing the
// employee are kept; the reference is weak.
func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyEmployees, func(e payroll.Employee) bool {
		return e.ID == id
	})
}

// WorkRecords returns all hourly work records.
func (s *Store) WorkRecords(ctx context.Context) ([]payroll.WorkRecord, error) {
	return listLoad[payroll.WorkRecord](ctx, s, keyWorkRecords)
}

// SaveWorkRecord inserts or replaces a work record by id.
func (s *Store) SaveWorkRecord(ctx context.Context, rec payroll.WorkRecord) error {
	return listUpsert(ctx, s, keyWorkRecords, rec, func(other payroll.WorkRecord) bool {
		return other.ID == rec.ID
	})
}

// DeleteWorkRecord removes a work record by id.
func (s *Store) DeleteWorkRecord(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyWorkRecords, func(rec payroll.WorkRecord) bool {
		return rec.ID == id
	})
}
