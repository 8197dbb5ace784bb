package payroll

import "context"

// Repository abstracts persistence of payroll records.
type Repository interface {
	Employees(ctx context.Context) ([]Employee, error)
	SaveEmployee(ctx context.Context, e Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	WorkRecords(ctx context.Context) ([]WorkRecord, error)
	SaveWorkRecord(ctx context.Context, rec WorkRecord) error
	DeleteWorkRecord(ctx context.Context, id string) error
}
