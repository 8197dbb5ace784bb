package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warungkas/warungkas/internal/shared"
)

// Service exposes payroll operations over the repository.
type Service struct {
	repo  Repository
	cache shared.CacheInvalidator
}

// NewService constructs a payroll service. cache may be nil.
func NewService(repo Repository, cache shared.CacheInvalidator) *Service {
	return &Service{repo: repo, cache: cache}
}

// Employees returns all employees.
func (s *Service) Employees(ctx context.Context) ([]Employee, error) {
	employees, err := s.repo.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	return employees, nil
}

// CreateEmployee stores a new employee, minting its id.
func (s *Service) CreateEmployee(ctx context.Context, e Employee) (Employee, error) {
	if err := validateEmployee(e); err != nil {
		return Employee{}, err
	}
	e.ID = uuid.NewString()
	if e.PaymentStatus == "" {
		e.PaymentStatus = PaymentUnpaid
	}
	if err := s.repo.SaveEmployee(ctx, e); err != nil {
		return Employee{}, fmt.Errorf("save employee: %w", err)
	}
	s.bump(ctx)
	return e, nil
}

// UpdateEmployee replaces an existing employee.
func (s *Service) UpdateEmployee(ctx context.Context, e Employee) (Employee, error) {
	if err := validateEmployee(e); err != nil {
		return Employee{}, err
	}
	existing, err := s.repo.Employees(ctx)
	if err != nil {
		return Employee{}, fmt.Errorf("load employees: %w", err)
	}
	found := false
	for _, cur := range existing {
		if cur.ID == e.ID {
			found = true
			break
		}
	}
	if !found {
		return Employee{}, shared.ErrNotFound
	}
	if err := s.repo.SaveEmployee(ctx, e); err != nil {
		return Employee{}, fmt.Errorf("save employee: %w", err)
	}
	s.bump(ctx)
	return e, nil
}

// SetPaymentStatus flips an employee between paid and unpaid.
func (s *Service) SetPaymentStatus(ctx context.Context, id, status string) (Employee, error) {
	if status != PaymentPaid && status != PaymentUnpaid {
		return Employee{}, fmt.Errorf("%w: status pembayaran tidak dikenal", shared.ErrValidation)
	}
	employees, err := s.repo.Employees(ctx)
	if err != nil {
		return Employee{}, fmt.Errorf("load employees: %w", err)
	}
	for _, e := range employees {
		if e.ID == id {
			e.PaymentStatus = status
			if err := s.repo.SaveEmployee(ctx, e); err != nil {
				return Employee{}, fmt.Errorf("save employee: %w", err)
			}
			s.bump(ctx)
			return e, nil
		}
	}
	return Employee{}, shared.ErrNotFound
}

// DeleteEmployee removes an employee. Work records are kept; they reference
// employees weakly.
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	s.bump(ctx)
	return nil
}

// WorkRecords returns all work records.
func (s *Service) WorkRecords(ctx context.Context) ([]WorkRecord, error) {
	records, err := s.repo.WorkRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load work records: %w", err)
	}
	return records, nil
}

// CreateWorkRecord stores a billable-hours entry. The hourly rate defaults
// to the employee's configured rate when omitted.
func (s *Service) CreateWorkRecord(ctx context.Context, rec WorkRecord) (WorkRecord, error) {
	if rec.Hours <= 0 {
		return WorkRecord{}, fmt.Errorf("%w: jam kerja harus lebih dari nol", shared.ErrValidation)
	}
	if _, ok := shared.ParseRecordDate(rec.Date); !ok {
		return WorkRecord{}, fmt.Errorf("%w: tanggal tidak valid", shared.ErrValidation)
	}
	if rec.HourlyRate == 0 {
		employees, err := s.repo.Employees(ctx)
		if err != nil {
			return WorkRecord{}, fmt.Errorf("load employees: %w", err)
		}
		for _, e := range employees {
			if e.ID == rec.EmployeeID {
				rec.HourlyRate = e.HourlyRate
				break
			}
		}
	}
	rec.ID = uuid.NewString()
	if err := s.repo.SaveWorkRecord(ctx, rec); err != nil {
		return WorkRecord{}, fmt.Errorf("save work record: %w", err)
	}
	s.bump(ctx)
	return rec, nil
}

// DeleteWorkRecord removes a work record.
func (s *Service) DeleteWorkRecord(ctx context.Context, id string) error {
	if err := s.repo.DeleteWorkRecord(ctx, id); err != nil {
		return fmt.Errorf("delete work record: %w", err)
	}
	s.bump(ctx)
	return nil
}

// Resolver builds a salary resolver over the current payroll snapshot.
func (s *Service) Resolver(ctx context.Context) (*Resolver, error) {
	employees, err := s.repo.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	records, err := s.repo.WorkRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load work records: %w", err)
	}
	return NewResolver(employees, records), nil
}

// BuildPayslip assembles the monthly earnings statement for one employee.
func (s *Service) BuildPayslip(ctx context.Context, employeeID string, year int, month time.Month) (Payslip, error) {
	resolver, err := s.Resolver(ctx)
	if err != nil {
		return Payslip{}, err
	}
	var employee *Employee
	for i := range resolver.employees {
		if resolver.employees[i].ID == employeeID {
			employee = &resolver.employees[i]
			break
		}
	}
	if employee == nil {
		return Payslip{}, shared.ErrNotFound
	}
	slip := Payslip{
		Employee: *employee,
		Period:   fmt.Sprintf("%04d-%02d", year, month),
		Records:  resolver.MonthRecords(employeeID, year, month),
		Total:    resolver.EmployeeMonthlyEarnings(employeeID, year, month),
	}
	if employee.EmploymentType == EmploymentFullTime {
		slip.BaseSalary = employee.BaseSalary
		slip.Allowances = employee.Allowances
		slip.Deductions = employee.Deductions
	} else {
		for _, rec := range slip.Records {
			slip.HourlyPay += rec.Hours * rec.HourlyRate
		}
	}
	return slip, nil
}

func validateEmployee(e Employee) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: nama karyawan wajib diisi", shared.ErrValidation)
	}
	if e.EmploymentType != EmploymentFullTime && e.EmploymentType != EmploymentPartTime {
		return fmt.Errorf("%w: jenis kepegawaian tidak dikenal", shared.ErrValidation)
	}
	if e.BaseSalary < 0 || e.Allowances < 0 || e.Deductions < 0 || e.HourlyRate < 0 {
		return fmt.Errorf("%w: nilai gaji tidak boleh negatif", shared.ErrValidation)
	}
	return nil
}

func (s *Service) bump(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Bump(ctx)
	}
}
