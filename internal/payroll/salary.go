package payroll

import (
	"time"

	"github.com/warungkas/warungkas/internal/shared"
)

// Salary returns the period salary of an employee: base plus allowances
// minus deductions. The formula applies uniformly to both employment types;
// part-time employees usually carry a zero base.
func Salary(e Employee) float64 {
	return e.BaseSalary + e.Allowances - e.Deductions
}

// Resolver computes salary costs from employee and work-record snapshots.
type Resolver struct {
	employees []Employee
	records   []WorkRecord
}

// NewResolver builds a resolver over payroll snapshots.
func NewResolver(employees []Employee, records []WorkRecord) *Resolver {
	return &Resolver{employees: employees, records: records}
}

// DailySalaries sums hours times rate over every work record on the given
// day. There is deliberately no employment-type filter: any work record on
// the date counts, including ones logged for full-time staff.
func (r *Resolver) DailySalaries(date time.Time) float64 {
	return r.recordedEarnings(shared.DailyWindow(date))
}

// MonthlySalaries returns the salary cost attributed to a month: the full
// salary of every full-time employee currently marked paid plus all
// work-record earnings falling inside the month.
//
// The full-time portion is not date-filtered, so an employee who stays
// marked paid contributes to every month queried. This mirrors the original
// bookkeeping behaviour and is pinned by tests as a known quirk.
func (r *Resolver) MonthlySalaries(year int, month time.Month) float64 {
	return r.paidFullTimeSalaries() + r.recordedEarnings(shared.MonthlyWindow(year, month))
}

// YearlySalaries applies the same aggregation at year granularity.
func (r *Resolver) YearlySalaries(year int) float64 {
	return r.paidFullTimeSalaries() + r.recordedEarnings(shared.YearlyWindow(year))
}

// ForWindow dispatches to the matching granularity for a reporting window.
func (r *Resolver) ForWindow(w shared.Window) float64 {
	switch w.Kind {
	case shared.WindowDaily:
		return r.DailySalaries(w.Ref)
	case shared.WindowMonthly:
		return r.MonthlySalaries(w.Ref.Year(), w.Ref.Month())
	default:
		return r.YearlySalaries(w.Ref.Year())
	}
}

// EmployeeMonthlyEarnings returns one employee's earnings for a month:
// full-time staff earn their flat salary when marked paid (never pro-rated),
// part-time staff earn their work-record hours in the month.
func (r *Resolver) EmployeeMonthlyEarnings(employeeID string, year int, month time.Month) float64 {
	var employee *Employee
	for i := range r.employees {
		if r.employees[i].ID == employeeID {
			employee = &r.employees[i]
			break
		}
	}
	if employee == nil {
		return 0
	}
	if employee.EmploymentType == EmploymentFullTime {
		if employee.PaymentStatus == PaymentPaid {
			return Salary(*employee)
		}
		return 0
	}
	window := shared.MonthlyWindow(year, month)
	var total float64
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && window.ContainsDate(rec.Date) {
			total += rec.Hours * rec.HourlyRate
		}
	}
	return total
}

// MonthRecords returns the employee's work records inside the month.
func (r *Resolver) MonthRecords(employeeID string, year int, month time.Month) []WorkRecord {
	window := shared.MonthlyWindow(year, month)
	matched := make([]WorkRecord, 0)
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && window.ContainsDate(rec.Date) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func (r *Resolver) paidFullTimeSalaries() float64 {
	var total float64
	for _, e := range r.employees {
		if e.EmploymentType == EmploymentFullTime && e.PaymentStatus == PaymentPaid {
			total += Salary(e)
		}
	}
	return total
}

func (r *Resolver) recordedEarnings(w shared.Window) float64 {
	var total float64
	for _, rec := range r.records {
		if w.ContainsDate(rec.Date) {
			total += rec.Hours * rec.HourlyRate
		}
	}
	return total
}
