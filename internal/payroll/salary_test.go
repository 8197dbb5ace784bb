package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSalaryFormula(t *testing.T) {
	e := Employee{BaseSalary: 3000000, Allowances: 500000, Deductions: 200000}
	assert.Equal(t, 3300000.0, Salary(e))
}

func TestSalaryFormulaAppliesToPartTime(t *testing.T) {
	// The formula does not special-case part-time employees.
	e := Employee{EmploymentType: EmploymentPartTime, Allowances: 100000}
	assert.Equal(t, 100000.0, Salary(e))
}

func TestDailySalariesCountsAllRecords(t *testing.T) {
	resolver := NewResolver(
		[]Employee{{ID: "ft", EmploymentType: EmploymentFullTime}},
		[]WorkRecord{
			{EmployeeID: "pt", Date: "2025-03-05", Hours: 4, HourlyRate: 20000},
			// Work records logged for full-time staff still count.
			{EmployeeID: "ft", Date: "2025-03-05", Hours: 2, HourlyRate: 15000},
			{EmployeeID: "pt", Date: "2025-03-06", Hours: 8, HourlyRate: 20000},
			{EmployeeID: "pt", Date: "rusak", Hours: 8, HourlyRate: 20000},
		},
	)
	day := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 110000.0, resolver.DailySalaries(day))
}

func TestMonthlySalariesKnownQuirk(t *testing.T) {
	// Every full-time employee marked paid contributes their whole salary to
	// any month queried, regardless of when they were marked paid.
	resolver := NewResolver(
		[]Employee{
			{ID: "a", EmploymentType: EmploymentFullTime, PaymentStatus: PaymentPaid, BaseSalary: 2000000},
			{ID: "b", EmploymentType: EmploymentFullTime, PaymentStatus: PaymentUnpaid, BaseSalary: 9000000},
			{ID: "c", EmploymentType: EmploymentPartTime, PaymentStatus: PaymentPaid, HourlyRate: 25000},
		},
		[]WorkRecord{
			{EmployeeID: "c", Date: "2025-01-10", Hours: 5, HourlyRate: 25000},
			{EmployeeID: "c", Date: "2025-02-10", Hours: 3, HourlyRate: 25000},
		},
	)
	jan := resolver.MonthlySalaries(2025, time.January)
	assert.Equal(t, 2000000.0+125000, jan)

	// The same paid full-time salary appears again in February.
	feb := resolver.MonthlySalaries(2025, time.February)
	assert.Equal(t, 2000000.0+75000, feb)
}

func TestYearlySalaries(t *testing.T) {
	resolver := NewResolver(
		[]Employee{
			{ID: "a", EmploymentType: EmploymentFullTime, PaymentStatus: PaymentPaid, BaseSalary: 2400000},
		},
		[]WorkRecord{
			{EmployeeID: "p", Date: "2025-01-10", Hours: 5, HourlyRate: 10000},
			{EmployeeID: "p", Date: "2024-12-31", Hours: 5, HourlyRate: 10000},
		},
	)
	assert.Equal(t, 2450000.0, resolver.YearlySalaries(2025))
}

func TestEmployeeMonthlyEarnings(t *testing.T) {
	resolver := NewResolver(
		[]Employee{
			{ID: "ft-paid", EmploymentType: EmploymentFullTime, PaymentStatus: PaymentPaid, BaseSalary: 3000000, Allowances: 200000},
			{ID: "ft-unpaid", EmploymentType: EmploymentFullTime, PaymentStatus: PaymentUnpaid, BaseSalary: 3000000},
			{ID: "pt", EmploymentType: EmploymentPartTime, HourlyRate: 20000},
		},
		[]WorkRecord{
			{EmployeeID: "pt", Date: "2025-04-01", Hours: 6, HourlyRate: 20000},
			{EmployeeID: "pt", Date: "2025-04-15", Hours: 4, HourlyRate: 20000},
			{EmployeeID: "pt", Date: "2025-05-01", Hours: 8, HourlyRate: 20000},
		},
	)

	assert.Equal(t, 3200000.0, resolver.EmployeeMonthlyEarnings("ft-paid", 2025, time.April))
	assert.Equal(t, 0.0, resolver.EmployeeMonthlyEarnings("ft-unpaid", 2025, time.April))
	assert.Equal(t, 200000.0, resolver.EmployeeMonthlyEarnings("pt", 2025, time.April))
	assert.Equal(t, 0.0, resolver.EmployeeMonthlyEarnings("hilang", 2025, time.April))
}

func TestForWindowDispatch(t *testing.T) {
	resolver := NewResolver(nil, []WorkRecord{
		{EmployeeID: "p", Date: "2025-06-15", Hours: 2, HourlyRate: 10000},
	})

	dailyTotal := resolver.DailySalaries(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 20000.0, dailyTotal)
	assert.Equal(t, dailyTotal, resolver.MonthlySalaries(2025, time.June))
	assert.Equal(t, dailyTotal, resolver.YearlySalaries(2025))
}
