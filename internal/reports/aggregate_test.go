package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkas/warungkas/internal/assets"
	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/payroll"
	"github.com/warungkas/warungkas/internal/pos"
	"github.com/warungkas/warungkas/internal/shared"
)

func salesSnapshot() Snapshot {
	return Snapshot{
		Transactions: []pos.Transaction{
			{
				ID:        "trx-1",
				Timestamp: "2025-07-01T10:30:00Z",
				Items: []pos.LineItem{
					{ProductID: "prod-a", Name: "Keripik", UnitPrice: 50000, Quantity: 10},
				},
				Total: 500000,
			},
		},
		ProductCosts: map[string]float64{"prod-a": 20000},
		Expenses: []ledger.Expense{
			{ID: "exp-1", Category: "Listrik", Amount: 50000, Date: "2025-07-05"},
			{ID: "exp-2", Category: "Listrik", Amount: 99999, Date: "2025-08-01"},
		},
	}
}

func TestAggregateGrossAndNetProfit(t *testing.T) {
	totals := Aggregate(salesSnapshot(), shared.MonthlyWindow(2025, 7))

	assert.InDelta(t, 500000, totals.TotalSales, 0.001)
	assert.Equal(t, 10, totals.TotalItems)
	assert.InDelta(t, 200000, totals.TotalCost, 0.001)
	assert.InDelta(t, 300000, totals.GrossProfit, 0.001)
	assert.InDelta(t, 50000, totals.Expenses, 0.001)
	assert.InDelta(t, 250000, totals.NetProfit, 0.001)
}

func TestAggregateNetProfitDecomposition(t *testing.T) {
	s := salesSnapshot()
	s.AccommodationCosts = []ledger.AccommodationCost{
		{ID: "acc-1", Type: ledger.AccommodationSupplierToKitchen, Date: "2025-07-10", Cost: 20000},
	}
	// Straight line: (800000-200000)/5 = 120000 annually, 10000 monthly.
	s.Assets = []assets.Asset{
		{
			ID:                 "asset-1",
			Name:               "Etalase",
			PurchaseDate:       "2024-01-01",
			PurchasePrice:      800000,
			UsefulLife:         5,
			SalvageValue:       200000,
			DepreciationMethod: assets.MethodStraightLine,
		},
	}
	s.Employees = []payroll.Employee{
		{
			ID:             "emp-1",
			Name:           "Budi",
			EmploymentType: payroll.EmploymentFullTime,
			BaseSalary:     2000000,
			Allowances:     100000,
			Deductions:     100000,
			PaymentStatus:  payroll.PaymentPaid,
		},
	}
	s.Debts = []ledger.FinancialRecord{
		{ID: "debt-1", Amount: 30000, Date: "2025-07-12", Status: ledger.StatusPaid},
		{ID: "debt-2", Amount: 77777, Date: "2025-07-13", Status: ledger.StatusUnpaid},
	}
	s.Receivables = []ledger.FinancialRecord{
		{ID: "rcv-1", Amount: 40000, Date: "2025-07-14", Status: ledger.StatusPaid},
	}

	totals := Aggregate(s, shared.MonthlyWindow(2025, 7))

	assert.InDelta(t, 20000, totals.Accommodation, 0.001)
	assert.InDelta(t, 10000, totals.Depreciation, 0.001)
	assert.InDelta(t, 2000000, totals.Salaries, 0.001)
	assert.InDelta(t, 30000, totals.DebtPayments, 0.001)
	assert.InDelta(t, 40000, totals.ReceivableCollections, 0.001)

	want := totals.GrossProfit - totals.Expenses - totals.Accommodation -
		totals.Depreciation - totals.Salaries - totals.DebtPayments +
		totals.ReceivableCollections
	assert.InDelta(t, want, totals.NetProfit, 0.001)
}

func TestAggregateUnpaidRecordsDoNotMove(t *testing.T) {
	s := salesSnapshot()
	s.Debts = []ledger.FinancialRecord{
		{ID: "debt-1", Amount: 123456, Date: "2025-07-12", Status: ledger.StatusUnpaid},
	}
	s.Receivables = []ledger.FinancialRecord{
		{ID: "rcv-1", Amount: 654321, Date: "2025-07-14", Status: ledger.StatusUnpaid},
	}

	totals := Aggregate(s, shared.MonthlyWindow(2025, 7))

	assert.Zero(t, totals.DebtPayments)
	assert.Zero(t, totals.ReceivableCollections)
}

func TestAggregateSkipsMalformedDates(t *testing.T) {
	s := salesSnapshot()
	s.Transactions = append(s.Transactions, pos.Transaction{
		ID:        "trx-broken",
		Timestamp: "kemarin sore",
		Total:     999999,
	})
	s.Expenses = append(s.Expenses, ledger.Expense{ID: "exp-broken", Amount: 888888, Date: ""})

	totals := Aggregate(s, shared.MonthlyWindow(2025, 7))

	assert.InDelta(t, 500000, totals.TotalSales, 0.001)
	assert.InDelta(t, 50000, totals.Expenses, 0.001)
}

func TestAggregateMissingCostCountsZero(t *testing.T) {
	s := salesSnapshot()
	s.ProductCosts = map[string]float64{}

	totals := Aggregate(s, shared.MonthlyWindow(2025, 7))

	assert.Zero(t, totals.TotalCost)
	assert.InDelta(t, totals.TotalSales, totals.GrossProfit, 0.001)
}

func TestBreakdownReAggregatesSubWindows(t *testing.T) {
	s := salesSnapshot()
	s.Transactions = append(s.Transactions, pos.Transaction{
		ID:        "trx-2",
		Timestamp: "2025-09-15T09:00:00Z",
		Items: []pos.LineItem{
			{ProductID: "prod-a", UnitPrice: 50000, Quantity: 2},
		},
		Total: 100000,
	})

	entries := Breakdown(s, shared.YearlyWindow(2025))
	require.Len(t, entries, 12)

	byPeriod := make(map[string]BreakdownEntry, len(entries))
	for _, e := range entries {
		byPeriod[e.Period] = e
	}
	assert.InDelta(t, 500000, byPeriod["2025-07"].TotalSales, 0.001)
	assert.InDelta(t, 100000, byPeriod["2025-09"].TotalSales, 0.001)
	assert.InDelta(t, 40000, byPeriod["2025-09"].TotalCost, 0.001)
	assert.Zero(t, byPeriod["2025-03"].TotalSales)
}

func TestBreakdownDailyWindowHasNone(t *testing.T) {
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	entries := Breakdown(salesSnapshot(), shared.DailyWindow(day))
	assert.Nil(t, entries)
}
