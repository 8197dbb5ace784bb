package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/shared"
)

func profitableSnapshot() Snapshot {
	s := salesSnapshot()
	s.DistributionConfig = DistributionConfig{
		BusinessPercentage:            70,
		FounderPercentage:             30,
		BusinessSavingsPercentage:     30,
		BusinessOperationalPercentage: 70,
	}
	s.Founders = []FounderShare{
		{ID: "f-1", Name: "Ani", Percentage: 100},
	}
	return s
}

func TestBuildDailyReport(t *testing.T) {
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	rep := BuildDaily(profitableSnapshot(), day)

	assert.Equal(t, shared.WindowDaily, rep.Kind)
	assert.Equal(t, "2025-07-01", rep.Period)
	assert.Nil(t, rep.Breakdown)
	require.Len(t, rep.Transactions, 1)
	assert.Equal(t, "trx-1", rep.Transactions[0].ID)

	require.NotNil(t, rep.Distribution)
	assert.InDelta(t, rep.Totals.NetProfit, rep.Distribution.NetProfit, 0.001)
}

func TestBuildMonthlyReportBreakdownCoversEveryDay(t *testing.T) {
	rep := BuildMonthly(profitableSnapshot(), 2025, time.July)

	assert.Equal(t, shared.WindowMonthly, rep.Kind)
	assert.Equal(t, "2025-07", rep.Period)
	require.Len(t, rep.Breakdown, 31)
	assert.Equal(t, "2025-07-01", rep.Breakdown[0].Period)
	assert.Equal(t, "2025-07-31", rep.Breakdown[30].Period)
	assert.InDelta(t, 500000, rep.Breakdown[0].TotalSales, 0.001)
	assert.Zero(t, rep.Breakdown[1].TotalSales)
}

func TestBuildYearlyReportBreakdownCoversEveryMonth(t *testing.T) {
	rep := BuildYearly(profitableSnapshot(), 2025)

	assert.Equal(t, shared.WindowYearly, rep.Kind)
	assert.Equal(t, "2025", rep.Period)
	require.Len(t, rep.Breakdown, 12)
}

func TestBuildLossHasNoDistribution(t *testing.T) {
	s := profitableSnapshot()
	s.Expenses = append(s.Expenses, ledger.Expense{
		ID:     "exp-big",
		Amount: 9000000,
		Date:   "2025-07-20",
	})

	rep := BuildMonthly(s, 2025, time.July)

	assert.Less(t, rep.Totals.NetProfit, 0.0)
	assert.Nil(t, rep.Distribution)
}

func TestBuildFiltersRecordsByWindow(t *testing.T) {
	s := profitableSnapshot()
	s.Debts = []ledger.FinancialRecord{
		{ID: "debt-in", Amount: 10000, Date: "2025-07-03", Status: ledger.StatusUnpaid},
		{ID: "debt-out", Amount: 10000, Date: "2025-06-03", Status: ledger.StatusUnpaid},
	}
	s.Receivables = []ledger.FinancialRecord{
		{ID: "rcv-in", Amount: 5000, Date: "2025-07-09", Status: ledger.StatusPaid},
	}

	rep := BuildMonthly(s, 2025, time.July)

	require.Len(t, rep.Debts, 1)
	assert.Equal(t, "debt-in", rep.Debts[0].ID)
	require.Len(t, rep.Receivables, 1)
	assert.Equal(t, "rcv-in", rep.Receivables[0].ID)
}
