package reports

import (
	"time"

	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/pos"
	"github.com/warungkas/warungkas/internal/shared"
)

// Build assembles the report for a window: aggregated totals, the profit
// distribution when the period is profitable, the raw records matching the
// window, and the sub-period breakdown for monthly and yearly windows. The
// result is plain, acyclic data safe to hand to any serializer.
func Build(s Snapshot, w shared.Window) Report {
	totals := Aggregate(s, w)

	report := Report{
		Kind:         w.Kind,
		Period:       w.Key(),
		Totals:       totals,
		Breakdown:    Breakdown(s, w),
		Transactions: filterTransactions(s.Transactions, w),
		Debts:        filterRecords(s.Debts, w),
		Receivables:  filterRecords(s.Receivables, w),
	}
	if totals.NetProfit > 0 {
		report.Distribution = Distribute(totals.NetProfit, s.DistributionConfig, s.Founders)
	}
	return report
}

// BuildDaily builds the report for the day containing date.
func BuildDaily(s Snapshot, date time.Time) Report {
	return Build(s, shared.DailyWindow(date))
}

// BuildMonthly builds the report for a calendar month.
func BuildMonthly(s Snapshot, year int, month time.Month) Report {
	return Build(s, shared.MonthlyWindow(year, month))
}

// BuildYearly builds the report for a calendar year.
func BuildYearly(s Snapshot, year int) Report {
	return Build(s, shared.YearlyWindow(year))
}

func filterTransactions(transactions []pos.Transaction, w shared.Window) []pos.Transaction {
	matched := make([]pos.Transaction, 0)
	for _, trx := range transactions {
		if w.ContainsDate(trx.Timestamp) {
			matched = append(matched, trx)
		}
	}
	return matched
}

func filterRecords(records []ledger.FinancialRecord, w shared.Window) []ledger.FinancialRecord {
	matched := make([]ledger.FinancialRecord, 0)
	for _, rec := range records {
		if w.ContainsDate(rec.Date) {
			matched = append(matched, rec)
		}
	}
	return matched
}
