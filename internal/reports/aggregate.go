package reports

import (
	"github.com/warungkas/warungkas/internal/assets"
	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/payroll"
	"github.com/warungkas/warungkas/internal/shared"
)

// Aggregate derives the profit-and-loss totals for one window from a
// snapshot. Line-item cost uses the simple per-product cost map; the
// detailed HPP decomposition is a product-list display concern and is
// deliberately not applied here. Records with malformed dates match no
// window and are skipped.
func Aggregate(s Snapshot, w shared.Window) PeriodTotals {
	var t PeriodTotals

	for _, trx := range s.Transactions {
		if !w.ContainsDate(trx.Timestamp) {
			continue
		}
		t.TotalSales += trx.Total
		t.TotalItems += trx.ItemCount()
		for _, item := range trx.Items {
			t.TotalCost += s.ProductCosts[item.ProductID] * float64(item.Quantity)
		}
	}

	for _, e := range s.Expenses {
		if w.ContainsDate(e.Date) {
			t.Expenses += e.Amount
		}
	}
	for _, c := range s.AccommodationCosts {
		if w.ContainsDate(c.Date) {
			t.Accommodation += c.Cost
		}
	}

	for _, a := range s.Assets {
		switch w.Kind {
		case shared.WindowDaily:
			t.Depreciation += assets.DailyCharge(a, w.Ref)
		case shared.WindowMonthly:
			t.Depreciation += assets.MonthlyCharge(a, w.Ref)
		default:
			t.Depreciation += assets.YearlyCharge(a, w.Ref)
		}
	}

	t.Salaries = payroll.NewResolver(s.Employees, s.WorkRecords).ForWindow(w)

	for _, d := range s.Debts {
		if d.Status == ledger.StatusPaid && w.ContainsDate(d.Date) {
			t.DebtPayments += d.Amount
		}
	}
	for _, r := range s.Receivables {
		if r.Status == ledger.StatusPaid && w.ContainsDate(r.Date) {
			t.ReceivableCollections += r.Amount
		}
	}

	t.GrossProfit = t.TotalSales - t.TotalCost
	t.NetProfit = t.GrossProfit - t.Expenses - t.Accommodation - t.Depreciation -
		t.Salaries - t.DebtPayments + t.ReceivableCollections
	return t
}

// Breakdown aggregates each sub-period of a monthly or yearly window
// independently. Every entry re-applies its own date filters rather than
// slicing the parent totals, so sub-period figures always reflect their own
// windows.
func Breakdown(s Snapshot, w shared.Window) []BreakdownEntry {
	subs := w.SubWindows()
	if len(subs) == 0 {
		return nil
	}
	entries := make([]BreakdownEntry, 0, len(subs))
	for _, sub := range subs {
		totals := Aggregate(s, sub)
		entries = append(entries, BreakdownEntry{
			Period:      sub.Key(),
			TotalSales:  totals.TotalSales,
			TotalCost:   totals.TotalCost,
			GrossProfit: totals.GrossProfit,
			NetProfit:   totals.NetProfit,
		})
	}
	return entries
}
