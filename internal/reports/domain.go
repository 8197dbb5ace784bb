package reports

import (
	"github.com/warungkas/warungkas/internal/assets"
	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/payroll"
	"github.com/warungkas/warungkas/internal/pos"
	"github.com/warungkas/warungkas/internal/shared"
)

// Snapshot is an immutable copy of every source collection a report derives
// from. Aggregation never reads storage directly; the repository hands the
// aggregator one snapshot per build.
type Snapshot struct {
	Transactions       []pos.Transaction
	ProductCosts       map[string]float64
	Expenses           []ledger.Expense
	AccommodationCosts []ledger.AccommodationCost
	Assets             []assets.Asset
	Employees          []payroll.Employee
	WorkRecords        []payroll.WorkRecord
	Debts              []ledger.FinancialRecord
	Receivables        []ledger.FinancialRecord
	Founders           []FounderShare
	DistributionConfig DistributionConfig
}

// PeriodTotals aggregates all profit-and-loss factors for one window.
type PeriodTotals struct {
	TotalSales            float64 `json:"totalSales"`
	TotalItems            int     `json:"totalItems"`
	TotalCost             float64 `json:"totalCost"`
	GrossProfit           float64 `json:"grossProfit"`
	Expenses              float64 `json:"expenses"`
	Accommodation         float64 `json:"accommodation"`
	Depreciation          float64 `json:"depreciation"`
	Salaries              float64 `json:"salaries"`
	DebtPayments          float64 `json:"debtPayments"`
	ReceivableCollections float64 `json:"receivableCollections"`
	NetProfit             float64 `json:"netProfit"`
}

// BreakdownEntry is one sub-period row of a monthly or yearly report, used
// by trend charts.
type BreakdownEntry struct {
	Period      string  `json:"period"`
	TotalSales  float64 `json:"totalSales"`
	TotalCost   float64 `json:"totalCost"`
	GrossProfit float64 `json:"grossProfit"`
	NetProfit   float64 `json:"netProfit"`
}

// DistributionConfig splits net profit between the business and its
// founders. Percentages are stored as entered; they are expected to sum to
// 100 but this is not enforced.
type DistributionConfig struct {
	BusinessPercentage            float64 `json:"businessPercentage"`
	FounderPercentage             float64 `json:"founderPercentage"`
	BusinessSavingsPercentage     float64 `json:"businessSavingsPercentage"`
	BusinessOperationalPercentage float64 `json:"businessOperationalPercentage"`
}

// FounderShare is one founder's raw percentage of the founder pool. Raw
// values are normalised at read time so all founders sum to 100.
type FounderShare struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// FounderAllocation is a founder's normalised share of a distributed profit.
type FounderAllocation struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// Distribution is the waterfall split of a positive net profit.
type Distribution struct {
	NetProfit                 float64             `json:"netProfit"`
	BusinessAmount            float64             `json:"businessAmount"`
	FounderAmount             float64             `json:"founderAmount"`
	BusinessSavingsAmount     float64             `json:"businessSavingsAmount"`
	BusinessOperationalAmount float64             `json:"businessOperationalAmount"`
	Founders                  []FounderAllocation `json:"founders"`
}

// Report is the assembled output for one window: totals, the optional
// profit distribution, the raw records backing the period, and the
// sub-period breakdown for monthly and yearly reports. Reports are
// ephemeral; they are rebuilt from the snapshot on every query and cached
// only as serialized JSON.
type Report struct {
	Kind         shared.WindowKind         `json:"kind"`
	Period       string                    `json:"period"`
	Totals       PeriodTotals              `json:"totals"`
	Distribution *Distribution             `json:"distribution,omitempty"`
	Breakdown    []BreakdownEntry          `json:"breakdown,omitempty"`
	Transactions []pos.Transaction         `json:"transactions"`
	Debts        []ledger.FinancialRecord  `json:"debts"`
	Receivables  []ledger.FinancialRecord  `json:"receivables"`
}
