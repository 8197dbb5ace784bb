// Command seed loads a small demo dataset into Redis so the API serves
// meaningful reports out of the box. Safe to re-run; documents are written
// whole, so repeated runs converge to the same state.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/warungkas/warungkas/internal/assets"
	"github.com/warungkas/warungkas/internal/catalog"
	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/payroll"
	"github.com/warungkas/warungkas/internal/platform/cache"
	"github.com/warungkas/warungkas/internal/pos"
	"github.com/warungkas/warungkas/internal/reports"
	"github.com/warungkas/warungkas/internal/shared"
	"github.com/warungkas/warungkas/internal/store"
)

func main() {
	addr := getenv("REDIS_ADDR", "127.0.0.1:6379")
	ctx := context.Background()

	client, err := cache.New(ctx, addr)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	defer client.Close()

	st := store.New(client)
	today := time.Now().UTC()

	fmt.Println("→ Seeding catalog...")
	if err := seedCatalog(ctx, st); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	fmt.Println("→ Seeding payroll...")
	if err := seedPayroll(ctx, st, today); err != nil {
		log.Fatalf("seed payroll: %v", err)
	}

	fmt.Println("→ Seeding assets...")
	if err := seedAssets(ctx, st, today); err != nil {
		log.Fatalf("seed assets: %v", err)
	}

	fmt.Println("→ Seeding ledger...")
	if err := seedLedger(ctx, st, today); err != nil {
		log.Fatalf("seed ledger: %v", err)
	}

	fmt.Println("→ Seeding transactions...")
	if err := seedTransactions(ctx, st, today); err != nil {
		log.Fatalf("seed transactions: %v", err)
	}

	fmt.Println("→ Seeding distribution...")
	if err := seedDistribution(ctx, st); err != nil {
		log.Fatalf("seed distribution: %v", err)
	}

	fmt.Println("Done.")
}

func seedCatalog(ctx context.Context, st *store.Store) error {
	products := []catalog.Product{
		{ID: "prod-keripik", Name: "Keripik Singkong", Category: "Snack", Price: 15000, Stock: 120},
		{ID: "prod-sambal", Name: "Sambal Bawang", Category: "Bumbu", Price: 25000, Stock: 60},
		{ID: "prod-kopi", Name: "Kopi Bubuk Robusta", Category: "Minuman", Price: 40000, Stock: 35},
	}
	for _, p := range products {
		if err := st.SaveProduct(ctx, p); err != nil {
			return err
		}
	}

	costs := map[string]float64{
		"prod-keripik": 8000,
		"prod-sambal":  14000,
		"prod-kopi":    26000,
	}
	for id, amount := range costs {
		if err := st.SetCost(ctx, id, amount); err != nil {
			return err
		}
	}

	return st.SetDetail(ctx, catalog.ProductDetail{
		ProductID:      "prod-keripik",
		Weight:         250,
		WeightUnit:     "gram",
		PackagingCost:  1000,
		ProcessingCost: 2000,
		OtherCosts:     500,
		MinStock:       20,
	})
}

func seedPayroll(ctx context.Context, st *store.Store, today time.Time) error {
	employees := []payroll.Employee{
		{
			ID:             "emp-budi",
			Name:           "Budi Santoso",
			Position:       "Kepala Dapur",
			EmploymentType: payroll.EmploymentFullTime,
			BaseSalary:     2500000,
			Allowances:     200000,
			Deductions:     50000,
			PaymentStatus:  payroll.PaymentPaid,
		},
		{
			ID:             "emp-sari",
			Name:           "Sari Lestari",
			Position:       "Kasir",
			EmploymentType: payroll.EmploymentPartTime,
			HourlyRate:     15000,
			PaymentStatus:  payroll.PaymentPaid,
		},
	}
	for _, e := range employees {
		if err := st.SaveEmployee(ctx, e); err != nil {
			return err
		}
	}

	return st.SaveWorkRecord(ctx, payroll.WorkRecord{
		ID:          "wr-1",
		EmployeeID:  "emp-sari",
		Date:        today.Format(shared.DayLayout),
		Hours:       6,
		HourlyRate:  15000,
		Description: "Shift pagi",
	})
}

func seedAssets(ctx context.Context, st *store.Store, today time.Time) error {
	purchase := today.AddDate(-1, 0, 0).Format(shared.DayLayout)
	list := []assets.Asset{
		{
			ID:                 "asset-etalase",
			Name:               "Etalase Kaca",
			Category:           "Peralatan Toko",
			PurchaseDate:       purchase,
			PurchasePrice:      3000000,
			UsefulLife:         5,
			SalvageValue:       500000,
			DepreciationMethod: assets.MethodStraightLine,
		},
		{
			ID:                 "asset-motor",
			Name:               "Motor Pengantaran",
			Category:           "Kendaraan",
			PurchaseDate:       purchase,
			PurchasePrice:      18000000,
			UsefulLife:         8,
			SalvageValue:       4000000,
			DepreciationMethod: assets.MethodReducingBalance,
		},
	}
	for _, a := range list {
		if err := st.SaveAsset(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedLedger(ctx context.Context, st *store.Store, today time.Time) error {
	day := today.Format(shared.DayLayout)

	if err := st.SaveExpenseCategories(ctx, []string{"Bahan Baku", "Listrik", "Sewa"}); err != nil {
		return err
	}
	if err := st.SaveExpense(ctx, ledger.Expense{
		ID:          "exp-1",
		Category:    "Bahan Baku",
		Description: "Singkong 50kg",
		Amount:      150000,
		Date:        day,
	}); err != nil {
		return err
	}
	if err := st.SaveAccommodationCost(ctx, ledger.AccommodationCost{
		ID:          "acc-1",
		Type:        ledger.AccommodationSupplierToKitchen,
		Date:        day,
		Description: "Ambil singkong dari pasar",
		Distance:    12,
		Cost:        25000,
		Vehicle:     "Motor",
	}); err != nil {
		return err
	}
	if err := st.SaveDebt(ctx, ledger.FinancialRecord{
		ID:          "debt-1",
		Name:        "Toko Plastik Jaya",
		Amount:      200000,
		Date:        day,
		DueDate:     today.AddDate(0, 1, 0).Format(shared.DayLayout),
		Description: "Kemasan standing pouch",
		Status:      ledger.StatusUnpaid,
	}); err != nil {
		return err
	}
	if err := st.SaveReceivable(ctx, ledger.FinancialRecord{
		ID:     "recv-1",
		Name:   "Warung Bu Tini",
		Amount: 120000,
		Date:   day,
		Status: ledger.StatusPaid,
	}); err != nil {
		return err
	}
	return st.SaveSupplier(ctx, ledger.Supplier{
		ID:      "sup-1",
		Name:    "Pasar Induk Kramat Jati",
		Contact: "0812-0000-0000",
		Address: "Jakarta Timur",
		Goods:   "Singkong, cabai",
	})
}

func seedTransactions(ctx context.Context, st *store.Store, today time.Time) error {
	return st.SaveTransaction(ctx, pos.Transaction{
		ID:        "trx-seed-1",
		Timestamp: today.Format(time.RFC3339),
		Items: []pos.LineItem{
			{ProductID: "prod-keripik", Name: "Keripik Singkong", UnitPrice: 15000, Quantity: 4},
			{ProductID: "prod-sambal", Name: "Sambal Bawang", UnitPrice: 25000, Quantity: 1},
		},
		Total:      85000,
		AmountPaid: 100000,
		Change:     15000,
	})
}

func seedDistribution(ctx context.Context, st *store.Store) error {
	if err := st.SaveDistributionConfig(ctx, reports.DistributionConfig{
		BusinessPercentage:            70,
		FounderPercentage:             30,
		BusinessSavingsPercentage:     30,
		BusinessOperationalPercentage: 70,
	}); err != nil {
		return err
	}
	founders := []reports.FounderShare{
		{ID: "founder-ani", Name: "Ani", Percentage: 60},
		{ID: "founder-dewi", Name: "Dewi", Percentage: 40},
	}
	for _, f := range founders {
		if err := st.SaveFounder(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
