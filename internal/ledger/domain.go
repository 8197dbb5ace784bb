package ledger

// Accommodation cost legs.
const (
	AccommodationSupplierToKitchen = "supplier_to_kitchen"
	AccommodationKitchenToCustomer = "kitchen_to_customer"
)

// Financial record statuses.
const (
	StatusPaid   = "paid"
	StatusUnpaid = "unpaid"
)

// Expense is an operating cost entry at day granularity. Category is free
// text drawn from the mutable category list.
type Expense struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// AccommodationCost records a transport leg between supplier, kitchen, and
// customer.
type AccommodationCost struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Distance    float64 `json:"distance"`
	Cost        float64 `json:"cost"`
	Vehicle     string  `json:"vehicle"`
}

// FinancialRecord is a debt or receivable entry. The two differ only in how
// a paid record affects net profit: paid debts subtract, collected
// receivables add.
type FinancialRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	DueDate     string  `json:"dueDate"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

// Supplier is a contact-list entry for purchasing.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Goods   string `json:"goods"`
}
