package pos

// LineItem is a single cart line captured at checkout. UnitPrice is a
// snapshot of the product price at sale time.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Transaction is a completed checkout. Transactions are immutable; they are
// removed only by a full data reset.
type Transaction struct {
	ID              string     `json:"id"`
	Timestamp       string     `json:"timestamp"`
	Items           []LineItem `json:"items"`
	DiscountPercent float64    `json:"discountPercent"`
	Total           float64    `json:"total"`
	AmountPaid      float64    `json:"amountPaid"`
	Change          float64    `json:"change"`
}

// ItemCount returns the number of units across all lines.
func (t Transaction) ItemCount() int {
	var count int
	for _, item := range t.Items {
		count += item.Quantity
	}
	return count
}
