package pos

import "context"

// Repository abstracts persistence of checkout transactions.
type Repository interface {
	Transactions(ctx context.Context) ([]Transaction, error)
	SaveTransaction(ctx context.Context, t Transaction) error
}
