package store

import (
	"context"

	"github.com/warungkas/warungkas/internal/pos"
)

var _ pos.Repository = (*Store)(nil)

// Transactions returns all checkout transactions.
func (s *Store) Transactions(ctx context.Context) ([]pos.Transaction, error) {
	return listLoad[pos.Transaction](ctx, s, keyTransactions)
}

// SaveTransaction appends a completed checkout.
func (s *Store) SaveTransaction(ctx context.Context, t pos.Transaction) error {
	list, err := s.Transactions(ctx)
	if err != nil {
		return err
	}
	list = append(list, t)
	return s.saveJSON(ctx, keyTransactions, list)
}
