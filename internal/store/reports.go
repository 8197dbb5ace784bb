package store

import (
	"context"

	"github.com/warungkas/warungkas/internal/reports"
)

var _ reports.Repository = (*Store)(nil)

// Snapshot loads every collection a report derives from. The whole data set
// is a few small lists, so fifteen sequential reads are cheap; report builds
// behind the cache make this rare anyway.
func (s *Store) Snapshot(ctx context.Context) (reports.Snapshot, error) {
	var (
		snapshot reports.Snapshot
		err      error
	)
	if snapshot.Transactions, err = s.Transactions(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.ProductCosts, err = s.Costs(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.Expenses, err = s.Expenses(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.AccommodationCosts, err = s.AccommodationCosts(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.Assets, err = s.Assets(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.Employees, err = s.Employees(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.WorkRecords, err = s.WorkRecords(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.Debts, err = s.Debts(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.Receivables, err = s.Receivables(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.Founders, err = s.Founders(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	if snapshot.DistributionConfig, err = s.DistributionConfig(ctx); err != nil {
		return reports.Snapshot{}, err
	}
	return snapshot, nil
}

// DistributionConfig returns the stored profit split settings.
func (s *Store) DistributionConfig(ctx context.Context) (reports.DistributionConfig, error) {
	var cfg reports.DistributionConfig
	if err := s.loadJSON(ctx, keyDistributionConfig, &cfg); err != nil {
		return reports.DistributionConfig{}, err
	}
	return cfg, nil
}

// SaveDistributionConfig replaces the profit split settings.
func (s *Store) SaveDistributionConfig(ctx context.Context, cfg reports.DistributionConfig) error {
	return s.saveJSON(ctx, keyDistributionConfig, cfg)
}

// Founders returns all founder shares.
func (s *Store) Founders(ctx context.Context) ([]reports.FounderShare, error) {
	return listLoad[reports.FounderShare](ctx, s, keyFounders)
}

// SaveFounder inserts or replaces a founder share by id.
func (s *Store) SaveFounder(ctx context.Context, f reports.FounderShare) error {
	return listUpsert(ctx, s, keyFounders, f, func(other reports.FounderShare) bool {
		return other.ID == f.ID
	})
}

// DeleteFounder removes a founder share by id.
func (s *Store) DeleteFounder(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyFounders, func(f reports.FounderShare) bool {
		return f.ID == id
	})
}
