package reports

import "context"

// Repository supplies snapshots and owns the profit distribution settings.
type Repository interface {
	// Snapshot loads an immutable copy of every source collection.
	Snapshot(ctx context.Context) (Snapshot, error)

	DistributionConfig(ctx context.Context) (DistributionConfig, error)
	SaveDistributionConfig(ctx context.Context, cfg DistributionConfig) error

	Founders(ctx context.Context) ([]FounderShare, error)
	SaveFounder(ctx context.Context, f FounderShare) error
	DeleteFounder(ctx context.Context, id string) error
}
