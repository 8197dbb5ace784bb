package reports

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkas/warungkas/internal/shared"
)

type countingRepo struct {
	snapshot      Snapshot
	snapshotCalls int
	config        DistributionConfig
	founders      map[string]FounderShare
}

func newCountingRepo(s Snapshot) *countingRepo {
	return &countingRepo{snapshot: s, founders: make(map[string]FounderShare)}
}

func (r *countingRepo) Snapshot(ctx context.Context) (Snapshot, error) {
	r.snapshotCalls++
	return r.snapshot, nil
}

func (r *countingRepo) DistributionConfig(ctx context.Context) (DistributionConfig, error) {
	return r.config, nil
}

func (r *countingRepo) SaveDistributionConfig(ctx context.Context, cfg DistributionConfig) error {
	r.config = cfg
	return nil
}

func (r *countingRepo) Founders(ctx context.Context) ([]FounderShare, error) {
	founders := make([]FounderShare, 0, len(r.founders))
	for _, f := range r.founders {
		founders = append(founders, f)
	}
	return founders, nil
}

func (r *countingRepo) SaveFounder(ctx context.Context, f FounderShare) error {
	r.founders[f.ID] = f
	return nil
}

func (r *countingRepo) DeleteFounder(ctx context.Context, id string) error {
	delete(r.founders, id)
	return nil
}

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(repo, NewCache(client, time.Minute))
}

func TestServiceDailyCachesReport(t *testing.T) {
	repo := newCountingRepo(salesSnapshot())
	svc := newTestService(t, repo)
	ctx := context.Background()
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	first, err := svc.Daily(ctx, day)
	require.NoError(t, err)
	second, err := svc.Daily(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.snapshotCalls)
	assert.Equal(t, first.Totals, second.Totals)
	assert.Equal(t, "2025-07-01", first.Period)
}

func TestServiceDistinctWindowsBuildSeparately(t *testing.T) {
	repo := newCountingRepo(salesSnapshot())
	svc := newTestService(t, repo)
	ctx := context.Background()

	_, err := svc.Monthly(ctx, 2025, time.July)
	require.NoError(t, err)
	_, err = svc.Yearly(ctx, 2025)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.snapshotCalls)
}

func TestServiceSaveConfigInvalidatesCache(t *testing.T) {
	repo := newCountingRepo(salesSnapshot())
	svc := newTestService(t, repo)
	ctx := context.Background()
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Daily(ctx, day)
	require.NoError(t, err)
	require.Equal(t, 1, repo.snapshotCalls)

	cfg := DistributionConfig{
		BusinessPercentage:            70,
		FounderPercentage:             30,
		BusinessSavingsPercentage:     30,
		BusinessOperationalPercentage: 70,
	}
	require.NoError(t, svc.SaveConfig(ctx, cfg))

	_, err = svc.Daily(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.snapshotCalls)
}

func TestServiceSaveConfigRejectsOutOfRange(t *testing.T) {
	repo := newCountingRepo(salesSnapshot())
	svc := newTestService(t, repo)

	err := svc.SaveConfig(context.Background(), DistributionConfig{BusinessPercentage: 120})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestServiceAddFounderMintsID(t *testing.T) {
	repo := newCountingRepo(salesSnapshot())
	svc := newTestService(t, repo)
	ctx := context.Background()

	founder, err := svc.AddFounder(ctx, FounderShare{Name: "Ani", Percentage: 50})
	require.NoError(t, err)
	assert.NotEmpty(t, founder.ID)

	_, err = svc.AddFounder(ctx, FounderShare{Percentage: 50})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestServiceFounderListNormalizes(t *testing.T) {
	repo := newCountingRepo(salesSnapshot())
	svc := newTestService(t, repo)
	ctx := context.Background()

	_, err := svc.AddFounder(ctx, FounderShare{Name: "Ani", Percentage: 30})
	require.NoError(t, err)
	_, err = svc.AddFounder(ctx, FounderShare{Name: "Sari", Percentage: 90})
	require.NoError(t, err)

	allocations, err := svc.FounderList(ctx)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	var sum float64
	for _, a := range allocations {
		sum += a.Percentage
	}
	assert.InDelta(t, 100, sum, 0.001)
}
