package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/warungkas/warungkas/internal/shared"
)

// Service builds period reports over repository snapshots, caching the
// serialized results in Redis. Identical inputs always produce identical
// reports; the reference date is an explicit parameter so nothing inside
// the build reads the wall clock.
type Service struct {
	repo  Repository
	cache *Cache
	group singleflight.Group
}

// NewService constructs a report service. cache may be nil, which disables
// caching.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Daily builds the report for the day containing date.
func (s *Service) Daily(ctx context.Context, date time.Time) (Report, error) {
	return s.build(ctx, shared.DailyWindow(date))
}

// Monthly builds the report for a calendar month.
func (s *Service) Monthly(ctx context.Context, year int, month time.Month) (Report, error) {
	return s.build(ctx, shared.MonthlyWindow(year, month))
}

// Yearly builds the report for a calendar year.
func (s *Service) Yearly(ctx context.Context, year int) (Report, error) {
	return s.build(ctx, shared.YearlyWindow(year))
}

func (s *Service) build(ctx context.Context, w shared.Window) (Report, error) {
	if s == nil || s.repo == nil {
		return Report{}, errors.New("reports: service not initialised")
	}

	loader := func(ctx context.Context) (interface{}, error) {
		snapshot, err := s.repo.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		return Build(snapshot, w), nil
	}

	if s.cache == nil {
		value, err := loader(ctx)
		if err != nil {
			return Report{}, err
		}
		return value.(Report), nil
	}

	key, err := s.cache.BuildKey(ctx, keyReport(string(w.Kind), w.Key()))
	if err != nil {
		return Report{}, err
	}

	// Collapse concurrent builds of the same report into one snapshot load.
	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		var report Report
		if err := s.cache.FetchJSON(ctx, key, &report, loader); err != nil {
			return Report{}, err
		}
		return report, nil
	})
	if err != nil {
		return Report{}, err
	}
	return value.(Report), nil
}

// Config returns the stored profit distribution configuration.
func (s *Service) Config(ctx context.Context) (DistributionConfig, error) {
	cfg, err := s.repo.DistributionConfig(ctx)
	if err != nil {
		return DistributionConfig{}, fmt.Errorf("load distribution config: %w", err)
	}
	return cfg, nil
}

// SaveConfig stores the profit distribution configuration.
func (s *Service) SaveConfig(ctx context.Context, cfg DistributionConfig) error {
	for _, pct := range []float64{
		cfg.BusinessPercentage,
		cfg.FounderPercentage,
		cfg.BusinessSavingsPercentage,
		cfg.BusinessOperationalPercentage,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: persentase harus antara 0 dan 100", shared.ErrValidation)
		}
	}
	if err := s.repo.SaveDistributionConfig(ctx, cfg); err != nil {
		return fmt.Errorf("save distribution config: %w", err)
	}
	_ = s.cache.Bump(ctx)
	return nil
}

// FounderList returns stored founders together with their normalised
// percentages.
func (s *Service) FounderList(ctx context.Context) ([]FounderAllocation, error) {
	founders, err := s.repo.Founders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load founders: %w", err)
	}
	return NormalizeFounders(founders), nil
}

// AddFounder stores a founder share, minting its id.
func (s *Service) AddFounder(ctx context.Context, f FounderShare) (FounderShare, error) {
	if f.Name == "" {
		return FounderShare{}, fmt.Errorf("%w: nama pendiri wajib diisi", shared.ErrValidation)
	}
	if f.Percentage < 0 {
		return FounderShare{}, fmt.Errorf("%w: persentase tidak boleh negatif", shared.ErrValidation)
	}
	f.ID = uuid.NewString()
	if err := s.repo.SaveFounder(ctx, f); err != nil {
		return FounderShare{}, fmt.Errorf("save founder: %w", err)
	}
	_ = s.cache.Bump(ctx)
	return f, nil
}

// DeleteFounder removes a founder share.
func (s *Service) DeleteFounder(ctx context.Context, id string) error {
	if err := s.repo.DeleteFounder(ctx, id); err != nil {
		return fmt.Errorf("delete founder: %w", err)
	}
	_ = s.cache.Bump(ctx)
	return nil
}
