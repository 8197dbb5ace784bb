package assets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warungkas/warungkas/internal/shared"
)

// Service exposes asset operations over the repository.
type Service struct {
	repo  Repository
	cache shared.CacheInvalidator
}

// NewService constructs an asset service. cache may be nil.
func NewService(repo Repository, cache shared.CacheInvalidator) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns all assets with depreciation figures as of the given date.
func (s *Service) List(ctx context.Context, asOf time.Time) ([]AssetView, error) {
	records, err := s.repo.Assets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	views := make([]AssetView, 0, len(records))
	for _, a := range records {
		fig := Depreciate(a, asOf)
		views = append(views, AssetView{
			Asset:                   a,
			AnnualDepreciation:      fig.Annual,
			AccumulatedDepreciation: fig.Total,
			RemainingValue:          fig.Remaining,
		})
	}
	return views, nil
}

// Create stores a new asset, minting its id.
func (s *Service) Create(ctx context.Context, a Asset) (Asset, error) {
	if err := validateAsset(a); err != nil {
		return Asset{}, err
	}
	a.ID = uuid.NewString()
	if err := s.repo.SaveAsset(ctx, a); err != nil {
		return Asset{}, fmt.Errorf("save asset: %w", err)
	}
	s.bump(ctx)
	return a, nil
}

// Update replaces an existing asset.
func (s *Service) Update(ctx context.Context, a Asset) (Asset, error) {
	if err := validateAsset(a); err != nil {
		return Asset{}, err
	}
	records, err := s.repo.Assets(ctx)
	if err != nil {
		return Asset{}, fmt.Errorf("load assets: %w", err)
	}
	found := false
	for _, existing := range records {
		if existing.ID == a.ID {
			found = true
			break
		}
	}
	if !found {
		return Asset{}, shared.ErrNotFound
	}
	if err := s.repo.SaveAsset(ctx, a); err != nil {
		return Asset{}, fmt.Errorf("save asset: %w", err)
	}
	s.bump(ctx)
	return a, nil
}

// Delete removes an asset.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteAsset(ctx, id); err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	s.bump(ctx)
	return nil
}

func validateAsset(a Asset) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: nama aset wajib diisi", shared.ErrValidation)
	}
	if a.UsefulLife <= 0 {
		return fmt.Errorf("%w: umur ekonomis harus lebih dari nol", shared.ErrValidation)
	}
	if a.PurchasePrice < 0 || a.SalvageValue < 0 {
		return fmt.Errorf("%w: nilai aset tidak boleh negatif", shared.ErrValidation)
	}
	if _, ok := shared.ParseRecordDate(a.PurchaseDate); !ok {
		return fmt.Errorf("%w: tanggal pembelian tidak valid", shared.ErrValidation)
	}
	switch a.DepreciationMethod {
	case MethodStraightLine, MethodReducingBalance:
		return nil
	default:
		return fmt.Errorf("%w: metode penyusutan tidak dikenal", shared.ErrValidation)
	}
}

func (s *Service) bump(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Bump(ctx)
	}
}
