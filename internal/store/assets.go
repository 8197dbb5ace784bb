package store

import (
	"context"

	"github.com/warungkas/warungkas/internal/assets"
)

var _ assets.Repository = (*Store)(nil)

// Assets returns all fixed assets.
func (s *Store) Assets(ctx context.Context) ([]assets.Asset, error) {
	return listLoad[assets.Asset](ctx, s, keyAssets)
}

// SaveAsset inserts or replaces an asset by id.
func (s *Store) SaveAsset(ctx context.Context, a assets.Asset) error {
	return listUpsert(ctx, s, keyAssets, a, func(other assets.Asset) bool {
		return other.ID == a.ID
	})
}

// DeleteAsset removes an asset by id.
func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	return listDelete(ctx, s, keyAssets, func(a assets.Asset) bool {
		return a.ID == id
	})
}
