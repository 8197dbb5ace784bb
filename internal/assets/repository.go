package assets

import "context"

// Repository abstracts persistence of asset records.
type Repository interface {
	Assets(ctx context.Context) ([]Asset, error)
	SaveAsset(ctx context.Context, a Asset) error
	DeleteAsset(ctx context.Context, id string) error
}
