package shared

import "context"

// CacheInvalidator bumps derived-report caches after source records change.
// Services call it on every successful write; a nil implementation is a no-op.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}
