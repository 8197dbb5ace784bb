// Package store persists every collection as a JSON document in Redis. The
// data set is a handful of small lists, so each collection is read and
// written whole; there is no per-record keying.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/warungkas/warungkas/internal/shared"
)

const (
	keyProducts           = "kas:products"
	keyProductCosts       = "kas:product_costs"
	keyProductDetails     = "kas:product_details"
	keyTransactions       = "kas:transactions"
	keyEmployees          = "kas:employees"
	keyWorkRecords        = "kas:work_records"
	keyAssets             = "kas:assets"
	keyExpenses           = "kas:expenses"
	keyExpenseCategories  = "kas:expense_categories"
	keyAccommodationCosts = "kas:accommodation_costs"
	keyDebts              = "kas:debts"
	keyReceivables        = "kas:receivables"
	keySuppliers          = "kas:suppliers"
	keyFounders           = "kas:founders"
	keyDistributionConfig = "kas:distribution_config"
)

var collectionKeys = []string{
	keyProducts,
	keyProductCosts,
	keyProductDetails,
	keyTransactions,
	keyEmployees,
	keyWorkRecords,
	keyAssets,
	keyExpenses,
	keyExpenseCategories,
	keyAccommodationCosts,
	keyDebts,
	keyReceivables,
	keySuppliers,
	keyFounders,
	keyDistributionConfig,
}

// Store implements every domain repository on top of one Redis client.
type Store struct {
	client *redis.Client
}

// New constructs a store.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// loadJSON unmarshals the document at key into dest. A missing key leaves
// dest at its zero value.
func (s *Store) loadJSON(ctx context.Context, key string, dest interface{}) error {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) saveJSON(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func listLoad[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	var list []T
	if err := s.loadJSON(ctx, key, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// listUpsert replaces the element matched by same, or appends when no
// element matches.
func listUpsert[T any](ctx context.Context, s *Store, key string, item T, same func(T) bool) error {
	list, err := listLoad[T](ctx, s, key)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if same(list[i]) {
			list[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, item)
	}
	return s.saveJSON(ctx, key, list)
}

// listDelete removes the elements matched by match. It reports
// shared.ErrNotFound when nothing matched.
func listDelete[T any](ctx context.Context, s *Store, key string, match func(T) bool) error {
	list, err := listLoad[T](ctx, s, key)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, item := range list {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(list) {
		return shared.ErrNotFound
	}
	return s.saveJSON(ctx, key, kept)
}

// Reset deletes every collection. Used by the admin full-reset endpoint.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.client.Del(ctx, collectionKeys...).Err(); err != nil {
		return fmt.Errorf("reset collections: %w", err)
	}
	return nil
}

// Export dumps every collection as raw JSON, keyed by collection name.
// Missing collections are omitted.
func (s *Store) Export(ctx context.Context) (map[string]json.RawMessage, error) {
	dump := make(map[string]json.RawMessage, len(collectionKeys))
	for _, key := range collectionKeys {
		payload, err := s.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", key, err)
		}
		if !json.Valid(payload) {
			return nil, fmt.Errorf("export %s: stored document is not valid json", key)
		}
		dump[key] = json.RawMessage(payload)
	}
	return dump, nil
}

// Import restores a dump produced by Export. Unknown collection names are
// rejected; known collections are replaced wholesale.
func (s *Store) Import(ctx context.Context, dump map[string]json.RawMessage) error {
	known := make(map[string]bool, len(collectionKeys))
	for _, key := range collectionKeys {
		known[key] = true
	}
	for key, payload := range dump {
		if !known[key] {
			return fmt.Errorf("%w: koleksi %s tidak dikenal", shared.ErrValidation, key)
		}
		if !json.Valid(payload) {
			return fmt.Errorf("%w: koleksi %s bukan json valid", shared.ErrValidation, key)
		}
	}
	for key, payload := range dump {
		if err := s.client.Set(ctx, key, []byte(payload), 0).Err(); err != nil {
			return fmt.Errorf("import %s: %w", key, err)
		}
	}
	return nil
}
