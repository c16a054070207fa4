// Package slot stores named JSON snapshots in a key-value backend.
package slot

import "context"

// Repository maps fixed slot names to opaque serialized values.
// Get returns domain.ErrNotFound when the slot has never been written or was deleted.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes every slot or none of them.
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
}
