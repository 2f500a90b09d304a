package storage

import (
	"context"
)

// KV is the key-value contract the cart persists through. The cart is
// serialized as a JSON array under a single key, so this is all it needs.
type KV interface {
	// Get returns the stored value and whether the key existed. A missing
	// key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
