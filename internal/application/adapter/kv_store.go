// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KeyValueStore is the opaque persistence backend: a plain string-key to
// string-value map. The bill and expense collections are each serialized
// whole into a single key; the backend owns nothing beyond get/set.
type KeyValueStore interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any prior content.
	Set(ctx context.Context, key string, value string) error
}
