// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/resolvpay/backend/internal/domain/entity"
)

// BillRepository owns the in-memory bill collection, the identifier
// sequence, and the load/save boundary to the key-value backend. It is
// the only component that touches the stored collection; use cases read
// and mutate bills exclusively through it.
type BillRepository interface {
	// Load reads the persisted collection from storage. An absent key
	// yields an empty collection. The identifier sequence is recomputed
	// as the maximum existing ID so monotonicity survives restarts.
	Load(ctx context.Context) error

	// Save serializes the entire collection to storage, overwriting
	// prior content. Called after every mutation; storage errors
	// propagate to the caller.
	Save(ctx context.Context) error

	// NextID returns the next identifier in the sequence and advances it.
	NextID() int64

	// FindByID returns the bill with the given ID, or false when absent.
	FindByID(id int64) (*entity.Bill, bool)

	// All returns the live collection in insertion order.
	All() []*entity.Bill

	// Insert appends a bill to the collection.
	Insert(bill *entity.Bill)

	// Delete removes the bill with the given ID, reporting whether it existed.
	Delete(id int64) bool

	// Count returns the number of bills in the collection.
	Count() int
}
