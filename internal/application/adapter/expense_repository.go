// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/resolvpay/backend/internal/domain/entity"
)

// ExpenseRepository owns the ad-hoc expense ledger kept on its own
// storage key, separate from the bill collection.
type ExpenseRepository interface {
	// Load reads the persisted ledger from storage; absent key yields an
	// empty ledger.
	Load(ctx context.Context) error

	// Save serializes the entire ledger to storage.
	Save(ctx context.Context) error

	// NextID returns the next identifier in the sequence and advances it.
	NextID() int64

	// All returns the ledger in insertion order.
	All() []*entity.Expense

	// Insert appends an expense to the ledger.
	Insert(expense *entity.Expense)
}
