// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// BulkDeleteBillsInput represents the input for bulk bill deletion.
type BulkDeleteBillsInput struct {
	BillIDs []int64
}

// BulkDeleteBillsOutput represents the output of bulk bill deletion.
type BulkDeleteBillsOutput struct {
	DeletedCount int
}

// BulkDeleteBillsUseCase handles bulk bill deletion logic. The operation
// is all-or-nothing: every ID is verified before any bill is removed,
// and the whole batch persists in one save.
type BulkDeleteBillsUseCase struct {
	billRepo adapter.BillRepository
}

// NewBulkDeleteBillsUseCase creates a new BulkDeleteBillsUseCase instance.
func NewBulkDeleteBillsUseCase(billRepo adapter.BillRepository) *BulkDeleteBillsUseCase {
	return &BulkDeleteBillsUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bulk bill deletion.
func (uc *BulkDeleteBillsUseCase) Execute(ctx context.Context, input BulkDeleteBillsInput) (*BulkDeleteBillsOutput, error) {
	if len(input.BillIDs) == 0 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeEmptyBillIDs,
			"bill IDs list cannot be empty",
			domainerror.ErrEmptyBillIDs,
		)
	}

	if _, err := resolveBills(uc.billRepo, input.BillIDs); err != nil {
		return nil, err
	}

	// Duplicate IDs pass validation but only remove a bill once.
	deleted := 0
	for _, id := range input.BillIDs {
		if uc.billRepo.Delete(id) {
			deleted++
		}
	}

	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &BulkDeleteBillsOutput{DeletedCount: deleted}, nil
}
