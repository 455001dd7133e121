// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// BulkUpdateBillsInput represents the input for bulk bill update. The
// same updates are applied to every listed bill.
type BulkUpdateBillsInput struct {
	BillIDs []int64
	Updates BillUpdates
}

// BulkUpdateBillsOutput represents the output of bulk bill update.
type BulkUpdateBillsOutput struct {
	Updated []*BillOutput
}

// BulkUpdateBillsUseCase handles bulk bill update logic. The operation
// is all-or-nothing: every ID is verified and the updates validated
// before any bill is touched, and the whole batch persists in one save.
type BulkUpdateBillsUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewBulkUpdateBillsUseCase creates a new BulkUpdateBillsUseCase instance.
func NewBulkUpdateBillsUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *BulkUpdateBillsUseCase {
	return &BulkUpdateBillsUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the bulk bill update.
func (uc *BulkUpdateBillsUseCase) Execute(ctx context.Context, input BulkUpdateBillsInput) (*BulkUpdateBillsOutput, error) {
	if len(input.BillIDs) == 0 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeEmptyBillIDs,
			"bill IDs list cannot be empty",
			domainerror.ErrEmptyBillIDs,
		)
	}

	if err := input.Updates.Validate(); err != nil {
		return nil, err
	}

	bills, err := resolveBills(uc.billRepo, input.BillIDs)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	updated := make([]*BillOutput, len(bills))
	for i, bill := range bills {
		input.Updates.applyTo(bill)
		bill.UpdatedAt = now
		updated[i] = toBillOutput(bill, now)
	}

	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &BulkUpdateBillsOutput{Updated: updated}, nil
}

// resolveBills resolves every ID up front so an unknown ID fails the
// whole batch before any mutation.
func resolveBills(repo adapter.BillRepository, ids []int64) ([]*entity.Bill, error) {
	bills := make([]*entity.Bill, 0, len(ids))
	for _, id := range ids {
		bill, found := repo.FindByID(id)
		if !found {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillIDsNotFound,
				fmt.Sprintf("bill %d not found", id),
				domainerror.ErrBillIDsNotFound,
			)
		}
		bills = append(bills, bill)
	}
	return bills, nil
}
