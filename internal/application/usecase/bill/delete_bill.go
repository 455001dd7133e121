// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// DeleteBillInput represents the input for bill deletion.
type DeleteBillInput struct {
	BillID int64
}

// DeleteBillUseCase handles bill deletion logic. Deleting a recurring
// template leaves its generated occurrences in place; occurrences keep
// their back-reference for lookup only.
type DeleteBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(billRepo adapter.BillRepository) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill deletion.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) error {
	if removed := uc.billRepo.Delete(input.BillID); !removed {
		return domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			fmt.Sprintf("bill %d not found", input.BillID),
			domainerror.ErrBillNotFound,
		)
	}

	if err := uc.billRepo.Save(ctx); err != nil {
		return fmt.Errorf("failed to save bill collection: %w", err)
	}
	return nil
}
