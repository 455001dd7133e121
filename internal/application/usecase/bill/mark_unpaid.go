// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// MarkUnpaidInput represents the input for marking a bill unpaid.
type MarkUnpaidInput struct {
	BillID int64
}

// MarkUnpaidOutput represents the output of marking a bill unpaid.
type MarkUnpaidOutput struct {
	Bill *BillOutput
}

// MarkUnpaidUseCase clears the paid flag and both payment fields together.
type MarkUnpaidUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewMarkUnpaidUseCase creates a new MarkUnpaidUseCase instance.
func NewMarkUnpaidUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *MarkUnpaidUseCase {
	return &MarkUnpaidUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the state change.
func (uc *MarkUnpaidUseCase) Execute(ctx context.Context, input MarkUnpaidInput) (*MarkUnpaidOutput, error) {
	bill, found := uc.billRepo.FindByID(input.BillID)
	if !found {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			fmt.Sprintf("bill %d not found", input.BillID),
			domainerror.ErrBillNotFound,
		)
	}

	now := uc.clock.Now()
	bill.MarkUnpaid(now)

	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &MarkUnpaidOutput{Bill: toBillOutput(bill, now)}, nil
}
