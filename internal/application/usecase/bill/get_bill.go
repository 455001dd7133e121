// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// GetBillInput represents the input for fetching a single bill.
type GetBillInput struct {
	BillID int64
}

// GetBillOutput represents the output of fetching a single bill.
type GetBillOutput struct {
	Bill *BillOutput
}

// GetBillUseCase handles single-bill retrieval.
type GetBillUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewGetBillUseCase creates a new GetBillUseCase instance.
func NewGetBillUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *GetBillUseCase {
	return &GetBillUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute fetches the bill.
func (uc *GetBillUseCase) Execute(_ context.Context, input GetBillInput) (*GetBillOutput, error) {
	bill, found := uc.billRepo.FindByID(input.BillID)
	if !found {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			fmt.Sprintf("bill %d not found", input.BillID),
			domainerror.ErrBillNotFound,
		)
	}
	return &GetBillOutput{Bill: toBillOutput(bill, uc.clock.Now())}, nil
}
