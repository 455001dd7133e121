// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// MarkPaidInput represents the input for marking a bill paid. AmountPaid
// and DatePaid are optional; they default to the bill's amount and the
// current time.
type MarkPaidInput struct {
	BillID     int64
	AmountPaid *decimal.Decimal
	DatePaid   *time.Time
}

// MarkPaidOutput represents the output of marking a bill paid.
type MarkPaidOutput struct {
	Bill *BillOutput
}

// MarkPaidUseCase handles the mark-paid state change. Re-marking an
// already-paid bill is allowed and refreshes the payment fields.
type MarkPaidUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the state change.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	bill, found := uc.billRepo.FindByID(input.BillID)
	if !found {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			fmt.Sprintf("bill %d not found", input.BillID),
			domainerror.ErrBillNotFound,
		)
	}

	now := uc.clock.Now()
	bill.MarkPaid(input.AmountPaid, input.DatePaid, now)

	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &MarkPaidOutput{Bill: toBillOutput(bill, now)}, nil
}
