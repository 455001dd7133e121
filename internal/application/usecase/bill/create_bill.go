// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// CreateBillInput represents the input for bill creation. Name, Amount,
// and DueDate are required; nil pointers signal absent values.
type CreateBillInput struct {
	Name          string
	Amount        *decimal.Decimal
	DueDate       *time.Time
	Category      string
	Frequency     entity.BillFrequency
	Autopay       bool
	Notes         string
	PaymentMethod string
}

// CreateBillOutput represents the output of bill creation.
type CreateBillOutput struct {
	Bill *BillOutput
}

// CreateBillUseCase handles bill creation logic.
type CreateBillUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the bill creation.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	if input.Name == "" || input.Amount == nil || input.DueDate == nil {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeMissingBillFields,
			"name, amount, and dueDate are required",
			domainerror.ErrMissingBillFields,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillAmount,
			"amount must not be negative",
			domainerror.ErrInvalidBillAmount,
		)
	}

	if input.Frequency != "" && !entity.IsValidFrequency(input.Frequency) {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillFrequency,
			fmt.Sprintf("unknown frequency %q", input.Frequency),
			domainerror.ErrInvalidBillFrequency,
		)
	}

	bill := entity.NewBill(
		uc.billRepo.NextID(),
		input.Name,
		*input.Amount,
		*input.DueDate,
		input.Category,
		input.Frequency,
		input.Autopay,
		input.Notes,
		input.PaymentMethod,
	)
	now := uc.clock.Now()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	uc.billRepo.Insert(bill)
	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &CreateBillOutput{Bill: toBillOutput(bill, now)}, nil
}
