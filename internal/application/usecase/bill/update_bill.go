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

// BillUpdates is the whitelist of fields an update may touch. Only
// non-nil fields are applied. ID, CreatedAt, and RecurringParentID are
// immutable after creation and deliberately absent here.
type BillUpdates struct {
	Name          *string
	Amount        *decimal.Decimal
	DueDate       *time.Time
	Category      *string
	Frequency     *entity.BillFrequency
	Autopay       *bool
	Notes         *string
	PaymentMethod *string
	AmountPaid    *decimal.Decimal
	DatePaid      *time.Time
}

// Validate checks the supplied fields without touching any bill.
func (u BillUpdates) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return domainerror.NewBillError(
			domainerror.ErrCodeMissingBillFields,
			"name must not be empty",
			domainerror.ErrMissingBillFields,
		)
	}
	if u.Amount != nil && u.Amount.IsNegative() {
		return domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillAmount,
			"amount must not be negative",
			domainerror.ErrInvalidBillAmount,
		)
	}
	if u.Frequency != nil && !entity.IsValidFrequency(*u.Frequency) {
		return domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillFrequency,
			fmt.Sprintf("unknown frequency %q", *u.Frequency),
			domainerror.ErrInvalidBillFrequency,
		)
	}
	return nil
}

// applyTo copies the supplied fields onto the bill. Callers must
// Validate first.
func (u BillUpdates) applyTo(bill *entity.Bill) {
	if u.Name != nil {
		bill.Name = *u.Name
	}
	if u.Amount != nil {
		bill.Amount = *u.Amount
	}
	if u.DueDate != nil {
		bill.DueDate = entity.NormalizeDate(*u.DueDate)
	}
	if u.Category != nil {
		bill.Category = *u.Category
	}
	if u.Frequency != nil {
		bill.Frequency = *u.Frequency
	}
	if u.Autopay != nil {
		bill.Autopay = *u.Autopay
	}
	if u.Notes != nil {
		bill.Notes = *u.Notes
	}
	if u.PaymentMethod != nil {
		bill.PaymentMethod = *u.PaymentMethod
	}
	if u.AmountPaid != nil {
		amountPaid := *u.AmountPaid
		bill.AmountPaid = &amountPaid
	}
	if u.DatePaid != nil {
		datePaid := *u.DatePaid
		bill.DatePaid = &datePaid
	}
}

// UpdateBillInput represents the input for bill update.
type UpdateBillInput struct {
	BillID  int64
	Updates BillUpdates
}

// UpdateBillOutput represents the output of bill update.
type UpdateBillOutput struct {
	Bill *BillOutput
}

// UpdateBillUseCase handles bill update logic.
type UpdateBillUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the bill update.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	bill, found := uc.billRepo.FindByID(input.BillID)
	if !found {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			fmt.Sprintf("bill %d not found", input.BillID),
			domainerror.ErrBillNotFound,
		)
	}

	if err := input.Updates.Validate(); err != nil {
		return nil, err
	}
	input.Updates.applyTo(bill)

	now := uc.clock.Now()
	bill.UpdatedAt = now

	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &UpdateBillOutput{Bill: toBillOutput(bill, now)}, nil
}
