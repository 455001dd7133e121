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

// PaymentHistoryInput represents the input for fetching a bill's payment view.
type PaymentHistoryInput struct {
	BillID int64
}

// PaymentHistoryOutput represents a bill's payment view.
type PaymentHistoryOutput struct {
	BillID        int64
	BillName      string
	PaidOn        *time.Time
	Amount        *decimal.Decimal
	PaymentMethod string
	Status        string // "completed" or "pending"
}

// PaymentHistoryUseCase reports the payment info recorded on a bill.
type PaymentHistoryUseCase struct {
	billRepo adapter.BillRepository
}

// NewPaymentHistoryUseCase creates a new PaymentHistoryUseCase instance.
func NewPaymentHistoryUseCase(billRepo adapter.BillRepository) *PaymentHistoryUseCase {
	return &PaymentHistoryUseCase{
		billRepo: billRepo,
	}
}

// Execute fetches the payment view.
func (uc *PaymentHistoryUseCase) Execute(_ context.Context, input PaymentHistoryInput) (*PaymentHistoryOutput, error) {
	bill, found := uc.billRepo.FindByID(input.BillID)
	if !found {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			fmt.Sprintf("bill %d not found", input.BillID),
			domainerror.ErrBillNotFound,
		)
	}

	status := "pending"
	if bill.Paid {
		status = "completed"
	}

	return &PaymentHistoryOutput{
		BillID:        bill.ID,
		BillName:      bill.Name,
		PaidOn:        bill.DatePaid,
		Amount:        bill.AmountPaid,
		PaymentMethod: bill.PaymentMethod,
		Status:        status,
	}, nil
}
