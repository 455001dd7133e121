// Package expense contains use cases for the ad-hoc expense ledger.
package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// AddExpenseInput carries the fields for a new expense entry.
type AddExpenseInput struct {
	Amount      *decimal.Decimal
	Category    string
	Date        *time.Time
	Description string
}

// AddExpenseOutput is the stored expense.
type AddExpenseOutput struct {
	ID          int64
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// AddExpenseUseCase appends an entry to the expense ledger.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *AddExpenseUseCase {
	return &AddExpenseUseCase{expenseRepo: expenseRepo, clock: clock}
}

func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if input.Amount == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"amount is required",
			domainerror.ErrMissingExpenseFields,
		)
	}
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	created := entity.NewExpense(uc.expenseRepo.NextID(), *input.Amount, input.Category, input.Description, date)
	uc.expenseRepo.Insert(created)
	if err := uc.expenseRepo.Save(ctx); err != nil {
		return nil, err
	}

	return &AddExpenseOutput{
		ID:          created.ID,
		Amount:      created.Amount,
		Category:    created.Category,
		Date:        created.Date,
		Description: created.Description,
	}, nil
}
