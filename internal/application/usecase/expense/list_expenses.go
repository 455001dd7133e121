package expense

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
)

// ListExpensesOutput is the ledger newest-first, with a running total.
type ListExpensesOutput struct {
	Expenses []AddExpenseOutput
	Total    decimal.Decimal
}

// ListExpensesUseCase returns the full expense ledger.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

func (uc *ListExpensesUseCase) Execute(_ context.Context) (*ListExpensesOutput, error) {
	expenses := uc.expenseRepo.All()
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		return expenses[i].ID > expenses[j].ID
	})

	out := &ListExpensesOutput{Expenses: make([]AddExpenseOutput, 0, len(expenses))}
	for _, e := range expenses {
		out.Expenses = append(out.Expenses, AddExpenseOutput{
			ID:          e.ID,
			Amount:      e.Amount,
			Category:    e.Category,
			Date:        e.Date,
			Description: e.Description,
		})
		out.Total = out.Total.Add(e.Amount)
	}
	return out, nil
}
