package dto

import (
	"github.com/resolvpay/backend/internal/application/usecase/expense"
)

// AddExpenseRequest represents the request body for logging an expense.
type AddExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Category    string   `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description string   `json:"description,omitempty" binding:"omitempty,max=500"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          int64  `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ExpenseListResponse represents the expense ledger with its total.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ToExpenseResponse converts an expense output to its API payload.
func ToExpenseResponse(o expense.AddExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:          o.ID,
		Amount:      o.Amount.String(),
		Category:    o.Category,
		Date:        o.Date.Format("2006-01-02"),
		Description: o.Description,
	}
}

// ToExpenseListResponse converts the ledger output to its API payload.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	resp := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(output.Expenses)),
		Total:    output.Total.String(),
	}
	for _, e := range output.Expenses {
		resp.Expenses = append(resp.Expenses, ToExpenseResponse(e))
	}
	return resp
}
