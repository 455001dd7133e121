// Package model defines the stored/interchange record shapes.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/domain/entity"
)

// ExpenseRecord is the JSON shape of one ledger expense.
type ExpenseRecord struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// FromExpense converts an expense entity to its record form.
func FromExpense(e *entity.Expense) ExpenseRecord {
	return ExpenseRecord{
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date.Format(DateLayout),
		Description: e.Description,
	}
}

// ToExpense converts a record back into an expense entity.
func (r ExpenseRecord) ToExpense() (*entity.Expense, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Expense{
		ID:          r.ID,
		Amount:      r.Amount,
		Category:    r.Category,
		Date:        date,
		Description: r.Description,
	}, nil
}
