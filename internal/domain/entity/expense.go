// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an ad-hoc expense recorded through the chat
// assistant. Expenses live in their own ledger, separate from bills.
type Expense struct {
	ID          int64
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// NewExpense creates a new Expense entity.
func NewExpense(id int64, amount decimal.Decimal, category, description string, date time.Time) *Expense {
	if category == "" {
		category = DefaultCategory
	}
	return &Expense{
		ID:          id,
		Amount:      amount,
		Category:    category,
		Date:        NormalizeDate(date),
		Description: description,
	}
}
