// Package dashboard contains aggregation use cases over the bill collection.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
)

// DefaultTrendMonths is the window used when no month count is supplied.
const DefaultTrendMonths = 12

// GetSpendingTrendInput represents the input for the spending trend.
type GetSpendingTrendInput struct {
	Months int
}

// TrendPoint is one month of the trend, keyed "YYYY-MM".
type TrendPoint struct {
	Month string
	Total decimal.Decimal
}

// GetSpendingTrendOutput lists the trend oldest month first, current
// month last. Months with no bills contribute zero.
type GetSpendingTrendOutput struct {
	Points []TrendPoint
}

// GetSpendingTrendUseCase sums bill amounts per due-date calendar month
// over a trailing window.
type GetSpendingTrendUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewGetSpendingTrendUseCase creates a new GetSpendingTrendUseCase instance.
func NewGetSpendingTrendUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *GetSpendingTrendUseCase {
	return &GetSpendingTrendUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute computes the trend.
func (uc *GetSpendingTrendUseCase) Execute(_ context.Context, input GetSpendingTrendInput) (*GetSpendingTrendOutput, error) {
	months := input.Months
	if months <= 0 {
		months = DefaultTrendMonths
	}

	now := uc.clock.Now()
	totals := make(map[string]decimal.Decimal, months)
	points := make([]TrendPoint, 0, months)

	// Seed the full window so empty months still appear, oldest first.
	for i := months - 1; i >= 0; i-- {
		key := monthKey(time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC))
		totals[key] = decimal.Zero
		points = append(points, TrendPoint{Month: key})
	}

	for _, b := range uc.billRepo.All() {
		key := monthKey(b.DueDate)
		if total, ok := totals[key]; ok {
			totals[key] = total.Add(b.Amount)
		}
	}

	for i := range points {
		points[i].Total = totals[points[i].Month]
	}

	return &GetSpendingTrendOutput{Points: points}, nil
}

// monthKey formats a date as its "YYYY-MM" calendar-month key.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
