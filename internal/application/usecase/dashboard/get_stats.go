// Package dashboard contains aggregation use cases over the bill collection.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
)

// BillSummary is the compact per-bill view used inside aggregations.
type BillSummary struct {
	ID       int64
	Name     string
	Amount   decimal.Decimal
	DueDate  time.Time
	Category string
	Paid     bool
}

// GroupStats aggregates one category or frequency bucket.
type GroupStats struct {
	Count int
	Total decimal.Decimal
	Bills []BillSummary
}

// GetStatsOutput represents the collection-wide statistics.
type GetStatsOutput struct {
	TotalBills    int
	ActiveBills   int
	PaidBills     int
	TotalAmount   decimal.Decimal // sum over unpaid bills
	AverageAmount decimal.Decimal // average over unpaid bills, zero when none
	DueThisMonth  decimal.Decimal // unpaid amount due in the current calendar month
	Overdue       int
	DueSoon       int
	ByCategory    map[string]*GroupStats
	ByFrequency   map[string]*GroupStats
}

// GetStatsUseCase computes collection-wide statistics.
type GetStatsUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *GetStatsUseCase {
	return &GetStatsUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute computes the statistics.
func (uc *GetStatsUseCase) Execute(_ context.Context) (*GetStatsOutput, error) {
	today := uc.clock.Now()
	bills := uc.billRepo.All()

	output := &GetStatsOutput{
		TotalBills:    len(bills),
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
		DueThisMonth:  decimal.Zero,
		ByCategory:    map[string]*GroupStats{},
		ByFrequency:   map[string]*GroupStats{},
	}

	for _, b := range bills {
		summary := BillSummary{
			ID:       b.ID,
			Name:     b.Name,
			Amount:   b.Amount,
			DueDate:  b.DueDate,
			Category: b.Category,
			Paid:     b.Paid,
		}
		addToGroup(output.ByCategory, b.Category, summary)
		addToGroup(output.ByFrequency, string(b.Frequency), summary)

		if b.Paid {
			output.PaidBills++
			continue
		}

		output.ActiveBills++
		output.TotalAmount = output.TotalAmount.Add(b.Amount)

		if b.DueDate.Year() == today.Year() && b.DueDate.Month() == today.Month() {
			output.DueThisMonth = output.DueThisMonth.Add(b.Amount)
		}

		days := entity.DaysUntilDue(b.DueDate, today)
		if days < 0 {
			output.Overdue++
		} else if days <= entity.DueSoonWindowDays {
			output.DueSoon++
		}
	}

	if output.ActiveBills > 0 {
		output.AverageAmount = output.TotalAmount.Div(decimal.NewFromInt(int64(output.ActiveBills)))
	}

	return output, nil
}

func addToGroup(groups map[string]*GroupStats, key string, summary BillSummary) {
	group, ok := groups[key]
	if !ok {
		group = &GroupStats{Total: decimal.Zero}
		groups[key] = group
	}
	group.Count++
	group.Total = group.Total.Add(summary.Amount)
	group.Bills = append(group.Bills, summary)
}
