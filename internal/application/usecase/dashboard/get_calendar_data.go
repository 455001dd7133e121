// Package dashboard contains aggregation use cases over the bill collection.
package dashboard

import (
	"context"
	"time"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
)

// GetCalendarDataInput selects a calendar month.
type GetCalendarDataInput struct {
	Month time.Month
	Year  int
}

// CalendarEntry is one bill due in the selected month, with its status
// derived at read time.
type CalendarEntry struct {
	Day    int
	Bill   BillSummary
	Status entity.BillStatus
}

// GetCalendarDataOutput lists the month's bills in collection order.
type GetCalendarDataOutput struct {
	Entries []CalendarEntry
}

// GetCalendarDataUseCase collects the bills due in a given month/year.
type GetCalendarDataUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewGetCalendarDataUseCase creates a new GetCalendarDataUseCase instance.
func NewGetCalendarDataUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *GetCalendarDataUseCase {
	return &GetCalendarDataUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute collects the calendar data.
func (uc *GetCalendarDataUseCase) Execute(_ context.Context, input GetCalendarDataInput) (*GetCalendarDataOutput, error) {
	today := uc.clock.Now()
	output := &GetCalendarDataOutput{}

	for _, b := range uc.billRepo.All() {
		if b.DueDate.Month() != input.Month || b.DueDate.Year() != input.Year {
			continue
		}
		output.Entries = append(output.Entries, CalendarEntry{
			Day: b.DueDate.Day(),
			Bill: BillSummary{
				ID:       b.ID,
				Name:     b.Name,
				Amount:   b.Amount,
				DueDate:  b.DueDate,
				Category: b.Category,
				Paid:     b.Paid,
			},
			Status: b.Status(today),
		})
	}

	return output, nil
}
