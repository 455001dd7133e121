// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
)

// ListBillsInput represents the input for listing bills. Search, filter
// criteria and sorting are all optional; absent criteria impose no
// constraint and all supplied criteria are ANDed.
type ListBillsInput struct {
	Search    string
	Status    *entity.BillStatus
	Category  *string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Frequency *entity.BillFrequency
	Autopay   *bool
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string // dueDate, amount, name, createdAt
	SortOrder string // asc, desc
}

// BillOutput represents a single bill in use case output.
type BillOutput struct {
	ID                int64
	Name              string
	Amount            decimal.Decimal
	DueDate           time.Time
	Category          string
	Frequency         entity.BillFrequency
	Autopay           bool
	Paid              bool
	Notes             string
	PaymentMethod     string
	AmountPaid        *decimal.Decimal
	DatePaid          *time.Time
	RecurringParentID *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Status            entity.BillStatus
	DaysUntilDue      int
}

// ListBillsOutput represents the output of listing bills.
type ListBillsOutput struct {
	Bills []*BillOutput
	Total int
}

// ListBillsUseCase handles searching, filtering, and sorting bills.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the bill listing. Search runs first, then filter
// criteria, then sorting; original relative order is preserved except
// where a sort key reorders it.
func (uc *ListBillsUseCase) Execute(_ context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	today := uc.clock.Now()

	bills := uc.billRepo.All()
	if input.Search != "" {
		bills = searchBills(bills, input.Search)
	}
	bills = filterBills(bills, input, today)
	bills = sortBills(bills, input.SortBy, input.SortOrder)

	output := &ListBillsOutput{
		Bills: make([]*BillOutput, len(bills)),
		Total: len(bills),
	}
	for i, b := range bills {
		output.Bills[i] = toBillOutput(b, today)
	}
	return output, nil
}

// searchBills returns bills whose name, category, or notes contain the
// query, case-insensitively. Relative order is preserved.
func searchBills(bills []*entity.Bill, query string) []*entity.Bill {
	q := strings.ToLower(query)
	var matched []*entity.Bill
	for _, b := range bills {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Category), q) ||
			strings.Contains(strings.ToLower(b.Notes), q) {
			matched = append(matched, b)
		}
	}
	return matched
}

// filterBills applies the optional criteria, ANDed together.
func filterBills(bills []*entity.Bill, input ListBillsInput, today time.Time) []*entity.Bill {
	var filtered []*entity.Bill
	for _, b := range bills {
		if input.Status != nil && b.Status(today) != *input.Status {
			continue
		}
		if input.Category != nil && b.Category != *input.Category {
			continue
		}
		if input.MinAmount != nil && b.Amount.LessThan(*input.MinAmount) {
			continue
		}
		if input.MaxAmount != nil && b.Amount.GreaterThan(*input.MaxAmount) {
			continue
		}
		if input.Frequency != nil && b.Frequency != *input.Frequency {
			continue
		}
		if input.Autopay != nil && b.Autopay != *input.Autopay {
			continue
		}
		if input.StartDate != nil && b.DueDate.Before(entity.NormalizeDate(*input.StartDate)) {
			continue
		}
		if input.EndDate != nil && b.DueDate.After(entity.NormalizeDate(*input.EndDate)) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// sortBills returns a sorted copy. Unknown sort keys leave the input
// order untouched; ties always preserve relative order.
func sortBills(bills []*entity.Bill, sortBy, order string) []*entity.Bill {
	sorted := make([]*entity.Bill, len(bills))
	copy(sorted, bills)

	var less func(a, b *entity.Bill) bool
	switch sortBy {
	case "dueDate":
		less = func(a, b *entity.Bill) bool { return a.DueDate.Before(b.DueDate) }
	case "amount":
		less = func(a, b *entity.Bill) bool { return a.Amount.LessThan(b.Amount) }
	case "name":
		less = func(a, b *entity.Bill) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case "createdAt":
		less = func(a, b *entity.Bill) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == "desc" {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// toBillOutput converts a bill entity to its use case output form,
// deriving status and day distance for the given date.
func toBillOutput(b *entity.Bill, today time.Time) *BillOutput {
	return &BillOutput{
		ID:                b.ID,
		Name:              b.Name,
		Amount:            b.Amount,
		DueDate:           b.DueDate,
		Category:          b.Category,
		Frequency:         b.Frequency,
		Autopay:           b.Autopay,
		Paid:              b.Paid,
		Notes:             b.Notes,
		PaymentMethod:     b.PaymentMethod,
		AmountPaid:        b.AmountPaid,
		DatePaid:          b.DatePaid,
		RecurringParentID: b.RecurringParentID,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		Status:            b.Status(today),
		DaysUntilDue:      entity.DaysUntilDue(b.DueDate, today),
	}
}
