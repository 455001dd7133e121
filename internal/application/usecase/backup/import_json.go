// Package backup contains bill import/export use cases.
package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
	"github.com/resolvpay/backend/internal/integration/persistence/model"
)

// ImportJSONInput carries the raw uploaded text.
type ImportJSONInput struct {
	Payload string
}

// ImportJSONOutput reports how many bills were added.
type ImportJSONOutput struct {
	Imported int
}

// ImportJSONUseCase parses an exported JSON array and adds its bills to
// the collection. Import is additive only: existing bills are never
// replaced or deduplicated against, and incoming IDs are discarded in
// favor of fresh ones. The operation is all-or-nothing: the whole
// payload is decoded and validated before any bill is added, so a bad
// entry imports nothing.
type ImportJSONUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewImportJSONUseCase creates a new ImportJSONUseCase instance.
func NewImportJSONUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *ImportJSONUseCase {
	return &ImportJSONUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the import.
func (uc *ImportJSONUseCase) Execute(ctx context.Context, input ImportJSONInput) (*ImportJSONOutput, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(input.Payload), &raw); err != nil {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidImportPayload,
			"import payload must be a JSON array of bills",
			domainerror.ErrInvalidImportPayload,
		)
	}

	now := uc.clock.Now()
	bills := make([]*entity.Bill, 0, len(raw))

	for i, entry := range raw {
		var record model.BillRecord
		if err := json.Unmarshal(entry, &record); err != nil {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidImportPayload,
				fmt.Sprintf("entry %d is not a bill object", i),
				domainerror.ErrInvalidImportPayload,
			)
		}

		if record.Name == "" || record.Amount == nil || record.DueDate == "" {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeMissingBillFields,
				fmt.Sprintf("entry %d is missing required fields", i),
				domainerror.ErrMissingBillFields,
			)
		}
		if record.Amount.IsNegative() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillAmount,
				fmt.Sprintf("entry %d has a negative amount", i),
				domainerror.ErrInvalidBillAmount,
			)
		}

		bill, err := record.ToBill()
		if err != nil {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillDueDate,
				fmt.Sprintf("entry %d has an invalid due date %q", i, record.DueDate),
				domainerror.ErrInvalidBillDueDate,
			)
		}

		// Incoming IDs are never trusted; timestamps only partially.
		if record.CreatedAt.IsZero() {
			bill.CreatedAt = now
		}
		bill.UpdatedAt = now
		bills = append(bills, bill)
	}

	for _, bill := range bills {
		bill.ID = uc.billRepo.NextID()
		uc.billRepo.Insert(bill)
	}

	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &ImportJSONOutput{Imported: len(bills)}, nil
}
