// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// BulkMarkPaidInput represents the input for bulk mark-paid. Each bill
// is paid with its own amount and the current time, exactly like a
// no-argument single mark-paid.
type BulkMarkPaidInput struct {
	BillIDs []int64
}

// BulkMarkPaidOutput represents the output of bulk mark-paid.
type BulkMarkPaidOutput struct {
	Updated []*BillOutput
}

// BulkMarkPaidUseCase handles bulk mark-paid logic. The operation is
// all-or-nothing: every ID is verified before any bill is touched, and
// the whole batch persists in one save.
type BulkMarkPaidUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewBulkMarkPaidUseCase creates a new BulkMarkPaidUseCase instance.
func NewBulkMarkPaidUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *BulkMarkPaidUseCase {
	return &BulkMarkPaidUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the bulk mark-paid.
func (uc *BulkMarkPaidUseCase) Execute(ctx context.Context, input BulkMarkPaidInput) (*BulkMarkPaidOutput, error) {
	if len(input.BillIDs) == 0 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeEmptyBillIDs,
			"bill IDs list cannot be empty",
			domainerror.ErrEmptyBillIDs,
		)
	}

	bills, err := resolveBills(uc.billRepo, input.BillIDs)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	updated := make([]*BillOutput, len(bills))
	for i, bill := range bills {
		bill.MarkPaid(nil, nil, now)
		updated[i] = toBillOutput(bill, now)
	}

	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &BulkMarkPaidOutput{Updated: updated}, nil
}
