// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
)

// DefaultRecurringCount is the occurrence count used when none is supplied.
const DefaultRecurringCount = 12

// GenerateRecurringInput represents the input for recurring generation.
// Count is the total number of occurrences including the template itself,
// so count-1 new bills are produced.
type GenerateRecurringInput struct {
	TemplateID int64
	Count      int
}

// GenerateRecurringOutput represents the output of recurring generation.
type GenerateRecurringOutput struct {
	Generated []*BillOutput
}

// GenerateRecurringUseCase produces future occurrences of a recurring
// bill from its template.
type GenerateRecurringUseCase struct {
	billRepo     adapter.BillRepository
	clock        adapter.Clock
	defaultCount int
}

// NewGenerateRecurringUseCase creates a new GenerateRecurringUseCase
// instance. defaultCount is substituted when a request carries no count;
// a non-positive value falls back to DefaultRecurringCount.
func NewGenerateRecurringUseCase(billRepo adapter.BillRepository, clock adapter.Clock, defaultCount int) *GenerateRecurringUseCase {
	if defaultCount <= 0 {
		defaultCount = DefaultRecurringCount
	}
	return &GenerateRecurringUseCase{
		billRepo:     billRepo,
		clock:        clock,
		defaultCount: defaultCount,
	}
}

// Execute performs the recurring generation. All new occurrences are
// persisted in a single save.
func (uc *GenerateRecurringUseCase) Execute(ctx context.Context, input GenerateRecurringInput) (*GenerateRecurringOutput, error) {
	template, found := uc.billRepo.FindByID(input.TemplateID)
	if !found {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			fmt.Sprintf("bill %d not found", input.TemplateID),
			domainerror.ErrBillNotFound,
		)
	}

	if template.Frequency == entity.FrequencyOneTime {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeNotRecurringBill,
			"cannot generate recurring bills for one-time bill",
			domainerror.ErrNotRecurringBill,
		)
	}

	count := input.Count
	if count == 0 {
		count = uc.defaultCount
	}
	if count < 2 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidGenerateCount,
			"occurrence count must be at least 2",
			domainerror.ErrInvalidGenerateCount,
		)
	}

	now := uc.clock.Now()
	generated := make([]*BillOutput, 0, count-1)

	// The template counts as occurrence 1.
	for i := 1; i < count; i++ {
		occurrence := entity.NewBill(
			uc.billRepo.NextID(),
			template.Name,
			template.Amount,
			template.NextOccurrenceDate(i),
			template.Category,
			template.Frequency,
			template.Autopay,
			template.Notes,
			template.PaymentMethod,
		)
		parentID := template.ID
		occurrence.RecurringParentID = &parentID
		occurrence.CreatedAt = now
		occurrence.UpdatedAt = now

		uc.billRepo.Insert(occurrence)
		generated = append(generated, toBillOutput(occurrence, now))
	}

	if err := uc.billRepo.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save bill collection: %w", err)
	}

	return &GenerateRecurringOutput{Generated: generated}, nil
}
