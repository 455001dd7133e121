// Package backup contains bill import/export use cases.
package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/integration/persistence/model"
)

// ExportJSONOutput carries the serialized collection.
type ExportJSONOutput struct {
	Payload string
	Count   int
}

// ExportJSONUseCase serializes the full collection as a JSON array.
// This is the canonical backup format: importing it into an empty store
// reproduces the collection, with fresh IDs.
type ExportJSONUseCase struct {
	billRepo adapter.BillRepository
}

// NewExportJSONUseCase creates a new ExportJSONUseCase instance.
func NewExportJSONUseCase(billRepo adapter.BillRepository) *ExportJSONUseCase {
	return &ExportJSONUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the export.
func (uc *ExportJSONUseCase) Execute(_ context.Context) (*ExportJSONOutput, error) {
	records := model.FromBills(uc.billRepo.All())
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize bill collection: %w", err)
	}
	return &ExportJSONOutput{
		Payload: string(payload),
		Count:   len(records),
	}, nil
}
