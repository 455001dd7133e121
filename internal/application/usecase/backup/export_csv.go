// Package backup contains bill import/export use cases.
package backup

import (
	"context"
	"strings"

	"github.com/resolvpay/backend/internal/application/adapter"
)

// CSVHeader is the fixed column row of the CSV export.
const CSVHeader = "Name,Amount,Due Date,Category,Frequency,Autopay,Status,Notes"

// ExportCSVOutput carries the serialized collection.
type ExportCSVOutput struct {
	Payload string
	Count   int
}

// ExportCSVUseCase renders the collection as CSV, one row per bill with
// the status derived at export time. The format is lossy: IDs,
// timestamps, and payment fields are not included.
type ExportCSVUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute performs the export. Every field is double-quoted and embedded
// quote characters are doubled, so encoding/csv (which quotes only when
// required) is not used here.
func (uc *ExportCSVUseCase) Execute(_ context.Context) (*ExportCSVOutput, error) {
	today := uc.clock.Now()
	bills := uc.billRepo.All()

	var sb strings.Builder
	sb.WriteString(CSVHeader)
	sb.WriteByte('\n')

	for _, b := range bills {
		fields := []string{
			b.Name,
			b.Amount.String(),
			b.DueDate.Format("2006-01-02"),
			b.Category,
			string(b.Frequency),
			boolField(b.Autopay),
			string(b.Status(today)),
			b.Notes,
		}
		for i, f := range fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
			sb.WriteByte('"')
		}
		sb.WriteByte('\n')
	}

	return &ExportCSVOutput{
		Payload: sb.String(),
		Count:   len(bills),
	}, nil
}

func boolField(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
