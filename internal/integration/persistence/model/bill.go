// Package model defines the stored/interchange record shapes.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/domain/entity"
)

// DateLayout is the calendar-date form used for due dates.
const DateLayout = "2006-01-02"

// BillRecord is the JSON shape of one bill, used both for the persisted
// collection and for export/import interchange. Amount is a pointer so
// import validation can tell an absent amount from zero.
type BillRecord struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Amount            *decimal.Decimal `json:"amount"`
	DueDate           string           `json:"dueDate"`
	Category          string           `json:"category,omitempty"`
	Frequency         string           `json:"frequency,omitempty"`
	Autopay           bool             `json:"autopay"`
	Paid              bool             `json:"paid"`
	Notes             string           `json:"notes"`
	PaymentMethod     string           `json:"paymentMethod"`
	AmountPaid        *decimal.Decimal `json:"amountPaid,omitempty"`
	DatePaid          *time.Time       `json:"datePaid,omitempty"`
	RecurringParentID *int64           `json:"recurringParentId,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// FromBill converts a bill entity to its record form.
func FromBill(b *entity.Bill) BillRecord {
	amount := b.Amount
	return BillRecord{
		ID:                b.ID,
		Name:              b.Name,
		Amount:            &amount,
		DueDate:           b.DueDate.Format(DateLayout),
		Category:          b.Category,
		Frequency:         string(b.Frequency),
		Autopay:           b.Autopay,
		Paid:              b.Paid,
		Notes:             b.Notes,
		PaymentMethod:     b.PaymentMethod,
		AmountPaid:        b.AmountPaid,
		DatePaid:          b.DatePaid,
		RecurringParentID: b.RecurringParentID,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromBills converts a collection to record form, preserving order.
func FromBills(bills []*entity.Bill) []BillRecord {
	records := make([]BillRecord, len(bills))
	for i, b := range bills {
		records[i] = FromBill(b)
	}
	return records
}

// ToBill converts a record back into a bill entity, default-filling
// optional fields and repairing the paid-state invariant: an unpaid
// record drops stray payment fields, a paid record without them falls
// back to the bill amount and the record's update time.
func (r BillRecord) ToBill() (*entity.Bill, error) {
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return nil, err
	}

	category := r.Category
	if category == "" {
		category = entity.DefaultCategory
	}
	frequency := entity.BillFrequency(r.Frequency)
	if frequency == "" {
		frequency = entity.FrequencyOneTime
	}

	var amount decimal.Decimal
	if r.Amount != nil {
		amount = *r.Amount
	}

	bill := &entity.Bill{
		ID:                r.ID,
		Name:              r.Name,
		Amount:            amount,
		DueDate:           dueDate,
		Category:          category,
		Frequency:         frequency,
		Autopay:           r.Autopay,
		Paid:              r.Paid,
		Notes:             r.Notes,
		PaymentMethod:     r.PaymentMethod,
		RecurringParentID: r.RecurringParentID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}

	if r.Paid {
		amountPaid := amount
		if r.AmountPaid != nil {
			amountPaid = *r.AmountPaid
		}
		datePaid := r.UpdatedAt
		if r.DatePaid != nil {
			datePaid = *r.DatePaid
		}
		bill.AmountPaid = &amountPaid
		bill.DatePaid = &datePaid
	}

	return bill, nil
}

// parseDate parses a calendar date, anchored at midnight UTC.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
