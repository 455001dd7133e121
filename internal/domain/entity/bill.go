// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillFrequency represents how often a bill recurs.
type BillFrequency string

const (
	FrequencyOneTime   BillFrequency = "one-time"
	FrequencyWeekly    BillFrequency = "weekly"
	FrequencyBiweekly  BillFrequency = "biweekly"
	FrequencyMonthly   BillFrequency = "monthly"
	FrequencyQuarterly BillFrequency = "quarterly"
	FrequencyYearly    BillFrequency = "yearly"
)

// BillStatus is the derived classification of a bill relative to today.
// It is computed on read and never persisted.
type BillStatus string

const (
	StatusPaid     BillStatus = "paid"
	StatusOverdue  BillStatus = "overdue"
	StatusDueSoon  BillStatus = "due-soon"
	StatusUpcoming BillStatus = "upcoming"
)

// DueSoonWindowDays is the number of days ahead within which an unpaid
// bill is classified as due-soon.
const DueSoonWindowDays = 7

// DefaultCategory is assigned when no category is supplied.
const DefaultCategory = "Other"

// Categories lists the suggested bill categories. Free-text categories
// are also accepted.
var Categories = []string{
	"Utilities",
	"Subscriptions",
	"Loans",
	"Insurance",
	"Rent/Mortgage",
	"Credit Cards",
	"Medical",
	"Childcare",
	"Transportation",
	"Entertainment",
	DefaultCategory,
}

// Bill represents a trackable financial obligation in the ResolvPay system.
type Bill struct {
	ID                int64
	Name              string
	Amount            decimal.Decimal
	DueDate           time.Time // calendar date, midnight UTC
	Category          string
	Frequency         BillFrequency
	Autopay           bool
	Paid              bool
	Notes             string
	PaymentMethod     string // credit card, bank transfer, cash
	AmountPaid        *decimal.Decimal
	DatePaid          *time.Time
	RecurringParentID *int64 // template bill that generated this occurrence
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewBill creates a new Bill entity with defaults applied.
func NewBill(
	id int64,
	name string,
	amount decimal.Decimal,
	dueDate time.Time,
	category string,
	frequency BillFrequency,
	autopay bool,
	notes string,
	paymentMethod string,
) *Bill {
	if category == "" {
		category = DefaultCategory
	}
	if frequency == "" {
		frequency = FrequencyOneTime
	}
	now := time.Now().UTC()

	return &Bill{
		ID:            id,
		Name:          name,
		Amount:        amount,
		DueDate:       NormalizeDate(dueDate),
		Category:      category,
		Frequency:     frequency,
		Autopay:       autopay,
		Paid:          false,
		Notes:         notes,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidFrequency reports whether the given frequency is a known value.
func IsValidFrequency(frequency BillFrequency) bool {
	switch frequency {
	case FrequencyOneTime, FrequencyWeekly, FrequencyBiweekly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// NormalizeDate truncates a timestamp to its calendar day at midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntilDue returns the calendar-day distance from today to the due
// date. Negative means past due, zero means due today.
func DaysUntilDue(dueDate, today time.Time) int {
	due := NormalizeDate(dueDate)
	now := NormalizeDate(today)
	diff := due.Sub(now)
	days := int(diff.Hours() / 24)
	if diff%(24*time.Hour) != 0 && diff > 0 {
		days++ // ceiling for partial days
	}
	return days
}

// Status derives the bill's classification for the given date.
func (b *Bill) Status(today time.Time) BillStatus {
	if b.Paid {
		return StatusPaid
	}
	days := DaysUntilDue(b.DueDate, today)
	if days < 0 {
		return StatusOverdue
	}
	if days <= DueSoonWindowDays {
		return StatusDueSoon
	}
	return StatusUpcoming
}

// MarkPaid sets the paid state. The amount and date fields move together
// with the flag; zero-value arguments fall back to the bill's own amount
// and the supplied timestamp.
func (b *Bill) MarkPaid(amountPaid *decimal.Decimal, datePaid *time.Time, now time.Time) {
	paid := b.Amount
	if amountPaid != nil {
		paid = *amountPaid
	}
	when := now
	if datePaid != nil {
		when = *datePaid
	}
	b.Paid = true
	b.AmountPaid = &paid
	b.DatePaid = &when
	b.UpdatedAt = now
}

// MarkUnpaid clears the paid state and both payment fields.
func (b *Bill) MarkUnpaid(now time.Time) {
	b.Paid = false
	b.AmountPaid = nil
	b.DatePaid = nil
	b.UpdatedAt = now
}

// NextOccurrenceDate returns the due date offset by periods steps of the
// bill's frequency from its own due date. One-time bills return the due
// date unchanged.
func (b *Bill) NextOccurrenceDate(periods int) time.Time {
	switch b.Frequency {
	case FrequencyWeekly:
		return b.DueDate.AddDate(0, 0, 7*periods)
	case FrequencyBiweekly:
		return b.DueDate.AddDate(0, 0, 14*periods)
	case FrequencyMonthly:
		return b.DueDate.AddDate(0, periods, 0)
	case FrequencyQuarterly:
		return b.DueDate.AddDate(0, 3*periods, 0)
	case FrequencyYearly:
		return b.DueDate.AddDate(periods, 0, 0)
	default:
		return b.DueDate
	}
}

// PaymentHistory is the payment view of a single bill.
type PaymentHistory struct {
	BillID        int64
	BillName      string
	PaidOn        *time.Time
	Amount        *decimal.Decimal
	PaymentMethod string
	Status        string // "completed" or "pending"
}
