package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewBill_Defaults(t *testing.T) {
	bill := NewBill(1, "Rent", decimal.NewFromInt(1200), date(2026, 3, 1), "", "", false, "", "")

	if bill.Category != DefaultCategory {
		t.Errorf("expected default category %q, got %q", DefaultCategory, bill.Category)
	}
	if bill.Frequency != FrequencyOneTime {
		t.Errorf("expected default frequency %q, got %q", FrequencyOneTime, bill.Frequency)
	}
	if bill.Paid {
		t.Error("expected new bill to be unpaid")
	}
	if !bill.CreatedAt.Equal(bill.UpdatedAt) {
		t.Error("expected CreatedAt and UpdatedAt to match on creation")
	}
}

func TestNewBill_NormalizesDueDate(t *testing.T) {
	dirty := time.Date(2026, 3, 15, 17, 45, 12, 0, time.UTC)
	bill := NewBill(1, "Power", decimal.NewFromInt(80), dirty, "Utilities", FrequencyMonthly, false, "", "")

	if !bill.DueDate.Equal(date(2026, 3, 15)) {
		t.Errorf("expected due date normalized to midnight, got %v", bill.DueDate)
	}
}

func TestDaysUntilDue(t *testing.T) {
	today := date(2026, 3, 10)

	tests := []struct {
		name    string
		dueDate time.Time
		want    int
	}{
		{"due today", date(2026, 3, 10), 0},
		{"due tomorrow", date(2026, 3, 11), 1},
		{"due in a week", date(2026, 3, 17), 7},
		{"overdue by one day", date(2026, 3, 9), -1},
		{"overdue by a month", date(2026, 2, 10), -28},
		{"due next year", date(2027, 3, 10), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntilDue(tt.dueDate, today); got != tt.want {
				t.Errorf("DaysUntilDue(%v, %v) = %d, want %d", tt.dueDate, today, got, tt.want)
			}
		})
	}
}

func TestDaysUntilDue_IgnoresTimeOfDay(t *testing.T) {
	// A late-evening "today" must not shift the calendar-day distance.
	today := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)
	if got := DaysUntilDue(date(2026, 3, 11), today); got != 1 {
		t.Errorf("expected 1 day, got %d", got)
	}
}

func TestBillStatus(t *testing.T) {
	today := date(2026, 3, 10)

	tests := []struct {
		name    string
		dueDate time.Time
		paid    bool
		want    BillStatus
	}{
		{"paid wins over overdue", date(2026, 3, 1), true, StatusPaid},
		{"overdue", date(2026, 3, 9), false, StatusOverdue},
		{"due today is due soon", date(2026, 3, 10), false, StatusDueSoon},
		{"window edge is due soon", date(2026, 3, 17), false, StatusDueSoon},
		{"past window is upcoming", date(2026, 3, 18), false, StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := &Bill{DueDate: tt.dueDate, Paid: tt.paid}
			if got := bill.Status(today); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarkPaid(t *testing.T) {
	now := date(2026, 3, 10)

	t.Run("defaults to bill amount and now", func(t *testing.T) {
		bill := &Bill{Amount: decimal.NewFromInt(50)}
		bill.MarkPaid(nil, nil, now)

		if !bill.Paid {
			t.Error("expected bill to be paid")
		}
		if bill.AmountPaid == nil || !bill.AmountPaid.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected amount paid 50, got %v", bill.AmountPaid)
		}
		if bill.DatePaid == nil || !bill.DatePaid.Equal(now) {
			t.Errorf("expected date paid %v, got %v", now, bill.DatePaid)
		}
	})

	t.Run("explicit amount and date are kept", func(t *testing.T) {
		bill := &Bill{Amount: decimal.NewFromInt(50)}
		partial := decimal.NewFromInt(20)
		when := date(2026, 3, 8)
		bill.MarkPaid(&partial, &when, now)

		if !bill.AmountPaid.Equal(partial) {
			t.Errorf("expected amount paid %v, got %v", partial, bill.AmountPaid)
		}
		if !bill.DatePaid.Equal(when) {
			t.Errorf("expected date paid %v, got %v", when, bill.DatePaid)
		}
		if !bill.UpdatedAt.Equal(now) {
			t.Errorf("expected UpdatedAt %v, got %v", now, bill.UpdatedAt)
		}
	})
}

func TestMarkUnpaid_ClearsPaymentFields(t *testing.T) {
	now := date(2026, 3, 10)
	bill := &Bill{Amount: decimal.NewFromInt(50)}
	bill.MarkPaid(nil, nil, now)
	bill.MarkUnpaid(now)

	if bill.Paid {
		t.Error("expected bill to be unpaid")
	}
	if bill.AmountPaid != nil || bill.DatePaid != nil {
		t.Error("expected payment fields cleared with the flag")
	}
}

func TestNextOccurrenceDate(t *testing.T) {
	due := date(2026, 1, 31)

	tests := []struct {
		name      string
		frequency BillFrequency
		periods   int
		want      time.Time
	}{
		{"weekly", FrequencyWeekly, 1, date(2026, 2, 7)},
		{"biweekly", FrequencyBiweekly, 1, date(2026, 2, 14)},
		{"monthly rolls over short month", FrequencyMonthly, 1, date(2026, 3, 3)},
		{"quarterly", FrequencyQuarterly, 1, date(2026, 5, 1)},
		{"yearly", FrequencyYearly, 2, date(2028, 1, 31)},
		{"one-time is unchanged", FrequencyOneTime, 3, due},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := &Bill{DueDate: due, Frequency: tt.frequency}
			if got := bill.NextOccurrenceDate(tt.periods); !got.Equal(tt.want) {
				t.Errorf("NextOccurrenceDate(%d) = %v, want %v", tt.periods, got, tt.want)
			}
		})
	}
}

func TestIsValidFrequency(t *testing.T) {
	for _, f := range []BillFrequency{FrequencyOneTime, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly} {
		if !IsValidFrequency(f) {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if IsValidFrequency("fortnightly") {
		t.Error("expected unknown frequency to be invalid")
	}
}
