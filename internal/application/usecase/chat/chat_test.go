package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
	"github.com/resolvpay/backend/internal/integration/persistence"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testToday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newAssistant(t *testing.T) (*ProcessMessageUseCase, adapter.BillRepository, adapter.ExpenseRepository) {
	t.Helper()
	store := persistence.NewMemoryKeyValueStore()
	billRepo := persistence.NewBillRepository(store, "test:bills")
	expenseRepo := persistence.NewExpenseRepository(store, "test:expenses")
	return NewProcessMessageUseCase(billRepo, expenseRepo, fixedClock{testToday}, 0), billRepo, expenseRepo
}

func addBill(repo adapter.BillRepository, name string, amount int64, dueDate time.Time, frequency entity.BillFrequency, autopay bool) *entity.Bill {
	bill := entity.NewBill(repo.NextID(), name, decimal.NewFromInt(amount), dueDate, "", frequency, autopay, "", "")
	repo.Insert(bill)
	return bill
}

func TestRecognizeIntent(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"hello there", IntentGreeting},
		{"what can you do", IntentHelp},
		{"add expense $25 for groceries", IntentAddExpense},
		{"i spent 12.50 on lunch", IntentAddExpense},
		{"show my expenses", IntentShowExpenses},
		{"spending breakdown", IntentExpenseBreakdown},
		{"give me financial advice", IntentFinancialAdvice},
		{"what's due today", IntentBillsDueToday},
		{"what's due this week", IntentBillsDueSoon},
		{"anything overdue?", IntentBillsOverdue},
		{"how much do i owe in total", IntentTotalOwed},
		{"what's my next bill", IntentNextBill},
		{"bills this month", IntentMonthlyBills},
		{"give me a summary", IntentBillSummary},
		{"show my subscriptions", IntentSubscriptions},
		{"which bills are on autopay", IntentAutopay},
		{"show my utilities bills", IntentCategoryBills},
		{"find netflix", IntentSearchBill},
		{"what is the airspeed of a swallow", IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := recognizeIntent(tt.query); got != tt.want {
				t.Errorf("recognizeIntent(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestProcessMessage_TotalOwed(t *testing.T) {
	uc, billRepo, _ := newAssistant(t)
	addBill(billRepo, "Rent", 1200, date(2026, 3, 12), entity.FrequencyMonthly, false)
	addBill(billRepo, "Netflix", 15, date(2026, 3, 25), entity.FrequencyMonthly, true)

	out, err := uc.Execute(context.Background(), ProcessMessageInput{Message: "how much do I owe?"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out.Intent != string(IntentTotalOwed) {
		t.Errorf("expected total_owed intent, got %s", out.Intent)
	}
	if !strings.Contains(out.Reply, "$1215.00") {
		t.Errorf("expected total $1215.00 in reply, got %q", out.Reply)
	}
}

func TestProcessMessage_DueSoonParsesDayFrame(t *testing.T) {
	uc, billRepo, _ := newAssistant(t)
	addBill(billRepo, "Rent", 1200, date(2026, 3, 12), entity.FrequencyMonthly, false)
	addBill(billRepo, "Water", 40, date(2026, 3, 22), entity.FrequencyMonthly, false)

	out, err := uc.Execute(context.Background(), ProcessMessageInput{Message: "what's due in the next 14 days?"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out.Reply, "Rent") || !strings.Contains(out.Reply, "Water") {
		t.Errorf("expected both bills inside the 14-day frame, got %q", out.Reply)
	}
}

func TestProcessMessage_AddExpense(t *testing.T) {
	uc, _, expenseRepo := newAssistant(t)

	out, err := uc.Execute(context.Background(), ProcessMessageInput{Message: "add expense $25.50 for groceries"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out.Intent != string(IntentAddExpense) {
		t.Fatalf("expected add_expense intent, got %s", out.Intent)
	}

	expenses := expenseRepo.All()
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense logged, got %d", len(expenses))
	}
	if !expenses[0].Amount.Equal(decimal.RequireFromString("25.50")) {
		t.Errorf("expected amount 25.50, got %v", expenses[0].Amount)
	}
	if expenses[0].Category != "Groceries" {
		t.Errorf("expected category Groceries, got %q", expenses[0].Category)
	}
}

func TestProcessMessage_NextBill(t *testing.T) {
	uc, billRepo, _ := newAssistant(t)
	addBill(billRepo, "Rent", 1200, date(2026, 3, 12), entity.FrequencyMonthly, false)
	addBill(billRepo, "Netflix", 15, date(2026, 3, 25), entity.FrequencyMonthly, false)
	overdue := addBill(billRepo, "Old", 5, date(2026, 3, 1), entity.FrequencyOneTime, false)
	_ = overdue

	out, err := uc.Execute(context.Background(), ProcessMessageInput{Message: "what's my next bill?"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out.Reply, "Rent") {
		t.Errorf("expected Rent as the next bill, got %q", out.Reply)
	}
}

func TestProcessMessage_Autopay(t *testing.T) {
	uc, billRepo, _ := newAssistant(t)
	addBill(billRepo, "Netflix", 15, date(2026, 3, 25), entity.FrequencyMonthly, true)
	addBill(billRepo, "Rent", 1200, date(2026, 3, 12), entity.FrequencyMonthly, false)

	out, err := uc.Execute(context.Background(), ProcessMessageInput{Message: "which bills are on autopay?"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out.Reply, "Netflix") || strings.Contains(out.Reply, "Rent") {
		t.Errorf("expected only the autopay bill, got %q", out.Reply)
	}

	out, err = uc.Execute(context.Background(), ProcessMessageInput{Message: "which bills are not on autopay?"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out.Reply, "Rent") {
		t.Errorf("expected the manual bill, got %q", out.Reply)
	}
}

func TestProcessMessage_RecordsHistory(t *testing.T) {
	uc, _, _ := newAssistant(t)

	if _, err := uc.Execute(context.Background(), ProcessMessageInput{Message: "hello"}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	history := uc.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Errorf("unexpected roles: %s, %s", history[0].Role, history[1].Role)
	}
	if history[0].Content != "hello" {
		t.Errorf("expected user message preserved, got %q", history[0].Content)
	}
}

func TestProcessMessage_HistoryDropsOldestWhenCapped(t *testing.T) {
	store := persistence.NewMemoryKeyValueStore()
	billRepo := persistence.NewBillRepository(store, "test:bills")
	expenseRepo := persistence.NewExpenseRepository(store, "test:expenses")
	uc := NewProcessMessageUseCase(billRepo, expenseRepo, fixedClock{testToday}, 4)

	for _, msg := range []string{"hello", "help", "anything overdue?"} {
		if _, err := uc.Execute(context.Background(), ProcessMessageInput{Message: msg}); err != nil {
			t.Fatalf("execute failed: %v", err)
		}
	}

	history := uc.History()
	if len(history) != 4 {
		t.Fatalf("expected history capped at 4 entries, got %d", len(history))
	}
	if history[0].Content != "help" {
		t.Errorf("expected oldest exchange dropped, got %q first", history[0].Content)
	}
}

func TestProcessMessage_SearchBill(t *testing.T) {
	uc, billRepo, _ := newAssistant(t)
	addBill(billRepo, "Netflix", 15, date(2026, 3, 25), entity.FrequencyMonthly, false)

	out, err := uc.Execute(context.Background(), ProcessMessageInput{Message: "find netflix"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out.Reply, "Netflix") {
		t.Errorf("expected the bill found, got %q", out.Reply)
	}
}
