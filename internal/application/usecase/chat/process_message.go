package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/resolvpay/backend/internal/application/adapter"
)

// ProcessMessageInput carries one user message.
type ProcessMessageInput struct {
	Message string
}

// ProcessMessageOutput is the assistant's reply.
type ProcessMessageOutput struct {
	Reply  string
	Intent string
}

// HistoryEntry is one exchange kept in the conversation log.
type HistoryEntry struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// DefaultHistoryLimit caps the conversation log when no limit is configured.
const DefaultHistoryLimit = 50

// ProcessMessageUseCase answers bill and expense questions with canned,
// data-backed replies. It keeps an in-memory conversation history capped
// at historyLimit entries; the oldest exchanges are dropped first.
type ProcessMessageUseCase struct {
	billRepo     adapter.BillRepository
	expenseRepo  adapter.ExpenseRepository
	clock        adapter.Clock
	historyLimit int

	mu      sync.Mutex
	history []HistoryEntry
}

func NewProcessMessageUseCase(
	billRepo adapter.BillRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
	historyLimit int,
) *ProcessMessageUseCase {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &ProcessMessageUseCase{
		billRepo:     billRepo,
		expenseRepo:  expenseRepo,
		clock:        clock,
		historyLimit: historyLimit,
	}
}

func (uc *ProcessMessageUseCase) Execute(ctx context.Context, input ProcessMessageInput) (*ProcessMessageOutput, error) {
	query := strings.ToLower(strings.TrimSpace(input.Message))
	intent := recognizeIntent(query)

	var reply string
	var err error

	switch intent {
	case IntentGreeting:
		reply = uc.handleGreeting()
	case IntentHelp:
		reply = uc.handleHelp()
	case IntentAddExpense:
		reply, err = uc.handleAddExpense(ctx, query)
	case IntentShowExpenses:
		reply = uc.handleShowExpenses()
	case IntentExpenseBreakdown:
		reply = uc.handleExpenseBreakdown()
	case IntentFinancialAdvice:
		reply = uc.handleFinancialAdvice()
	case IntentBillsDueSoon:
		reply = uc.handleBillsDueSoon(query)
	case IntentBillsDueToday:
		reply = uc.handleBillsDueToday()
	case IntentBillsOverdue:
		reply = uc.handleOverdue()
	case IntentTotalOwed:
		reply = uc.handleTotalOwed()
	case IntentNextBill:
		reply = uc.handleNextBill()
	case IntentMonthlyBills:
		reply = uc.handleMonthlyBills(query)
	case IntentBillSummary:
		reply = uc.handleBillSummary()
	case IntentSubscriptions:
		reply = uc.handleSubscriptions()
	case IntentAutopay:
		reply = uc.handleAutopay(query)
	case IntentMarkPaid:
		reply = uc.handleMarkPaid()
	case IntentCategoryBills:
		reply = uc.handleCategoryBills(query)
	case IntentSearchBill:
		reply = uc.handleSearchBill(query)
	default:
		reply = uc.handleDefault()
	}
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	uc.mu.Lock()
	uc.history = append(uc.history,
		HistoryEntry{Role: "user", Content: input.Message, Timestamp: now},
		HistoryEntry{Role: "assistant", Content: reply, Timestamp: now},
	)
	if overflow := len(uc.history) - uc.historyLimit; overflow > 0 {
		uc.history = append(uc.history[:0:0], uc.history[overflow:]...)
	}
	uc.mu.Unlock()

	return &ProcessMessageOutput{Reply: reply, Intent: string(intent)}, nil
}

// History returns a copy of the conversation so far.
func (uc *ProcessMessageUseCase) History() []HistoryEntry {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]HistoryEntry, len(uc.history))
	copy(out, uc.history)
	return out
}
