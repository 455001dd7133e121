package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
	"github.com/resolvpay/backend/internal/integration/persistence/model"
)

// expenseRepository implements adapter.ExpenseRepository, mirroring the
// bill repository on a separate storage key.
type expenseRepository struct {
	store adapter.KeyValueStore
	key   string

	mu       sync.RWMutex
	expenses []*entity.Expense
	nextID   int64
}

// NewExpenseRepository creates an expense repository persisting under the given key.
func NewExpenseRepository(store adapter.KeyValueStore, key string) adapter.ExpenseRepository {
	return &expenseRepository{
		store:  store,
		key:    key,
		nextID: 1,
	}
}

func (r *expenseRepository) Load(ctx context.Context) error {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return fmt.Errorf("failed to load expenses from storage: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.expenses = nil
	r.nextID = 1
	if !ok || raw == "" {
		return nil
	}

	var records []model.ExpenseRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return fmt.Errorf("failed to decode stored expenses: %w", err)
	}

	expenses := make([]*entity.Expense, 0, len(records))
	var maxID int64
	for _, record := range records {
		expense, err := record.ToExpense()
		if err != nil {
			return fmt.Errorf("failed to decode stored expense %d: %w", record.ID, err)
		}
		expenses = append(expenses, expense)
		if expense.ID > maxID {
			maxID = expense.ID
		}
	}

	r.expenses = expenses
	r.nextID = maxID + 1
	return nil
}

func (r *expenseRepository) Save(ctx context.Context) error {
	r.mu.RLock()
	records := make([]model.ExpenseRecord, 0, len(r.expenses))
	for _, expense := range r.expenses {
		records = append(records, model.FromExpense(expense))
	}
	r.mu.RUnlock()

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(raw)); err != nil {
		return fmt.Errorf("failed to save expenses to storage: %w", err)
	}
	return nil
}

func (r *expenseRepository) NextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

func (r *expenseRepository) All() []*entity.Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Expense, len(r.expenses))
	copy(out, r.expenses)
	return out
}

func (r *expenseRepository) Insert(expense *entity.Expense) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses = append(r.expenses, expense)
}
