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

// billRepository implements adapter.BillRepository. The collection lives
// in memory and is serialized whole to a single storage key on Save.
type billRepository struct {
	store adapter.KeyValueStore
	key   string

	mu     sync.RWMutex
	bills  []*entity.Bill
	nextID int64
}

// NewBillRepository creates a bill repository persisting under the given key.
func NewBillRepository(store adapter.KeyValueStore, key string) adapter.BillRepository {
	return &billRepository{
		store:  store,
		key:    key,
		nextID: 1,
	}
}

// Load replaces the in-memory collection with the stored one. The ID
// sequence restarts at max(existing)+1 so identifiers stay monotonic
// across restarts even after deletions.
func (r *billRepository) Load(ctx context.Context) error {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return fmt.Errorf("failed to load bills from storage: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bills = nil
	r.nextID = 1
	if !ok || raw == "" {
		return nil
	}

	var records []model.BillRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return fmt.Errorf("failed to decode stored bills: %w", err)
	}

	bills := make([]*entity.Bill, 0, len(records))
	var maxID int64
	for _, record := range records {
		bill, err := record.ToBill()
		if err != nil {
			return fmt.Errorf("failed to decode stored bill %d: %w", record.ID, err)
		}
		bills = append(bills, bill)
		if bill.ID > maxID {
			maxID = bill.ID
		}
	}

	r.bills = bills
	r.nextID = maxID + 1
	return nil
}

// Save writes the whole collection to storage.
func (r *billRepository) Save(ctx context.Context) error {
	r.mu.RLock()
	records := model.FromBills(r.bills)
	r.mu.RUnlock()

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode bills: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(raw)); err != nil {
		return fmt.Errorf("failed to save bills to storage: %w", err)
	}
	return nil
}

func (r *billRepository) NextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

func (r *billRepository) FindByID(id int64) (*entity.Bill, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, bill := range r.bills {
		if bill.ID == id {
			return bill, true
		}
	}
	return nil, false
}

func (r *billRepository) All() []*entity.Bill {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Bill, len(r.bills))
	copy(out, r.bills)
	return out
}

func (r *billRepository) Insert(bill *entity.Bill) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = append(r.bills, bill)
}

func (r *billRepository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, bill := range r.bills {
		if bill.ID == id {
			r.bills = append(r.bills[:i], r.bills[i+1:]...)
			return true
		}
	}
	return false
}

func (r *billRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bills)
}
