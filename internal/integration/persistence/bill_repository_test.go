package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
)

func newRedisStore(t *testing.T) adapter.KeyValueStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisKeyValueStore(client)
}

func newBill(id int64, name string, amount int64, dueDate time.Time) *entity.Bill {
	return entity.NewBill(id, name, decimal.NewFromInt(amount), dueDate, "", "", false, "", "")
}

func TestBillRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)

	repo := NewBillRepository(store, "test:bills")
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("load of absent key failed: %v", err)
	}
	if repo.Count() != 0 {
		t.Fatalf("expected empty collection, got %d", repo.Count())
	}

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	first := newBill(repo.NextID(), "Rent", 1200, due)
	second := newBill(repo.NextID(), "Internet", 60, due)
	second.MarkPaid(nil, nil, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	repo.Insert(first)
	repo.Insert(second)
	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// A fresh repository over the same key sees the saved collection.
	reloaded := NewBillRepository(store, "test:bills")
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Count() != 2 {
		t.Fatalf("expected 2 bills after reload, got %d", reloaded.Count())
	}

	bill, found := reloaded.FindByID(2)
	if !found {
		t.Fatal("expected bill 2 to survive the round trip")
	}
	if !bill.Paid || bill.AmountPaid == nil || !bill.AmountPaid.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected paid state to survive, got %+v", bill)
	}
	if !bill.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, bill.DueDate)
	}
}

func TestBillRepository_IDSequenceSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	repo := NewBillRepository(store, "test:bills")
	repo.Insert(newBill(repo.NextID(), "A", 10, due))
	repo.Insert(newBill(repo.NextID(), "B", 20, due))
	repo.Insert(newBill(repo.NextID(), "C", 30, due))

	if !repo.Delete(3) {
		t.Fatal("expected delete to report success")
	}
	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := NewBillRepository(store, "test:bills")
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if id := reloaded.NextID(); id != 3 {
		t.Errorf("expected next ID 3 (max surviving ID + 1), got %d", id)
	}
}

func TestBillRepository_DeleteUnknown(t *testing.T) {
	repo := NewBillRepository(NewMemoryKeyValueStore(), "test:bills")
	if repo.Delete(42) {
		t.Error("expected delete of unknown ID to report false")
	}
}

func TestBillRepository_LoadReplacesState(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	repo := NewBillRepository(store, "test:bills")
	repo.Insert(newBill(repo.NextID(), "A", 10, due))
	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	repo.Insert(newBill(repo.NextID(), "unsaved", 99, due))
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if repo.Count() != 1 {
		t.Errorf("expected unsaved bill discarded by load, got %d bills", repo.Count())
	}
}

func TestExpenseRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)

	repo := NewExpenseRepository(store, "test:expenses")
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("load of absent key failed: %v", err)
	}

	repo.Insert(entity.NewExpense(repo.NextID(), decimal.RequireFromString("12.50"), "Food", "lunch", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := NewExpenseRepository(store, "test:expenses")
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	expenses := reloaded.All()
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if !expenses[0].Amount.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("expected amount 12.50, got %v", expenses[0].Amount)
	}
	if id := reloaded.NextID(); id != 2 {
		t.Errorf("expected next ID 2, got %d", id)
	}
}

func TestMemoryKeyValueStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKeyValueStore()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || value != "v" {
		t.Errorf("expected v, got %q ok=%v err=%v", value, ok, err)
	}
}
