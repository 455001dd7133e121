package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/domain/entity"
	"github.com/resolvpay/backend/internal/integration/persistence"
)

// registerBillSteps registers collection seeding and storage assertion steps.
func registerBillSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a bill "([^"]*)" of amount "([^"]*)" due on "([^"]*)" exists$`, aBillExists)
	ctx.Step(`^a paid bill "([^"]*)" of amount "([^"]*)" due on "([^"]*)" exists$`, aPaidBillExists)
	ctx.Step(`^a "([^"]*)" bill "([^"]*)" of amount "([^"]*)" due on "([^"]*)" exists$`, aRecurringBillExists)
	ctx.Step(`^the store should contain (\d+) bills?$`, theStoreShouldContainBills)
	ctx.Step(`^the store should contain (\d+) expenses?$`, theStoreShouldContainExpenses)
}

func seedBill(ctx context.Context, name, amount, dueDate string, frequency entity.BillFrequency, paid bool) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}

	repo := tc.injector.BillRepo
	bill := entity.NewBill(repo.NextID(), name, value, due, "", frequency, false, "", "")
	if paid {
		bill.MarkPaid(nil, nil, time.Now().UTC())
	}
	repo.Insert(bill)
	return repo.Save(ctx)
}

func aBillExists(ctx context.Context, name, amount, dueDate string) error {
	return seedBill(ctx, name, amount, dueDate, entity.FrequencyOneTime, false)
}

func aPaidBillExists(ctx context.Context, name, amount, dueDate string) error {
	return seedBill(ctx, name, amount, dueDate, entity.FrequencyOneTime, true)
}

func aRecurringBillExists(ctx context.Context, frequency, name, amount, dueDate string) error {
	f := entity.BillFrequency(frequency)
	if !entity.IsValidFrequency(f) {
		return fmt.Errorf("unknown frequency %q", frequency)
	}
	return seedBill(ctx, name, amount, dueDate, f, false)
}

// theStoreShouldContainBills loads a fresh repository over the shared
// backend so the assertion sees what was actually persisted, not the
// serving repository's in-memory state.
func theStoreShouldContainBills(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	store := persistence.NewRedisKeyValueStore(redisConn.Client())
	repo := persistence.NewBillRepository(store, tc.cfg.Storage.BillsKey)
	if err := repo.Load(ctx); err != nil {
		return fmt.Errorf("failed to load persisted bills: %w", err)
	}
	if repo.Count() != expected {
		return fmt.Errorf("expected %d persisted bills, got %d", expected, repo.Count())
	}
	return nil
}

func theStoreShouldContainExpenses(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	store := persistence.NewRedisKeyValueStore(redisConn.Client())
	repo := persistence.NewExpenseRepository(store, tc.cfg.Storage.ExpensesKey)
	if err := repo.Load(ctx); err != nil {
		return fmt.Errorf("failed to load persisted expenses: %w", err)
	}
	if got := len(repo.All()); got != expected {
		return fmt.Errorf("expected %d persisted expenses, got %d", expected, got)
	}
	return nil
}
