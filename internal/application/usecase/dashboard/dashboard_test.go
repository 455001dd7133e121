package dashboard

import (
	"context"
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

func seedRepo(t *testing.T) adapter.BillRepository {
	t.Helper()
	repo := persistence.NewBillRepository(persistence.NewMemoryKeyValueStore(), "test:bills")
	if err := repo.Load(context.Background()); err != nil {
		t.Fatalf("failed to load empty repo: %v", err)
	}

	add := func(name string, amount int64, dueDate time.Time, category string, frequency entity.BillFrequency, paid bool) {
		bill := entity.NewBill(repo.NextID(), name, decimal.NewFromInt(amount), dueDate, category, frequency, false, "", "")
		if paid {
			bill.MarkPaid(nil, nil, testToday)
		}
		repo.Insert(bill)
	}

	add("Rent", 1200, date(2026, 3, 12), "Rent/Mortgage", entity.FrequencyMonthly, false)
	add("Netflix", 15, date(2026, 3, 25), "Subscriptions", entity.FrequencyMonthly, false)
	add("Car insurance", 90, date(2026, 3, 5), "Insurance", entity.FrequencyQuarterly, false)
	add("Power", 80, date(2026, 2, 20), "Utilities", entity.FrequencyMonthly, true)
	return repo
}

func TestGetStats(t *testing.T) {
	uc := NewGetStatsUseCase(seedRepo(t), fixedClock{testToday})
	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if out.TotalBills != 4 {
		t.Errorf("expected 4 total bills, got %d", out.TotalBills)
	}
	if out.ActiveBills != 3 || out.PaidBills != 1 {
		t.Errorf("expected 3 active and 1 paid, got %d and %d", out.ActiveBills, out.PaidBills)
	}
	if !out.TotalAmount.Equal(decimal.NewFromInt(1305)) {
		t.Errorf("expected unpaid total 1305, got %v", out.TotalAmount)
	}
	if !out.AverageAmount.Equal(decimal.NewFromInt(435)) {
		t.Errorf("expected average 435, got %v", out.AverageAmount)
	}
	if !out.DueThisMonth.Equal(decimal.NewFromInt(1305)) {
		t.Errorf("expected 1305 due this month, got %v", out.DueThisMonth)
	}
	if out.Overdue != 1 {
		t.Errorf("expected 1 overdue, got %d", out.Overdue)
	}
	if out.DueSoon != 1 {
		t.Errorf("expected 1 due soon, got %d", out.DueSoon)
	}

	if group, ok := out.ByCategory["Subscriptions"]; !ok || group.Count != 1 || !group.Total.Equal(decimal.NewFromInt(15)) {
		t.Errorf("unexpected Subscriptions group: %+v", group)
	}
	if group, ok := out.ByFrequency[string(entity.FrequencyMonthly)]; !ok || group.Count != 3 {
		t.Errorf("expected 3 monthly bills in frequency group, got %+v", group)
	}
}

func TestGetStats_EmptyCollection(t *testing.T) {
	repo := persistence.NewBillRepository(persistence.NewMemoryKeyValueStore(), "test:bills")
	uc := NewGetStatsUseCase(repo, fixedClock{testToday})
	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if out.TotalBills != 0 || !out.AverageAmount.IsZero() {
		t.Errorf("expected zeroed stats, got %+v", out)
	}
}

func TestGetSpendingTrend(t *testing.T) {
	uc := NewGetSpendingTrendUseCase(seedRepo(t), fixedClock{testToday})
	out, err := uc.Execute(context.Background(), GetSpendingTrendInput{Months: 3})
	if err != nil {
		t.Fatalf("trend failed: %v", err)
	}

	if len(out.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(out.Points))
	}
	wantMonths := []string{"2026-01", "2026-02", "2026-03"}
	for i, p := range out.Points {
		if p.Month != wantMonths[i] {
			t.Errorf("point %d: expected month %s, got %s", i, wantMonths[i], p.Month)
		}
	}
	if !out.Points[0].Total.IsZero() {
		t.Errorf("expected empty month to contribute zero, got %v", out.Points[0].Total)
	}
	if !out.Points[1].Total.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected February total 80, got %v", out.Points[1].Total)
	}
	if !out.Points[2].Total.Equal(decimal.NewFromInt(1305)) {
		t.Errorf("expected March total 1305, got %v", out.Points[2].Total)
	}
}

func TestGetCalendarData(t *testing.T) {
	uc := NewGetCalendarDataUseCase(seedRepo(t), fixedClock{testToday})
	out, err := uc.Execute(context.Background(), GetCalendarDataInput{Month: time.March, Year: 2026})
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}

	if len(out.Entries) != 3 {
		t.Fatalf("expected 3 entries for March, got %d", len(out.Entries))
	}

	byDay := map[int]CalendarEntry{}
	for _, e := range out.Entries {
		byDay[e.Day] = e
	}
	if e, ok := byDay[5]; !ok || e.Status != entity.StatusOverdue {
		t.Errorf("expected day 5 overdue, got %+v", e)
	}
	if e, ok := byDay[12]; !ok || e.Status != entity.StatusDueSoon {
		t.Errorf("expected day 12 due soon, got %+v", e)
	}
	if e, ok := byDay[25]; !ok || e.Status != entity.StatusUpcoming {
		t.Errorf("expected day 25 upcoming, got %+v", e)
	}
}
