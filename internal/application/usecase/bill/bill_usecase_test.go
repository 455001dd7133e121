package bill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/domain/entity"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
	"github.com/resolvpay/backend/internal/integration/persistence"
)

// fixedClock pins "today" so status derivation is deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testToday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) adapter.BillRepository {
	t.Helper()
	repo := persistence.NewBillRepository(persistence.NewMemoryKeyValueStore(), "test:bills")
	if err := repo.Load(context.Background()); err != nil {
		t.Fatalf("failed to load empty repo: %v", err)
	}
	return repo
}

func mustCreate(t *testing.T, repo adapter.BillRepository, name string, amount int64, dueDate time.Time, frequency entity.BillFrequency) *BillOutput {
	t.Helper()
	uc := NewCreateBillUseCase(repo, fixedClock{testToday})
	a := decimal.NewFromInt(amount)
	out, err := uc.Execute(context.Background(), CreateBillInput{
		Name:      name,
		Amount:    &a,
		DueDate:   &dueDate,
		Frequency: frequency,
	})
	if err != nil {
		t.Fatalf("failed to create bill %q: %v", name, err)
	}
	return out.Bill
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateBill(t *testing.T) {
	t.Run("assigns sequential IDs", func(t *testing.T) {
		repo := newTestRepo(t)
		first := mustCreate(t, repo, "Rent", 1200, date(2026, 4, 1), "")
		second := mustCreate(t, repo, "Power", 80, date(2026, 3, 20), "")

		if first.ID != 1 || second.ID != 2 {
			t.Errorf("expected IDs 1 and 2, got %d and %d", first.ID, second.ID)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc := NewCreateBillUseCase(newTestRepo(t), fixedClock{testToday})
		_, err := uc.Execute(context.Background(), CreateBillInput{Name: "Rent"})
		if !errors.Is(err, domainerror.ErrMissingBillFields) {
			t.Errorf("expected ErrMissingBillFields, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		uc := NewCreateBillUseCase(newTestRepo(t), fixedClock{testToday})
		amount := decimal.NewFromInt(-5)
		due := date(2026, 4, 1)
		_, err := uc.Execute(context.Background(), CreateBillInput{Name: "Rent", Amount: &amount, DueDate: &due})
		if !errors.Is(err, domainerror.ErrInvalidBillAmount) {
			t.Errorf("expected ErrInvalidBillAmount, got %v", err)
		}
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		uc := NewCreateBillUseCase(newTestRepo(t), fixedClock{testToday})
		amount := decimal.NewFromInt(10)
		due := date(2026, 4, 1)
		_, err := uc.Execute(context.Background(), CreateBillInput{
			Name: "Rent", Amount: &amount, DueDate: &due, Frequency: "fortnightly",
		})
		if !errors.Is(err, domainerror.ErrInvalidBillFrequency) {
			t.Errorf("expected ErrInvalidBillFrequency, got %v", err)
		}
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		repo := newTestRepo(t)
		out := mustCreate(t, repo, "Free trial", 0, date(2026, 4, 1), "")
		if !out.Amount.IsZero() {
			t.Errorf("expected zero amount, got %v", out.Amount)
		}
	})
}

func TestUpdateBill(t *testing.T) {
	t.Run("applies only supplied fields", func(t *testing.T) {
		repo := newTestRepo(t)
		created := mustCreate(t, repo, "Rent", 1200, date(2026, 4, 1), "")

		uc := NewUpdateBillUseCase(repo, fixedClock{testToday})
		name := "Rent (new lease)"
		out, err := uc.Execute(context.Background(), UpdateBillInput{
			BillID:  created.ID,
			Updates: BillUpdates{Name: &name},
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}

		if out.Bill.Name != name {
			t.Errorf("expected name %q, got %q", name, out.Bill.Name)
		}
		if !out.Bill.Amount.Equal(created.Amount) {
			t.Errorf("expected amount untouched, got %v", out.Bill.Amount)
		}
	})

	t.Run("unknown bill", func(t *testing.T) {
		uc := NewUpdateBillUseCase(newTestRepo(t), fixedClock{testToday})
		name := "x"
		_, err := uc.Execute(context.Background(), UpdateBillInput{BillID: 99, Updates: BillUpdates{Name: &name}})
		if !errors.Is(err, domainerror.ErrBillNotFound) {
			t.Errorf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		repo := newTestRepo(t)
		created := mustCreate(t, repo, "Rent", 1200, date(2026, 4, 1), "")

		uc := NewUpdateBillUseCase(repo, fixedClock{testToday})
		amount := decimal.NewFromInt(-1)
		_, err := uc.Execute(context.Background(), UpdateBillInput{
			BillID:  created.ID,
			Updates: BillUpdates{Amount: &amount},
		})
		if !errors.Is(err, domainerror.ErrInvalidBillAmount) {
			t.Errorf("expected ErrInvalidBillAmount, got %v", err)
		}
	})
}

func TestMarkPaidAndUnpaid(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, "Internet", 60, date(2026, 3, 15), "")

	payUC := NewMarkPaidUseCase(repo, fixedClock{testToday})
	out, err := payUC.Execute(context.Background(), MarkPaidInput{BillID: created.ID})
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if out.Bill.Status != entity.StatusPaid {
		t.Errorf("expected status paid, got %q", out.Bill.Status)
	}
	if out.Bill.AmountPaid == nil || !out.Bill.AmountPaid.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected amount paid to default to bill amount, got %v", out.Bill.AmountPaid)
	}

	unpayUC := NewMarkUnpaidUseCase(repo, fixedClock{testToday})
	out2, err := unpayUC.Execute(context.Background(), MarkUnpaidInput{BillID: created.ID})
	if err != nil {
		t.Fatalf("mark unpaid failed: %v", err)
	}
	if out2.Bill.Paid || out2.Bill.AmountPaid != nil || out2.Bill.DatePaid != nil {
		t.Error("expected payment fields cleared together with the flag")
	}
}

func TestDeleteBill(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, "Internet", 60, date(2026, 3, 15), "")

	uc := NewDeleteBillUseCase(repo)
	if err := uc.Execute(context.Background(), DeleteBillInput{BillID: created.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if repo.Count() != 0 {
		t.Errorf("expected empty collection, got %d bills", repo.Count())
	}

	err := uc.Execute(context.Background(), DeleteBillInput{BillID: created.ID})
	if !errors.Is(err, domainerror.ErrBillNotFound) {
		t.Errorf("expected ErrBillNotFound on second delete, got %v", err)
	}
}

func TestGenerateRecurring(t *testing.T) {
	t.Run("produces count-1 occurrences", func(t *testing.T) {
		repo := newTestRepo(t)
		template := mustCreate(t, repo, "Gym", 30, date(2026, 3, 1), entity.FrequencyMonthly)

		uc := NewGenerateRecurringUseCase(repo, fixedClock{testToday}, 0)
		out, err := uc.Execute(context.Background(), GenerateRecurringInput{TemplateID: template.ID, Count: 4})
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		if len(out.Generated) != 3 {
			t.Fatalf("expected 3 occurrences, got %d", len(out.Generated))
		}
		wantDates := []time.Time{date(2026, 4, 1), date(2026, 5, 1), date(2026, 6, 1)}
		for i, occ := range out.Generated {
			if !occ.DueDate.Equal(wantDates[i]) {
				t.Errorf("occurrence %d: expected due %v, got %v", i, wantDates[i], occ.DueDate)
			}
			if occ.RecurringParentID == nil || *occ.RecurringParentID != template.ID {
				t.Errorf("occurrence %d: expected parent %d, got %v", i, template.ID, occ.RecurringParentID)
			}
			if occ.Paid {
				t.Errorf("occurrence %d: expected unpaid", i)
			}
		}
	})

	t.Run("zero count uses the default", func(t *testing.T) {
		repo := newTestRepo(t)
		template := mustCreate(t, repo, "Gym", 30, date(2026, 3, 1), entity.FrequencyMonthly)

		uc := NewGenerateRecurringUseCase(repo, fixedClock{testToday}, 0)
		out, err := uc.Execute(context.Background(), GenerateRecurringInput{TemplateID: template.ID})
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(out.Generated) != DefaultRecurringCount-1 {
			t.Errorf("expected %d occurrences, got %d", DefaultRecurringCount-1, len(out.Generated))
		}
	})

	t.Run("zero count honors the configured default", func(t *testing.T) {
		repo := newTestRepo(t)
		template := mustCreate(t, repo, "Gym", 30, date(2026, 3, 1), entity.FrequencyMonthly)

		uc := NewGenerateRecurringUseCase(repo, fixedClock{testToday}, 6)
		out, err := uc.Execute(context.Background(), GenerateRecurringInput{TemplateID: template.ID})
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(out.Generated) != 5 {
			t.Errorf("expected 5 occurrences, got %d", len(out.Generated))
		}
	})

	t.Run("one-time bill is rejected", func(t *testing.T) {
		repo := newTestRepo(t)
		template := mustCreate(t, repo, "Tax", 500, date(2026, 4, 15), entity.FrequencyOneTime)

		uc := NewGenerateRecurringUseCase(repo, fixedClock{testToday}, 0)
		_, err := uc.Execute(context.Background(), GenerateRecurringInput{TemplateID: template.ID, Count: 3})
		if !errors.Is(err, domainerror.ErrNotRecurringBill) {
			t.Errorf("expected ErrNotRecurringBill, got %v", err)
		}
	})

	t.Run("count below two is rejected", func(t *testing.T) {
		repo := newTestRepo(t)
		template := mustCreate(t, repo, "Gym", 30, date(2026, 3, 1), entity.FrequencyMonthly)

		uc := NewGenerateRecurringUseCase(repo, fixedClock{testToday}, 0)
		_, err := uc.Execute(context.Background(), GenerateRecurringInput{TemplateID: template.ID, Count: 1})
		if !errors.Is(err, domainerror.ErrInvalidGenerateCount) {
			t.Errorf("expected ErrInvalidGenerateCount, got %v", err)
		}
	})
}

func TestBulkOperations(t *testing.T) {
	t.Run("bulk mark paid touches every bill", func(t *testing.T) {
		repo := newTestRepo(t)
		first := mustCreate(t, repo, "A", 10, date(2026, 3, 15), "")
		second := mustCreate(t, repo, "B", 20, date(2026, 3, 16), "")

		uc := NewBulkMarkPaidUseCase(repo, fixedClock{testToday})
		out, err := uc.Execute(context.Background(), BulkMarkPaidInput{BillIDs: []int64{first.ID, second.ID}})
		if err != nil {
			t.Fatalf("bulk mark paid failed: %v", err)
		}
		if len(out.Updated) != 2 {
			t.Fatalf("expected 2 updated, got %d", len(out.Updated))
		}
		for _, b := range out.Updated {
			if !b.Paid {
				t.Errorf("bill %d: expected paid", b.ID)
			}
		}
	})

	t.Run("one unknown ID fails the whole batch", func(t *testing.T) {
		repo := newTestRepo(t)
		first := mustCreate(t, repo, "A", 10, date(2026, 3, 15), "")

		uc := NewBulkDeleteBillsUseCase(repo)
		_, err := uc.Execute(context.Background(), BulkDeleteBillsInput{BillIDs: []int64{first.ID, 99}})
		if !errors.Is(err, domainerror.ErrBillIDsNotFound) {
			t.Fatalf("expected ErrBillIDsNotFound, got %v", err)
		}
		if repo.Count() != 1 {
			t.Errorf("expected nothing deleted, got %d bills", repo.Count())
		}
	})

	t.Run("duplicate IDs delete only once", func(t *testing.T) {
		repo := newTestRepo(t)
		first := mustCreate(t, repo, "A", 10, date(2026, 3, 15), "")
		second := mustCreate(t, repo, "B", 20, date(2026, 3, 16), "")

		uc := NewBulkDeleteBillsUseCase(repo)
		out, err := uc.Execute(context.Background(), BulkDeleteBillsInput{BillIDs: []int64{first.ID, first.ID, second.ID}})
		if err != nil {
			t.Fatalf("bulk delete failed: %v", err)
		}
		if out.DeletedCount != 2 {
			t.Errorf("expected 2 deletions reported, got %d", out.DeletedCount)
		}
		if repo.Count() != 0 {
			t.Errorf("expected empty collection, got %d bills", repo.Count())
		}
	})

	t.Run("empty ID list is rejected", func(t *testing.T) {
		uc := NewBulkMarkPaidUseCase(newTestRepo(t), fixedClock{testToday})
		_, err := uc.Execute(context.Background(), BulkMarkPaidInput{})
		if !errors.Is(err, domainerror.ErrEmptyBillIDs) {
			t.Errorf("expected ErrEmptyBillIDs, got %v", err)
		}
	})

	t.Run("bulk update applies the whitelist to every bill", func(t *testing.T) {
		repo := newTestRepo(t)
		first := mustCreate(t, repo, "A", 10, date(2026, 3, 15), "")
		second := mustCreate(t, repo, "B", 20, date(2026, 3, 16), "")

		uc := NewBulkUpdateBillsUseCase(repo, fixedClock{testToday})
		category := "Utilities"
		out, err := uc.Execute(context.Background(), BulkUpdateBillsInput{
			BillIDs: []int64{first.ID, second.ID},
			Updates: BillUpdates{Category: &category},
		})
		if err != nil {
			t.Fatalf("bulk update failed: %v", err)
		}
		for _, b := range out.Updated {
			if b.Category != category {
				t.Errorf("bill %d: expected category %q, got %q", b.ID, category, b.Category)
			}
		}
	})
}

func TestListBills(t *testing.T) {
	seed := func(t *testing.T) adapter.BillRepository {
		repo := newTestRepo(t)
		mustCreate(t, repo, "Rent", 1200, date(2026, 3, 12), entity.FrequencyMonthly)
		mustCreate(t, repo, "Netflix", 15, date(2026, 3, 25), entity.FrequencyMonthly)
		mustCreate(t, repo, "Car insurance", 90, date(2026, 3, 5), entity.FrequencyQuarterly)
		return repo
	}

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		uc := NewListBillsUseCase(seed(t), fixedClock{testToday})
		out, err := uc.Execute(context.Background(), ListBillsInput{Search: "netflix"})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if out.Total != 1 || out.Bills[0].Name != "Netflix" {
			t.Errorf("expected only Netflix, got %d bills", out.Total)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		uc := NewListBillsUseCase(seed(t), fixedClock{testToday})
		status := entity.StatusOverdue
		out, err := uc.Execute(context.Background(), ListBillsInput{Status: &status})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if out.Total != 1 || out.Bills[0].Name != "Car insurance" {
			t.Errorf("expected only the overdue bill, got %d bills", out.Total)
		}
	})

	t.Run("amount range filter", func(t *testing.T) {
		uc := NewListBillsUseCase(seed(t), fixedClock{testToday})
		min := decimal.NewFromInt(50)
		max := decimal.NewFromInt(100)
		out, err := uc.Execute(context.Background(), ListBillsInput{MinAmount: &min, MaxAmount: &max})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if out.Total != 1 || out.Bills[0].Name != "Car insurance" {
			t.Errorf("expected one bill in range, got %d", out.Total)
		}
	})

	t.Run("sort by amount descending", func(t *testing.T) {
		uc := NewListBillsUseCase(seed(t), fixedClock{testToday})
		out, err := uc.Execute(context.Background(), ListBillsInput{SortBy: "amount", SortOrder: "desc"})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if out.Bills[0].Name != "Rent" || out.Bills[2].Name != "Netflix" {
			t.Errorf("unexpected order: %s, %s, %s", out.Bills[0].Name, out.Bills[1].Name, out.Bills[2].Name)
		}
	})

	t.Run("unknown sort key preserves order", func(t *testing.T) {
		uc := NewListBillsUseCase(seed(t), fixedClock{testToday})
		out, err := uc.Execute(context.Background(), ListBillsInput{SortBy: "color"})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if out.Bills[0].Name != "Rent" {
			t.Errorf("expected insertion order preserved, got %s first", out.Bills[0].Name)
		}
	})
}
