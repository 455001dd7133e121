// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/resolvpay/backend/config"
	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/application/usecase/backup"
	"github.com/resolvpay/backend/internal/application/usecase/bill"
	"github.com/resolvpay/backend/internal/application/usecase/chat"
	"github.com/resolvpay/backend/internal/application/usecase/dashboard"
	"github.com/resolvpay/backend/internal/application/usecase/expense"
	"github.com/resolvpay/backend/internal/infra/kv"
	"github.com/resolvpay/backend/internal/infra/server/router"
	"github.com/resolvpay/backend/internal/integration/entrypoint/controller"
	"github.com/resolvpay/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Router      *router.Router
	BillRepo    adapter.BillRepository
	ExpenseRepo adapter.ExpenseRepository
}

// NewInjector creates a new dependency injector with all dependencies
// wired. A nil redisConn means the in-memory fallback backend.
func NewInjector(cfg *config.Config, redisConn *kv.Redis) *Injector {
	// Create the key-value backend and repositories
	var store adapter.KeyValueStore
	if redisConn != nil {
		store = persistence.NewRedisKeyValueStore(redisConn.Client())
	} else {
		store = persistence.NewMemoryKeyValueStore()
	}

	billRepo := persistence.NewBillRepository(store, cfg.Storage.BillsKey)
	expenseRepo := persistence.NewExpenseRepository(store, cfg.Storage.ExpensesKey)
	clock := adapter.SystemClock{}

	// Create bill use cases
	listBillsUseCase := bill.NewListBillsUseCase(billRepo, clock)
	getBillUseCase := bill.NewGetBillUseCase(billRepo, clock)
	createBillUseCase := bill.NewCreateBillUseCase(billRepo, clock)
	updateBillUseCase := bill.NewUpdateBillUseCase(billRepo, clock)
	deleteBillUseCase := bill.NewDeleteBillUseCase(billRepo)
	markPaidUseCase := bill.NewMarkPaidUseCase(billRepo, clock)
	markUnpaidUseCase := bill.NewMarkUnpaidUseCase(billRepo, clock)
	generateUseCase := bill.NewGenerateRecurringUseCase(billRepo, clock, cfg.Recurring.DefaultCount)
	paymentHistoryUseCase := bill.NewPaymentHistoryUseCase(billRepo)
	bulkUpdateUseCase := bill.NewBulkUpdateBillsUseCase(billRepo, clock)
	bulkDeleteUseCase := bill.NewBulkDeleteBillsUseCase(billRepo)
	bulkMarkPaidUseCase := bill.NewBulkMarkPaidUseCase(billRepo, clock)

	// Create dashboard use cases
	statsUseCase := dashboard.NewGetStatsUseCase(billRepo, clock)
	trendUseCase := dashboard.NewGetSpendingTrendUseCase(billRepo, clock)
	calendarUseCase := dashboard.NewGetCalendarDataUseCase(billRepo, clock)

	// Create backup use cases
	exportJSONUseCase := backup.NewExportJSONUseCase(billRepo)
	exportCSVUseCase := backup.NewExportCSVUseCase(billRepo, clock)
	importJSONUseCase := backup.NewImportJSONUseCase(billRepo, clock)

	// Create assistant and expense use cases
	processMessageUseCase := chat.NewProcessMessageUseCase(billRepo, expenseRepo, clock, cfg.Assistant.HistoryLimit)
	addExpenseUseCase := expense.NewAddExpenseUseCase(expenseRepo, clock)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		if redisConn == nil {
			return true
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return redisConn.HealthCheck(ctx) == nil
	})

	billController := controller.NewBillController(
		listBillsUseCase,
		getBillUseCase,
		createBillUseCase,
		updateBillUseCase,
		deleteBillUseCase,
		markPaidUseCase,
		markUnpaidUseCase,
		generateUseCase,
		paymentHistoryUseCase,
		bulkUpdateUseCase,
		bulkDeleteUseCase,
		bulkMarkPaidUseCase,
	)

	dashboardController := controller.NewDashboardController(
		statsUseCase,
		trendUseCase,
		calendarUseCase,
		clock,
	)

	backupController := controller.NewBackupController(
		exportJSONUseCase,
		exportCSVUseCase,
		importJSONUseCase,
	)

	chatController := controller.NewChatController(processMessageUseCase)
	expenseController := controller.NewExpenseController(addExpenseUseCase, listExpensesUseCase)

	// Create router
	r := router.NewRouter(
		healthController,
		billController,
		dashboardController,
		backupController,
		chatController,
		expenseController,
	)

	return &Injector{
		Config:      cfg,
		Router:      r,
		BillRepo:    billRepo,
		ExpenseRepo: expenseRepo,
	}
}
