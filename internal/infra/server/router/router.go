// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/resolvpay/backend/internal/integration/entrypoint/controller"
	"github.com/resolvpay/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	billController      *controller.BillController
	dashboardController *controller.DashboardController
	backupController    *controller.BackupController
	chatController      *controller.ChatController
	expenseController   *controller.ExpenseController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	billController *controller.BillController,
	dashboardController *controller.DashboardController,
	backupController *controller.BackupController,
	chatController *controller.ChatController,
	expenseController *controller.ExpenseController,
) *Router {
	return &Router{
		healthController:    healthController,
		billController:      billController,
		dashboardController: dashboardController,
		backupController:    backupController,
		chatController:      chatController,
		expenseController:   expenseController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Bill routes. Bulk routes are registered before /:id so the
		// literal segments do not collide with the parameter.
		bills := v1.Group("/bills")
		{
			bills.GET("", r.billController.List)
			bills.POST("", r.billController.Create)
			bills.POST("/bulk-update", r.billController.BulkUpdate)
			bills.POST("/bulk-delete", r.billController.BulkDelete)
			bills.POST("/bulk-pay", r.billController.BulkMarkPaid)
			bills.GET("/:id", r.billController.Get)
			bills.PATCH("/:id", r.billController.Update)
			bills.DELETE("/:id", r.billController.Delete)
			bills.POST("/:id/pay", r.billController.MarkPaid)
			bills.POST("/:id/unpay", r.billController.MarkUnpaid)
			bills.POST("/:id/recurrences", r.billController.GenerateRecurrences)
			bills.GET("/:id/payment", r.billController.PaymentHistory)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", r.dashboardController.Stats)
			dashboard.GET("/trend", r.dashboardController.Trend)
			dashboard.GET("/calendar", r.dashboardController.Calendar)
		}

		// Backup routes
		v1.GET("/export/json", r.backupController.ExportJSON)
		v1.GET("/export/csv", r.backupController.ExportCSV)
		v1.POST("/import/json", r.backupController.ImportJSON)

		// Chat assistant routes
		chat := v1.Group("/chat")
		{
			chat.POST("/messages", r.chatController.PostMessage)
			chat.GET("/messages", r.chatController.History)
		}

		// Expense ledger routes
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Add)
		}
	}
}
