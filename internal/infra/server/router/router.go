// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/percetakan-pos/backend/internal/integration/entrypoint/controller"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	invoiceController     *controller.InvoiceController
	customerController    *controller.CustomerController
	productController     *controller.ProductController
	expenseController     *controller.ExpenseController
	adminController       *controller.AdminController
	reportController      *controller.ReportController
	settingsController    *controller.SettingsController
	backupController      *controller.BackupController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	invoiceController *controller.InvoiceController,
	customerController *controller.CustomerController,
	productController *controller.ProductController,
	expenseController *controller.ExpenseController,
	adminController *controller.AdminController,
	reportController *controller.ReportController,
	settingsController *controller.SettingsController,
	backupController *controller.BackupController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		invoiceController:     invoiceController,
		customerController:    customerController,
		productController:     productController,
		expenseController:     expenseController,
		adminController:       adminController,
		reportController:      reportController,
		settingsController:    settingsController,
		backupController:      backupController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/next-invoice-number", r.transactionController.NextInvoiceNumber)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/:id/payments", r.transactionController.AddPayment)

				if r.invoiceController != nil {
					transactions.GET("/:id/invoice", r.invoiceController.Render)
				}
			}
		}

		// Customer routes (require authentication)
		if r.customerController != nil && r.authMiddleware != nil {
			customers := v1.Group("/customers")
			customers.Use(r.authMiddleware.Authenticate())
			{
				customers.GET("", r.customerController.List)
				customers.POST("", r.customerController.Create)
				customers.PUT("/:id", r.customerController.Update)
				customers.DELETE("/:id", r.customerController.Delete)
			}
		}

		// Product routes (require authentication)
		if r.productController != nil && r.authMiddleware != nil {
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate())
			{
				products.GET("", r.productController.List)
				products.GET("/lookup", r.productController.Lookup)
				products.POST("", r.productController.Create)
				products.PUT("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Admin account routes (require authentication)
		if r.adminController != nil && r.authMiddleware != nil {
			admins := v1.Group("/admins")
			admins.Use(r.authMiddleware.Authenticate())
			{
				admins.GET("", r.adminController.List)
				admins.POST("", r.adminController.Create)
				admins.PUT("/:id", r.adminController.Update)
				admins.DELETE("/:id", r.adminController.Delete)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/cashflow", r.reportController.Cashflow)
				reports.GET("/product-sales", r.reportController.ProductSales)
				reports.GET("/customers/:id", r.reportController.CustomerSummary)
				reports.GET("/ledger", r.reportController.Ledger)
				reports.GET("/dashboard", r.reportController.Dashboard)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("/profile", r.settingsController.GetProfile)
				settings.PUT("/profile", r.settingsController.UpdateProfile)
				settings.GET("/invoice-formats", r.settingsController.ListInvoiceFormats)
				settings.POST("/invoice-formats", r.settingsController.AddInvoiceFormat)
			}
		}

		// Backup routes (require authentication)
		if r.backupController != nil && r.authMiddleware != nil {
			backup := v1.Group("/backup")
			backup.Use(r.authMiddleware.Authenticate())
			{
				backup.GET("", r.backupController.Export)
				backup.POST("", r.backupController.Restore)
			}
		}
	}
}
