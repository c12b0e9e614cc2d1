// Package main is the entry point for the printing shop POS API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/percetakan-pos/backend/config"
	"github.com/percetakan-pos/backend/internal/application/usecase/admin"
	"github.com/percetakan-pos/backend/internal/application/usecase/auth"
	"github.com/percetakan-pos/backend/internal/application/usecase/backup"
	"github.com/percetakan-pos/backend/internal/application/usecase/customer"
	"github.com/percetakan-pos/backend/internal/application/usecase/expense"
	"github.com/percetakan-pos/backend/internal/application/usecase/invoice"
	"github.com/percetakan-pos/backend/internal/application/usecase/product"
	"github.com/percetakan-pos/backend/internal/application/usecase/report"
	"github.com/percetakan-pos/backend/internal/application/usecase/settings"
	"github.com/percetakan-pos/backend/internal/application/usecase/transaction"
	"github.com/percetakan-pos/backend/internal/infra/db"
	"github.com/percetakan-pos/backend/internal/infra/server/router"
	"github.com/percetakan-pos/backend/internal/integration/adapters"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/controller"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/middleware"
	"github.com/percetakan-pos/backend/internal/integration/persistence"
	"github.com/percetakan-pos/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting POS API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewDatabase(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Create schema
	if err := database.AutoMigrate(
		&model.CustomerModel{},
		&model.ProductModel{},
		&model.TransactionModel{},
		&model.TransactionItemModel{},
		&model.ExpenseModel{},
		&model.AdminModel{},
		&model.CompanyProfileModel{},
		&model.InvoiceFormatModel{},
		&model.DataVersionModel{},
	); err != nil {
		slog.Error("Failed to run schema migrations", "error", err)
		os.Exit(1)
	}

	// Apply versioned data migrations
	ctx := context.Background()
	if err := persistence.RunMigrations(ctx, database.DB(), logger); err != nil {
		slog.Error("Failed to run data migrations", "error", err)
		os.Exit(1)
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Seed initial data on first run
	if err := persistence.Seed(ctx, database.DB(), passwordService, logger); err != nil {
		slog.Error("Failed to seed initial data", "error", err)
		os.Exit(1)
	}

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	customerRepo := persistence.NewCustomerRepository(database.DB())
	productRepo := persistence.NewProductRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	adminRepo := persistence.NewAdminRepository(database.DB())
	settingsRepo := persistence.NewSettingsRepository(database.DB())

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(adminRepo, passwordService, tokenService)

	// Create transaction use cases
	invoiceNumberUseCase := transaction.NewGenerateInvoiceNumberUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, invoiceNumberUseCase)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	addPaymentUseCase := transaction.NewAddPaymentUseCase(transactionRepo)

	// Create customer use cases
	listCustomersUseCase := customer.NewListCustomersUseCase(customerRepo)
	saveCustomerUseCase := customer.NewSaveCustomerUseCase(customerRepo)
	deleteCustomerUseCase := customer.NewDeleteCustomerUseCase(customerRepo, transactionRepo)

	// Create product use cases
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	lookupProductUseCase := product.NewLookupProductUseCase(productRepo)
	saveProductUseCase := product.NewSaveProductUseCase(productRepo)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	saveExpenseUseCase := expense.NewSaveExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create admin use cases
	listAdminsUseCase := admin.NewListAdminsUseCase(adminRepo)
	saveAdminUseCase := admin.NewSaveAdminUseCase(adminRepo, passwordService)
	deleteAdminUseCase := admin.NewDeleteAdminUseCase(adminRepo)

	// Create report use cases
	cashflowUseCase := report.NewGetCashflowUseCase(transactionRepo, expenseRepo)
	productSalesUseCase := report.NewGetProductSalesUseCase(transactionRepo)
	customerSummaryUseCase := report.NewGetCustomerSummaryUseCase(customerRepo, transactionRepo)
	ledgerUseCase := report.NewGetLedgerUseCase(transactionRepo, expenseRepo)
	dashboardUseCase := report.NewGetDashboardUseCase(transactionRepo)

	// Create settings use cases
	getProfileUseCase := settings.NewGetProfileUseCase(settingsRepo)
	updateProfileUseCase := settings.NewUpdateProfileUseCase(settingsRepo)
	listFormatsUseCase := settings.NewListInvoiceFormatsUseCase(settingsRepo)
	addFormatUseCase := settings.NewAddInvoiceFormatUseCase(settingsRepo)

	// Create invoice rendering use case
	renderInvoiceUseCase := invoice.NewRenderInvoiceUseCase(transactionRepo, settingsRepo)

	// Create backup use cases sharing one guard so export and restore
	// cannot overlap
	backupGuard := backup.NewGuard()
	exportBackupUseCase := backup.NewExportBackupUseCase(
		backupGuard, customerRepo, productRepo, transactionRepo, expenseRepo, adminRepo, settingsRepo,
	)
	restoreBackupUseCase := backup.NewRestoreBackupUseCase(
		backupGuard, customerRepo, productRepo, transactionRepo, expenseRepo, adminRepo, settingsRepo,
	)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(loginUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		addPaymentUseCase,
		invoiceNumberUseCase,
	)
	invoiceController := controller.NewInvoiceController(renderInvoiceUseCase)
	customerController := controller.NewCustomerController(listCustomersUseCase, saveCustomerUseCase, deleteCustomerUseCase)
	productController := controller.NewProductController(listProductsUseCase, lookupProductUseCase, saveProductUseCase, deleteProductUseCase)
	expenseController := controller.NewExpenseController(listExpensesUseCase, saveExpenseUseCase, deleteExpenseUseCase)
	adminController := controller.NewAdminController(listAdminsUseCase, saveAdminUseCase, deleteAdminUseCase)
	reportController := controller.NewReportController(
		cashflowUseCase,
		productSalesUseCase,
		customerSummaryUseCase,
		ledgerUseCase,
		dashboardUseCase,
	)
	settingsController := controller.NewSettingsController(
		getProfileUseCase,
		updateProfileUseCase,
		listFormatsUseCase,
		addFormatUseCase,
	)
	backupController := controller.NewBackupController(exportBackupUseCase, restoreBackupUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		invoiceController,
		customerController,
		productController,
		expenseController,
		adminController,
		reportController,
		settingsController,
		backupController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
