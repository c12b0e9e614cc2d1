//go:build integration

// Package integration provides BDD integration tests using Godog/Cucumber.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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
	"github.com/percetakan-pos/backend/internal/infra/server/router"
	"github.com/percetakan-pos/backend/internal/integration/adapters"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/controller"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/middleware"
	"github.com/percetakan-pos/backend/internal/integration/persistence"
	"github.com/percetakan-pos/backend/internal/integration/persistence/model"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext carries per-scenario state: the wired engine and the last
// response seen by the client.
type testContext struct {
	engine      *gin.Engine
	accessToken string
	status      int
	body        []byte
}

func (tc *testContext) startServer() error {
	_ = os.Setenv("ENV", "test")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
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
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	ctx := context.Background()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := persistence.RunMigrations(ctx, db, quiet); err != nil {
		return fmt.Errorf("failed to run data migrations: %w", err)
	}

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

	if err := persistence.Seed(ctx, db, passwordService, quiet); err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	transactionRepo := persistence.NewTransactionRepository(db)
	customerRepo := persistence.NewCustomerRepository(db)
	productRepo := persistence.NewProductRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	adminRepo := persistence.NewAdminRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	invoiceNumberUseCase := transaction.NewGenerateInvoiceNumberUseCase(transactionRepo)
	backupGuard := backup.NewGuard()

	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewGetTransactionUseCase(transactionRepo),
		transaction.NewCreateTransactionUseCase(transactionRepo, invoiceNumberUseCase),
		transaction.NewUpdateTransactionUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
		transaction.NewAddPaymentUseCase(transactionRepo),
		invoiceNumberUseCase,
	)

	r := router.NewRouter(
		controller.NewHealthController(func() bool { return true }),
		controller.NewAuthController(auth.NewLoginUserUseCase(adminRepo, passwordService, tokenService)),
		transactionController,
		controller.NewInvoiceController(invoice.NewRenderInvoiceUseCase(transactionRepo, settingsRepo)),
		controller.NewCustomerController(
			customer.NewListCustomersUseCase(customerRepo),
			customer.NewSaveCustomerUseCase(customerRepo),
			customer.NewDeleteCustomerUseCase(customerRepo, transactionRepo),
		),
		controller.NewProductController(
			product.NewListProductsUseCase(productRepo),
			product.NewLookupProductUseCase(productRepo),
			product.NewSaveProductUseCase(productRepo),
			product.NewDeleteProductUseCase(productRepo),
		),
		controller.NewExpenseController(
			expense.NewListExpensesUseCase(expenseRepo),
			expense.NewSaveExpenseUseCase(expenseRepo),
			expense.NewDeleteExpenseUseCase(expenseRepo),
		),
		controller.NewAdminController(
			admin.NewListAdminsUseCase(adminRepo),
			admin.NewSaveAdminUseCase(adminRepo, passwordService),
			admin.NewDeleteAdminUseCase(adminRepo),
		),
		controller.NewReportController(
			report.NewGetCashflowUseCase(transactionRepo, expenseRepo),
			report.NewGetProductSalesUseCase(transactionRepo),
			report.NewGetCustomerSummaryUseCase(customerRepo, transactionRepo),
			report.NewGetLedgerUseCase(transactionRepo, expenseRepo),
			report.NewGetDashboardUseCase(transactionRepo),
		),
		controller.NewSettingsController(
			settings.NewGetProfileUseCase(settingsRepo),
			settings.NewUpdateProfileUseCase(settingsRepo),
			settings.NewListInvoiceFormatsUseCase(settingsRepo),
			settings.NewAddInvoiceFormatUseCase(settingsRepo),
		),
		controller.NewBackupController(
			backup.NewExportBackupUseCase(backupGuard, customerRepo, productRepo, transactionRepo, expenseRepo, adminRepo, settingsRepo),
			backup.NewRestoreBackupUseCase(backupGuard, customerRepo, productRepo, transactionRepo, expenseRepo, adminRepo, settingsRepo),
		),
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
	)

	tc.engine = r.Setup("test")
	return nil
}

func (tc *testContext) send(method, path string, body []byte) error {
	if tc.engine == nil {
		if err := tc.startServer(); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	recorder := httptest.NewRecorder()
	tc.engine.ServeHTTP(recorder, req)
	tc.status = recorder.Code
	tc.body = recorder.Body.Bytes()
	return nil
}

func (tc *testContext) bodyField(name string) (any, error) {
	var parsed map[string]any
	if err := json.Unmarshal(tc.body, &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	value, ok := parsed[name]
	if !ok {
		return nil, fmt.Errorf("response has no field %q: %s", name, tc.body)
	}
	return value, nil
}

// Step definitions

func (tc *testContext) aRunningServerWithTheDefaultAdminAccount() error {
	return tc.startServer()
}

func (tc *testContext) theClientLogsInWith(username, password string) error {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	return tc.send(http.MethodPost, "/api/v1/auth/login", body)
}

func (tc *testContext) theClientIsAuthenticated() error {
	if err := tc.theClientLogsInWith("admin", "admin123"); err != nil {
		return err
	}
	if tc.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", tc.status, tc.body)
	}
	token, err := tc.bodyField("accessToken")
	if err != nil {
		return err
	}
	tc.accessToken = token.(string)
	return nil
}

func (tc *testContext) theClientSendsAGETRequestTo(path string) error {
	return tc.send(http.MethodGet, path, nil)
}

func (tc *testContext) theClientSendsAPOSTRequestToWithBody(path string, body *godog.DocString) error {
	return tc.send(http.MethodPost, path, []byte(body.Content))
}

func (tc *testContext) theClientReplaysTheExportedBackup() error {
	exported := make([]byte, len(tc.body))
	copy(exported, tc.body)
	return tc.send(http.MethodPost, "/api/v1/backup", exported)
}

func (tc *testContext) theResponseStatusIs(status int) error {
	if tc.status != status {
		return fmt.Errorf("status = %d, want %d; body: %s", tc.status, status, tc.body)
	}
	return nil
}

func (tc *testContext) theResponseContainsAnAccessToken() error {
	token, err := tc.bodyField("accessToken")
	if err != nil {
		return err
	}
	if s, ok := token.(string); !ok || s == "" {
		return fmt.Errorf("accessToken is empty: %s", tc.body)
	}
	return nil
}

func (tc *testContext) theResponseFieldIs(name, expected string) error {
	value, err := tc.bodyField(name)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q = %q, want %q", name, actual, expected)
	}
	return nil
}

func (tc *testContext) theResponseFieldEndsWith(name, suffix string) error {
	value, err := tc.bodyField(name)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if !strings.HasSuffix(actual, suffix) {
		return fmt.Errorf("field %q = %q, want suffix %q", name, actual, suffix)
	}
	return nil
}

func (tc *testContext) theResponseFieldHasTheCurrentMonthPrefix(name string) error {
	value, err := tc.bodyField(name)
	if err != nil {
		return err
	}
	prefix := time.Now().Format("0601")
	actual := fmt.Sprintf("%v", value)
	if !strings.HasPrefix(actual, prefix) {
		return fmt.Errorf("field %q = %q, want prefix %q", name, actual, prefix)
	}
	return nil
}

// InitializeScenario registers the step definitions for one scenario. Every
// scenario gets its own in-memory database.
func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &testContext{}

	sc.Step(`^a running server with the default admin account$`, tc.aRunningServerWithTheDefaultAdminAccount)
	sc.Step(`^the client logs in with username "([^"]*)" and password "([^"]*)"$`, tc.theClientLogsInWith)
	sc.Step(`^the client is authenticated$`, tc.theClientIsAuthenticated)
	sc.Step(`^the client sends a GET request to "([^"]*)"$`, tc.theClientSendsAGETRequestTo)
	sc.Step(`^the client sends a POST request to "([^"]*)" with body:$`, tc.theClientSendsAPOSTRequestToWithBody)
	sc.Step(`^the client replays the exported backup$`, tc.theClientReplaysTheExportedBackup)
	sc.Step(`^the response status is (\d+)$`, tc.theResponseStatusIs)
	sc.Step(`^the response contains an access token$`, tc.theResponseContainsAnAccessToken)
	sc.Step(`^the response field "([^"]*)" is "([^"]*)"$`, tc.theResponseFieldIs)
	sc.Step(`^the response field "([^"]*)" ends with "([^"]*)"$`, tc.theResponseFieldEndsWith)
	sc.Step(`^the response field "([^"]*)" has the current month prefix$`, tc.theResponseFieldHasTheCurrentMonthPrefix)
}
