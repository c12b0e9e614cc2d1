// Package backup contains the snapshot export and restore use cases.
package backup

import (
	"context"

	"github.com/percetakan-pos/backend/internal/application/adapter"
)

// ExportBackupOutput represents the output of a full snapshot export.
type ExportBackupOutput struct {
	Document *Document
}

// ExportBackupUseCase serializes every collection into one backup document.
type ExportBackupUseCase struct {
	guard           *Guard
	customerRepo    adapter.CustomerRepository
	productRepo     adapter.ProductRepository
	transactionRepo adapter.TransactionRepository
	expenseRepo     adapter.ExpenseRepository
	adminRepo       adapter.AdminRepository
	settingsRepo    adapter.SettingsRepository
}

// NewExportBackupUseCase creates a new ExportBackupUseCase instance.
func NewExportBackupUseCase(
	guard *Guard,
	customerRepo adapter.CustomerRepository,
	productRepo adapter.ProductRepository,
	transactionRepo adapter.TransactionRepository,
	expenseRepo adapter.ExpenseRepository,
	adminRepo adapter.AdminRepository,
	settingsRepo adapter.SettingsRepository,
) *ExportBackupUseCase {
	return &ExportBackupUseCase{
		guard:           guard,
		customerRepo:    customerRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
		adminRepo:       adminRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute gathers every collection into a single document. Every key is
// always present in an export, even when its collection is empty.
func (uc *ExportBackupUseCase) Execute(ctx context.Context) (*ExportBackupOutput, error) {
	if err := uc.guard.Acquire(); err != nil {
		return nil, err
	}
	defer uc.guard.Release()

	customers, err := uc.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := uc.adminRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := uc.settingsRepo.GetCompanyProfile(ctx)
	if err != nil {
		return nil, err
	}
	formats, err := uc.settingsRepo.GetInvoiceFormats(ctx)
	if err != nil {
		return nil, err
	}
	version, err := uc.settingsRepo.GetDataVersion(ctx)
	if err != nil {
		return nil, err
	}

	document := &Document{
		Customers:      make([]CustomerRecord, 0, len(customers)),
		Products:       make([]ProductRecord, 0, len(products)),
		Transactions:   make([]TransactionRecord, 0, len(transactions)),
		Expenses:       make([]ExpenseRecord, 0, len(expenses)),
		CompanyProfile: profileRecord(profile),
		InvoiceFormats: append([]string{}, formats...),
		Admins:         make([]AdminRecord, 0, len(admins)),
		DataVersion:    &version,
	}
	for _, c := range customers {
		document.Customers = append(document.Customers, customerRecord(c))
	}
	for _, p := range products {
		document.Products = append(document.Products, productRecord(p))
	}
	for _, t := range transactions {
		document.Transactions = append(document.Transactions, transactionRecord(t))
	}
	for _, e := range expenses {
		document.Expenses = append(document.Expenses, expenseRecord(e))
	}
	for _, a := range admins {
		document.Admins = append(document.Admins, adminRecord(a))
	}

	return &ExportBackupOutput{Document: document}, nil
}
