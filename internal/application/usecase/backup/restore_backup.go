// Package backup contains the snapshot export and restore use cases.
package backup

import (
	"context"
	"encoding/json"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// RestoreBackupInput carries the raw uploaded document.
type RestoreBackupInput struct {
	Document []byte
}

// RestoreBackupOutput reports which collections were overwritten.
type RestoreBackupOutput struct {
	RestoredKeys []string
}

// RestoreBackupUseCase overwrites local collections from a backup document.
// Validation happens before the first write: a malformed or empty document
// leaves existing data untouched.
type RestoreBackupUseCase struct {
	guard           *Guard
	customerRepo    adapter.CustomerRepository
	productRepo     adapter.ProductRepository
	transactionRepo adapter.TransactionRepository
	expenseRepo     adapter.ExpenseRepository
	adminRepo       adapter.AdminRepository
	settingsRepo    adapter.SettingsRepository
}

// NewRestoreBackupUseCase creates a new RestoreBackupUseCase instance.
func NewRestoreBackupUseCase(
	guard *Guard,
	customerRepo adapter.CustomerRepository,
	productRepo adapter.ProductRepository,
	transactionRepo adapter.TransactionRepository,
	expenseRepo adapter.ExpenseRepository,
	adminRepo adapter.AdminRepository,
	settingsRepo adapter.SettingsRepository,
) *RestoreBackupUseCase {
	return &RestoreBackupUseCase{
		guard:           guard,
		customerRepo:    customerRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
		adminRepo:       adminRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute validates the uploaded document and replaces each collection it
// contains. Collections absent from the document are left alone.
func (uc *RestoreBackupUseCase) Execute(ctx context.Context, input RestoreBackupInput) (*RestoreBackupOutput, error) {
	if err := uc.guard.Acquire(); err != nil {
		return nil, err
	}
	defer uc.guard.Release()

	// Must be a JSON object, not "null", an array or a scalar.
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(input.Document, &shape); err != nil || shape == nil {
		return nil, domainerror.ErrInvalidBackupDocument
	}

	var document Document
	if err := json.Unmarshal(input.Document, &document); err != nil {
		return nil, domainerror.ErrInvalidBackupDocument
	}
	if document.IsEmpty() {
		return nil, domainerror.ErrInvalidBackupDocument
	}

	restored := make([]string, 0, 8)

	if document.Customers != nil {
		customers := make([]*entity.Customer, len(document.Customers))
		for i, r := range document.Customers {
			customers[i] = r.toEntity()
		}
		if err := uc.customerRepo.ReplaceAll(ctx, customers); err != nil {
			return nil, err
		}
		restored = append(restored, KeyCustomers)
	}

	if document.Products != nil {
		products := make([]*entity.Product, len(document.Products))
		for i, r := range document.Products {
			products[i] = r.toEntity()
		}
		if err := uc.productRepo.ReplaceAll(ctx, products); err != nil {
			return nil, err
		}
		restored = append(restored, KeyProducts)
	}

	if document.Transactions != nil {
		transactions := make([]*entity.Transaction, len(document.Transactions))
		for i, r := range document.Transactions {
			transactions[i] = r.toEntity()
		}
		if err := uc.transactionRepo.ReplaceAll(ctx, transactions); err != nil {
			return nil, err
		}
		restored = append(restored, KeyTransactions)
	}

	if document.Expenses != nil {
		expenses := make([]*entity.Expense, len(document.Expenses))
		for i, r := range document.Expenses {
			expenses[i] = r.toEntity()
		}
		if err := uc.expenseRepo.ReplaceAll(ctx, expenses); err != nil {
			return nil, err
		}
		restored = append(restored, KeyExpenses)
	}

	if document.Admins != nil {
		admins := make([]*entity.Admin, len(document.Admins))
		for i, r := range document.Admins {
			admins[i] = r.toEntity()
		}
		if err := uc.adminRepo.ReplaceAll(ctx, admins); err != nil {
			return nil, err
		}
		restored = append(restored, KeyAdmins)
	}

	if document.CompanyProfile != nil {
		if err := uc.settingsRepo.SaveCompanyProfile(ctx, document.CompanyProfile.toEntity()); err != nil {
			return nil, err
		}
		restored = append(restored, KeyCompanyProfile)
	}

	if document.InvoiceFormats != nil {
		if err := uc.settingsRepo.SaveInvoiceFormats(ctx, document.InvoiceFormats); err != nil {
			return nil, err
		}
		restored = append(restored, KeyInvoiceFormats)
	}

	if document.DataVersion != nil {
		if err := uc.settingsRepo.SetDataVersion(ctx, *document.DataVersion); err != nil {
			return nil, err
		}
		restored = append(restored, KeyDataVersion)
	}

	return &RestoreBackupOutput{RestoredKeys: restored}, nil
}
