// Package backup contains the snapshot export and restore use cases.
package backup

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// fakeStore backs every repository interface the backup use cases touch.
type fakeStore struct {
	customers    []*entity.Customer
	products     []*entity.Product
	transactions []*entity.Transaction
	expenses     []*entity.Expense
	admins       []*entity.Admin
	profile      *entity.CompanyProfile
	formats      []string
	dataVersion  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{dataVersion: 1}
}

type fakeCustomerRepository struct{ store *fakeStore }

func (f fakeCustomerRepository) Save(_ context.Context, c *entity.Customer) error {
	f.store.customers = append(f.store.customers, c)
	return nil
}

func (f fakeCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for _, c := range f.store.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCustomerNotFound
}

func (f fakeCustomerRepository) FindAll(_ context.Context) ([]*entity.Customer, error) {
	return f.store.customers, nil
}

func (f fakeCustomerRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f fakeCustomerRepository) ReplaceAll(_ context.Context, customers []*entity.Customer) error {
	f.store.customers = customers
	return nil
}

type fakeProductRepository struct{ store *fakeStore }

func (f fakeProductRepository) Save(_ context.Context, p *entity.Product) error {
	f.store.products = append(f.store.products, p)
	return nil
}

func (f fakeProductRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.store.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}

func (f fakeProductRepository) FindByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range f.store.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}

func (f fakeProductRepository) FindAll(_ context.Context) ([]*entity.Product, error) {
	return f.store.products, nil
}

func (f fakeProductRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f fakeProductRepository) ReplaceAll(_ context.Context, products []*entity.Product) error {
	f.store.products = products
	return nil
}

type fakeTransactionRepository struct{ store *fakeStore }

func (f fakeTransactionRepository) Save(_ context.Context, t *entity.Transaction) error {
	f.store.transactions = append(f.store.transactions, t)
	return nil
}

func (f fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range f.store.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f fakeTransactionRepository) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return f.store.transactions, nil
}

func (f fakeTransactionRepository) FindLatest(_ context.Context) (*entity.Transaction, error) {
	if len(f.store.transactions) == 0 {
		return nil, domainerror.ErrTransactionNotFound
	}
	return f.store.transactions[len(f.store.transactions)-1], nil
}

func (f fakeTransactionRepository) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.Transaction, error) {
	return f.store.transactions, nil
}

func (f fakeTransactionRepository) FindByCustomer(_ context.Context, _ uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

func (f fakeTransactionRepository) ExistsByCustomer(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

func (f fakeTransactionRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f fakeTransactionRepository) ReplaceAll(_ context.Context, transactions []*entity.Transaction) error {
	f.store.transactions = transactions
	return nil
}

type fakeExpenseRepository struct{ store *fakeStore }

func (f fakeExpenseRepository) Save(_ context.Context, e *entity.Expense) error {
	f.store.expenses = append(f.store.expenses, e)
	return nil
}

func (f fakeExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range f.store.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (f fakeExpenseRepository) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return f.store.expenses, nil
}

func (f fakeExpenseRepository) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.Expense, error) {
	return f.store.expenses, nil
}

func (f fakeExpenseRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f fakeExpenseRepository) ReplaceAll(_ context.Context, expenses []*entity.Expense) error {
	f.store.expenses = expenses
	return nil
}

type fakeAdminRepository struct{ store *fakeStore }

func (f fakeAdminRepository) Save(_ context.Context, a *entity.Admin) error {
	f.store.admins = append(f.store.admins, a)
	return nil
}

func (f fakeAdminRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	for _, a := range f.store.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.ErrAdminNotFound
}

func (f fakeAdminRepository) FindByUsername(_ context.Context, username string) (*entity.Admin, error) {
	for _, a := range f.store.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, domainerror.ErrAdminNotFound
}

func (f fakeAdminRepository) FindAll(_ context.Context) ([]*entity.Admin, error) {
	return f.store.admins, nil
}

func (f fakeAdminRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.store.admins)), nil
}

func (f fakeAdminRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f fakeAdminRepository) ReplaceAll(_ context.Context, admins []*entity.Admin) error {
	f.store.admins = admins
	return nil
}

type fakeSettingsRepository struct{ store *fakeStore }

func (f fakeSettingsRepository) GetCompanyProfile(_ context.Context) (*entity.CompanyProfile, error) {
	if f.store.profile == nil {
		return &entity.CompanyProfile{}, nil
	}
	return f.store.profile, nil
}

func (f fakeSettingsRepository) SaveCompanyProfile(_ context.Context, profile *entity.CompanyProfile) error {
	f.store.profile = profile
	return nil
}

func (f fakeSettingsRepository) GetInvoiceFormats(_ context.Context) ([]string, error) {
	return f.store.formats, nil
}

func (f fakeSettingsRepository) SaveInvoiceFormats(_ context.Context, formats []string) error {
	f.store.formats = formats
	return nil
}

func (f fakeSettingsRepository) GetDataVersion(_ context.Context) (int, error) {
	return f.store.dataVersion, nil
}

func (f fakeSettingsRepository) SetDataVersion(_ context.Context, version int) error {
	f.store.dataVersion = version
	return nil
}

func newExportUseCase(store *fakeStore) *ExportBackupUseCase {
	return NewExportBackupUseCase(
		NewGuard(),
		fakeCustomerRepository{store},
		fakeProductRepository{store},
		fakeTransactionRepository{store},
		fakeExpenseRepository{store},
		fakeAdminRepository{store},
		fakeSettingsRepository{store},
	)
}

func newRestoreUseCase(store *fakeStore, guard *Guard) *RestoreBackupUseCase {
	return NewRestoreBackupUseCase(
		guard,
		fakeCustomerRepository{store},
		fakeProductRepository{store},
		fakeTransactionRepository{store},
		fakeExpenseRepository{store},
		fakeAdminRepository{store},
		fakeSettingsRepository{store},
	)
}
