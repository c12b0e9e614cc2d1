// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepository) Save(_ context.Context, transaction *entity.Transaction) error {
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepository) FindLatest(_ context.Context) (*entity.Transaction, error) {
	if len(f.transactions) == 0 {
		return nil, domainerror.ErrTransactionNotFound
	}
	return f.transactions[len(f.transactions)-1], nil
}

func (f *fakeTransactionRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	matched := make([]*entity.Transaction, 0)
	for _, t := range f.transactions {
		if !t.Date.Before(start) && !t.Date.After(end) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepository) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Transaction, error) {
	matched := make([]*entity.Transaction, 0)
	for _, t := range f.transactions {
		if t.CustomerID != nil && *t.CustomerID == customerID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepository) ExistsByCustomer(_ context.Context, customerID uuid.UUID) (bool, error) {
	matched, _ := f.FindByCustomer(context.Background(), customerID)
	return len(matched) > 0, nil
}

func (f *fakeTransactionRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeTransactionRepository) ReplaceAll(_ context.Context, transactions []*entity.Transaction) error {
	f.transactions = transactions
	return nil
}

type fakeExpenseRepository struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepository) Save(_ context.Context, expense *entity.Expense) error {
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range f.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepository) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return f.expenses, nil
}

func (f *fakeExpenseRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Expense, error) {
	matched := make([]*entity.Expense, 0)
	for _, e := range f.expenses {
		if !e.Date.Before(start) && !e.Date.After(end) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (f *fakeExpenseRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeExpenseRepository) ReplaceAll(_ context.Context, expenses []*entity.Expense) error {
	f.expenses = expenses
	return nil
}

type fakeCustomerRepository struct {
	customers []*entity.Customer
}

func (f *fakeCustomerRepository) Save(_ context.Context, customer *entity.Customer) error {
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCustomerNotFound
}

func (f *fakeCustomerRepository) FindAll(_ context.Context) ([]*entity.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeCustomerRepository) ReplaceAll(_ context.Context, customers []*entity.Customer) error {
	f.customers = customers
	return nil
}
