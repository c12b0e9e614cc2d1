// Package transaction contains order-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// fakeTransactionRepository is an in-memory stand-in keyed by id, with
// FindLatest driven by a fixed pointer so tests control the sequence source.
type fakeTransactionRepository struct {
	byID   map[uuid.UUID]*entity.Transaction
	latest *entity.Transaction
	saved  []*entity.Transaction
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{byID: make(map[uuid.UUID]*entity.Transaction)}
}

func (f *fakeTransactionRepository) Save(_ context.Context, transaction *entity.Transaction) error {
	f.byID[transaction.ID] = transaction
	f.saved = append(f.saved, transaction)
	return nil
}

func (f *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return t, nil
}

func (f *fakeTransactionRepository) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	all := make([]*entity.Transaction, 0, len(f.byID))
	for _, t := range f.byID {
		all = append(all, t)
	}
	return all, nil
}

func (f *fakeTransactionRepository) FindLatest(_ context.Context) (*entity.Transaction, error) {
	if f.latest == nil {
		return nil, domainerror.ErrTransactionNotFound
	}
	return f.latest, nil
}

func (f *fakeTransactionRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	matched := make([]*entity.Transaction, 0)
	for _, t := range f.byID {
		if !t.Date.Before(start) && !t.Date.After(end) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepository) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Transaction, error) {
	matched := make([]*entity.Transaction, 0)
	for _, t := range f.byID {
		if t.CustomerID != nil && *t.CustomerID == customerID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepository) ExistsByCustomer(_ context.Context, customerID uuid.UUID) (bool, error) {
	for _, t := range f.byID {
		if t.CustomerID != nil && *t.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeTransactionRepository) ReplaceAll(_ context.Context, transactions []*entity.Transaction) error {
	f.byID = make(map[uuid.UUID]*entity.Transaction)
	for _, t := range transactions {
		f.byID[t.ID] = t
	}
	return nil
}
