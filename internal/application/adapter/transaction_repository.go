// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Save upserts a transaction by id: an existing record is replaced whole,
	// an unknown id is inserted. Callers rely on this for idempotent retries.
	Save(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves all transactions, sorted descending by date.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindLatest retrieves the most recent transaction by date, or
	// ErrTransactionNotFound when none exist.
	FindLatest(ctx context.Context) (*entity.Transaction, error)

	// FindByDateRange retrieves transactions whose date falls within the
	// inclusive range, sorted descending by date.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error)

	// FindByCustomer retrieves all transactions referencing the customer,
	// sorted descending by date.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Transaction, error)

	// ExistsByCustomer reports whether any transaction references the customer.
	ExistsByCustomer(ctx context.Context, customerID uuid.UUID) (bool, error)

	// Delete removes a transaction permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll overwrites the whole collection. Used by backup restore.
	ReplaceAll(ctx context.Context, transactions []*entity.Transaction) error
}
