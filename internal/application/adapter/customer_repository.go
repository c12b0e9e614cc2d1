// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations.
type CustomerRepository interface {
	// Save upserts a customer by id.
	Save(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindAll retrieves all customers.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// Delete removes a customer permanently. The referential guard against
	// transaction history lives in the use case, not here.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll overwrites the whole collection. Used by backup restore.
	ReplaceAll(ctx context.Context, customers []*entity.Customer) error
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Save upserts a product by id.
	Save(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByName retrieves a product by exact name match, or
	// ErrProductNotFound when no product carries that name.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// FindAll retrieves all products.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Delete removes a product permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll overwrites the whole collection. Used by backup restore.
	ReplaceAll(ctx context.Context, products []*entity.Product) error
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Save upserts an expense by id.
	Save(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindAll retrieves all expenses, sorted descending by date.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// FindByDateRange retrieves expenses whose date falls within the inclusive
	// range, sorted descending by date.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error)

	// Delete removes an expense permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll overwrites the whole collection. Used by backup restore.
	ReplaceAll(ctx context.Context, expenses []*entity.Expense) error
}
