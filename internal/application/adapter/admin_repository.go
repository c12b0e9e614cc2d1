// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// AdminRepository defines the interface for admin account persistence operations.
type AdminRepository interface {
	// Save upserts an admin by id.
	Save(ctx context.Context, admin *entity.Admin) error

	// FindByID retrieves an admin by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByUsername retrieves an admin by username, or ErrAdminNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// FindAll retrieves all admin accounts.
	FindAll(ctx context.Context) ([]*entity.Admin, error)

	// Count returns the number of admin accounts.
	Count(ctx context.Context) (int64, error)

	// Delete removes an admin permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll overwrites the whole collection. Used by backup restore.
	ReplaceAll(ctx context.Context, admins []*entity.Admin) error
}
