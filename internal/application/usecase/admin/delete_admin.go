// Package admin contains back-office account management use cases.
package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// DeleteAdminInput represents the input for admin account deletion.
type DeleteAdminInput struct {
	ID uuid.UUID
}

// DeleteAdminUseCase handles admin account deletion logic.
type DeleteAdminUseCase struct {
	adminRepo adapter.AdminRepository
}

// NewDeleteAdminUseCase creates a new DeleteAdminUseCase instance.
func NewDeleteAdminUseCase(adminRepo adapter.AdminRepository) *DeleteAdminUseCase {
	return &DeleteAdminUseCase{
		adminRepo: adminRepo,
	}
}

// Execute removes an admin account. The last remaining account cannot be
// deleted, otherwise nobody could log in again.
func (uc *DeleteAdminUseCase) Execute(ctx context.Context, input DeleteAdminInput) error {
	if _, err := uc.adminRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	count, err := uc.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return domainerror.ErrLastAdmin
	}

	return uc.adminRepo.Delete(ctx, input.ID)
}
