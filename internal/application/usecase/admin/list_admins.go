// Package admin contains back-office account management use cases.
package admin

import (
	"context"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// ListAdminsOutput represents the output of admin account listing.
type ListAdminsOutput struct {
	Admins []*entity.Admin
}

// ListAdminsUseCase handles admin account listing logic.
type ListAdminsUseCase struct {
	adminRepo adapter.AdminRepository
}

// NewListAdminsUseCase creates a new ListAdminsUseCase instance.
func NewListAdminsUseCase(adminRepo adapter.AdminRepository) *ListAdminsUseCase {
	return &ListAdminsUseCase{
		adminRepo: adminRepo,
	}
}

// Execute retrieves all admin accounts.
func (uc *ListAdminsUseCase) Execute(ctx context.Context) (*ListAdminsOutput, error) {
	admins, err := uc.adminRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListAdminsOutput{Admins: admins}, nil
}
