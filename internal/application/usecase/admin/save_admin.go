// Package admin contains back-office account management use cases.
package admin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// SaveAdminInput represents the input for admin account creation or update.
// A nil ID creates a new account. An empty Password on update keeps the
// stored hash; on create it is rejected.
type SaveAdminInput struct {
	ID       *uuid.UUID
	Name     string
	Username string
	Password string
	Role     entity.AdminRole
	Avatar   string
}

// SaveAdminOutput represents the output of admin account creation or update.
type SaveAdminOutput struct {
	Admin *entity.Admin
}

// SaveAdminUseCase handles admin account upsert logic.
type SaveAdminUseCase struct {
	adminRepo       adapter.AdminRepository
	passwordService adapter.PasswordService
}

// NewSaveAdminUseCase creates a new SaveAdminUseCase instance.
func NewSaveAdminUseCase(
	adminRepo adapter.AdminRepository,
	passwordService adapter.PasswordService,
) *SaveAdminUseCase {
	return &SaveAdminUseCase{
		adminRepo:       adminRepo,
		passwordService: passwordService,
	}
}

// Execute creates or updates an admin account. Usernames are unique across
// accounts other than the one being edited.
func (uc *SaveAdminUseCase) Execute(ctx context.Context, input SaveAdminInput) (*SaveAdminOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerror.ErrInvalidAdminRole
	}

	existing, err := uc.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domainerror.ErrAdminNotFound) {
		return nil, err
	}
	if existing != nil && (input.ID == nil || existing.ID != *input.ID) {
		return nil, domainerror.ErrUsernameTaken
	}

	var admin *entity.Admin
	if input.ID == nil {
		if input.Password == "" {
			return nil, domainerror.ErrInvalidCredentials
		}
		hash, err := uc.passwordService.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		admin = entity.NewAdmin(input.Name, input.Username, hash, input.Role, input.Avatar)
	} else {
		current, err := uc.adminRepo.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		current.Name = input.Name
		current.Username = input.Username
		current.Role = input.Role
		current.Avatar = input.Avatar
		if input.Password != "" {
			hash, err := uc.passwordService.HashPassword(input.Password)
			if err != nil {
				return nil, err
			}
			current.PasswordHash = hash
		}
		current.UpdatedAt = time.Now().UTC()
		admin = current
	}

	if err := uc.adminRepo.Save(ctx, admin); err != nil {
		return nil, err
	}

	return &SaveAdminOutput{Admin: admin}, nil
}
