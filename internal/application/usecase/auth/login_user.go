// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// LoginUserInput represents the input for admin login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of admin login.
type LoginUserOutput struct {
	AccessToken string
	Admin       *entity.Admin
}

// LoginUserUseCase handles admin login logic.
type LoginUserUseCase struct {
	adminRepo       adapter.AdminRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	adminRepo adapter.AdminRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		adminRepo:       adminRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the admin login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	// Generic error either way to prevent username enumeration
	admin, err := uc.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid username or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(admin.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid username or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, err := uc.tokenService.GenerateAccessToken(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: token,
		Admin:       admin,
	}, nil
}
