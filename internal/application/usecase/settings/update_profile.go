// Package settings contains company profile and invoice format use cases.
package settings

import (
	"context"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// MaxLogoSizeBytes is the upper bound for the encoded logo payload (2 MB).
const MaxLogoSizeBytes = 2 * 1024 * 1024

// UpdateProfileInput represents the input for profile replacement.
type UpdateProfileInput struct {
	Profile entity.CompanyProfile
}

// UpdateProfileOutput represents the output of profile replacement.
type UpdateProfileOutput struct {
	Profile *entity.CompanyProfile
}

// UpdateProfileUseCase handles company profile replacement.
type UpdateProfileUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(settingsRepo adapter.SettingsRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute replaces the stored profile whole. The logo travels as an encoded
// data URL and is capped at 2 MB.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if len(input.Profile.Logo) > MaxLogoSizeBytes {
		return nil, domainerror.ErrLogoTooLarge
	}

	profile := input.Profile
	if err := uc.settingsRepo.SaveCompanyProfile(ctx, &profile); err != nil {
		return nil, err
	}

	return &UpdateProfileOutput{Profile: &profile}, nil
}
