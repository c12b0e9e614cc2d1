// Package settings contains company profile and invoice format use cases.
package settings

import (
	"context"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// GetProfileOutput represents the output of profile retrieval.
type GetProfileOutput struct {
	Profile *entity.CompanyProfile
}

// GetProfileUseCase handles company profile retrieval.
type GetProfileUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(settingsRepo adapter.SettingsRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute retrieves the singleton company profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	profile, err := uc.settingsRepo.GetCompanyProfile(ctx)
	if err != nil {
		return nil, err
	}

	return &GetProfileOutput{Profile: profile}, nil
}
