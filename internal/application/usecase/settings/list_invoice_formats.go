// Package settings contains company profile and invoice format use cases.
package settings

import (
	"context"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// ListInvoiceFormatsOutput represents the output of invoice format listing.
type ListInvoiceFormatsOutput struct {
	Formats []string
}

// ListInvoiceFormatsUseCase handles invoice format listing.
type ListInvoiceFormatsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewListInvoiceFormatsUseCase creates a new ListInvoiceFormatsUseCase instance.
func NewListInvoiceFormatsUseCase(settingsRepo adapter.SettingsRepository) *ListInvoiceFormatsUseCase {
	return &ListInvoiceFormatsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute returns the built-in formats followed by the stored custom ones.
func (uc *ListInvoiceFormatsUseCase) Execute(ctx context.Context) (*ListInvoiceFormatsOutput, error) {
	custom, err := uc.settingsRepo.GetInvoiceFormats(ctx)
	if err != nil {
		return nil, err
	}

	formats := make([]string, 0, len(entity.DefaultInvoiceFormats)+len(custom))
	formats = append(formats, entity.DefaultInvoiceFormats...)
	formats = append(formats, custom...)

	return &ListInvoiceFormatsOutput{Formats: formats}, nil
}
