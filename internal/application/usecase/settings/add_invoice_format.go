// Package settings contains company profile and invoice format use cases.
package settings

import (
	"context"
	"strings"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// AddInvoiceFormatInput represents the input for registering a custom format.
type AddInvoiceFormatInput struct {
	Name string
}

// AddInvoiceFormatOutput represents the output of registering a custom format.
type AddInvoiceFormatOutput struct {
	Formats []string
}

// AddInvoiceFormatUseCase handles custom invoice format registration.
type AddInvoiceFormatUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewAddInvoiceFormatUseCase creates a new AddInvoiceFormatUseCase instance.
func NewAddInvoiceFormatUseCase(settingsRepo adapter.SettingsRepository) *AddInvoiceFormatUseCase {
	return &AddInvoiceFormatUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute appends a custom format name. Names must be non-blank and unique,
// case-insensitively, across the defaults and the stored custom list.
func (uc *AddInvoiceFormatUseCase) Execute(ctx context.Context, input AddInvoiceFormatInput) (*AddInvoiceFormatOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrInvoiceFormatNameEmpty
	}

	custom, err := uc.settingsRepo.GetInvoiceFormats(ctx)
	if err != nil {
		return nil, err
	}

	for _, known := range append(append([]string{}, entity.DefaultInvoiceFormats...), custom...) {
		if strings.EqualFold(known, name) {
			return nil, domainerror.ErrInvoiceFormatExists
		}
	}

	custom = append(custom, name)
	if err := uc.settingsRepo.SaveInvoiceFormats(ctx, custom); err != nil {
		return nil, err
	}

	formats := make([]string, 0, len(entity.DefaultInvoiceFormats)+len(custom))
	formats = append(formats, entity.DefaultInvoiceFormats...)
	formats = append(formats, custom...)

	return &AddInvoiceFormatOutput{Formats: formats}, nil
}
