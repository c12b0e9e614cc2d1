// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for singleton settings persistence:
// the company profile, the custom invoice format list and the data version marker.
type SettingsRepository interface {
	// GetCompanyProfile retrieves the stored profile; an empty profile is
	// returned when none was saved yet.
	GetCompanyProfile(ctx context.Context) (*entity.CompanyProfile, error)

	// SaveCompanyProfile replaces the stored profile whole.
	SaveCompanyProfile(ctx context.Context, profile *entity.CompanyProfile) error

	// GetInvoiceFormats retrieves the stored custom format names in insertion order.
	GetInvoiceFormats(ctx context.Context) ([]string, error)

	// SaveInvoiceFormats replaces the stored custom format list whole.
	SaveInvoiceFormats(ctx context.Context, formats []string) error

	// GetDataVersion retrieves the schema data version marker (1 when unset).
	GetDataVersion(ctx context.Context) (int, error)

	// SetDataVersion advances the schema data version marker.
	SetDataVersion(ctx context.Context, version int) error
}
