// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	"github.com/percetakan-pos/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetCompanyProfile retrieves the singleton profile row; a missing row yields
// an empty profile instead of an error.
func (r *settingsRepository) GetCompanyProfile(ctx context.Context) (*entity.CompanyProfile, error) {
	var profileModel model.CompanyProfileModel
	result := r.db.WithContext(ctx).Where("id = ?", model.SingletonRowID).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &entity.CompanyProfile{}, nil
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// SaveCompanyProfile replaces the singleton profile row.
func (r *settingsRepository) SaveCompanyProfile(ctx context.Context, profile *entity.CompanyProfile) error {
	profileModel := model.CompanyProfileFromEntity(profile)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(profileModel).Error
}

// GetInvoiceFormats retrieves the custom format names in insertion order.
func (r *settingsRepository) GetInvoiceFormats(ctx context.Context) ([]string, error) {
	var formatModels []model.InvoiceFormatModel
	result := r.db.WithContext(ctx).Order("position ASC").Find(&formatModels)
	if result.Error != nil {
		return nil, result.Error
	}

	formats := make([]string, len(formatModels))
	for i, fm := range formatModels {
		formats[i] = fm.Name
	}
	return formats, nil
}

// SaveInvoiceFormats replaces the custom format list whole.
func (r *settingsRepository) SaveInvoiceFormats(ctx context.Context, formats []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.InvoiceFormatModel{}).Error; err != nil {
			return err
		}
		for i, name := range formats {
			formatModel := model.InvoiceFormatModel{Position: i, Name: name}
			if err := tx.Create(&formatModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetDataVersion retrieves the schema data version marker. A missing row
// means version 1, the layout that predates the marker.
func (r *settingsRepository) GetDataVersion(ctx context.Context) (int, error) {
	var versionModel model.DataVersionModel
	result := r.db.WithContext(ctx).Where("id = ?", model.SingletonRowID).First(&versionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, result.Error
	}
	return versionModel.Version, nil
}

// SetDataVersion stores the schema data version marker.
func (r *settingsRepository) SetDataVersion(ctx context.Context, version int) error {
	versionModel := model.DataVersionModel{
		ID:        model.SingletonRowID,
		Version:   version,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&versionModel).Error
}
