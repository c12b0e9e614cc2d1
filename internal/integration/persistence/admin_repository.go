// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
	"github.com/percetakan-pos/backend/internal/integration/persistence/model"
)

// adminRepository implements the adapter.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository instance.
func NewAdminRepository(db *gorm.DB) adapter.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// Save upserts an admin by id.
func (r *adminRepository) Save(ctx context.Context, admin *entity.Admin) error {
	adminModel := model.AdminFromEntity(admin)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(adminModel).Error
}

// FindByID retrieves an admin by its ID.
func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminModel model.AdminModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&adminModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAdminNotFound
		}
		return nil, result.Error
	}
	return adminModel.ToEntity(), nil
}

// FindByUsername retrieves an admin by username.
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&adminModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAdminNotFound
		}
		return nil, result.Error
	}
	return adminModel.ToEntity(), nil
}

// FindAll retrieves all admin accounts ordered by name.
func (r *adminRepository) FindAll(ctx context.Context) ([]*entity.Admin, error) {
	var adminModels []model.AdminModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&adminModels)
	if result.Error != nil {
		return nil, result.Error
	}

	admins := make([]*entity.Admin, len(adminModels))
	for i, am := range adminModels {
		admins[i] = am.ToEntity()
	}
	return admins, nil
}

// Count returns the number of admin accounts.
func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.AdminModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete removes an admin permanently.
func (r *adminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdminModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAdminNotFound
	}
	return nil
}

// ReplaceAll overwrites the whole collection inside one database transaction.
func (r *adminRepository) ReplaceAll(ctx context.Context, admins []*entity.Admin) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.AdminModel{}).Error; err != nil {
			return err
		}
		for _, admin := range admins {
			if err := tx.Create(model.AdminFromEntity(admin)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
