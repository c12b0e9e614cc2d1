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

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Save upserts a product by id.
func (r *productRepository) Save(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(productModel).Error
}

// FindByID retrieves a product by its ID.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindByName retrieves a product by exact name match.
func (r *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindAll retrieves all products ordered by name.
func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.Product, len(productModels))
	for i, pm := range productModels {
		products[i] = pm.ToEntity()
	}
	return products, nil
}

// Delete removes a product permanently.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

// ReplaceAll overwrites the whole collection inside one database transaction.
func (r *productRepository) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.ProductModel{}).Error; err != nil {
			return err
		}
		for _, product := range products {
			if err := tx.Create(model.ProductFromEntity(product)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
