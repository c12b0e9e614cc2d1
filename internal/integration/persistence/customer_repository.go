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

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Save upserts a customer by id.
func (r *customerRepository) Save(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(customerModel).Error
}

// FindByID retrieves a customer by its ID.
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindAll retrieves all customers ordered by name.
func (r *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []model.CustomerModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	customers := make([]*entity.Customer, len(customerModels))
	for i, cm := range customerModels {
		customers[i] = cm.ToEntity()
	}
	return customers, nil
}

// Delete removes a customer permanently.
func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CustomerModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCustomerNotFound
	}
	return nil
}

// ReplaceAll overwrites the whole collection inside one database transaction.
func (r *customerRepository) ReplaceAll(ctx context.Context, customers []*entity.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CustomerModel{}).Error; err != nil {
			return err
		}
		for _, customer := range customers {
			if err := tx.Create(model.CustomerFromEntity(customer)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
