// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
	"github.com/percetakan-pos/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Save upserts an expense by id.
func (r *expenseRepository) Save(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(expenseModel).Error
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves all expenses, newest first.
func (r *expenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toExpenseEntities(expenseModels), nil
}

// FindByDateRange retrieves expenses within the inclusive range, newest first.
func (r *expenseRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toExpenseEntities(expenseModels), nil
}

// Delete removes an expense permanently.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// ReplaceAll overwrites the whole collection inside one database transaction.
func (r *expenseRepository) ReplaceAll(ctx context.Context, expenses []*entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
		for _, expense := range expenses {
			if err := tx.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func toExpenseEntities(expenseModels []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses
}
