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

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Save upserts a transaction. The whole record is replaced: items are
// rewritten so removed lines do not linger.
func (r *transactionRepository) Save(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	items := transactionModel.Items
	transactionModel.Items = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(transactionModel).Error; err != nil {
			return err
		}
		if err := tx.Where("transaction_id = ?", transactionModel.ID).
			Delete(&model.TransactionItemModel{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// FindByID retrieves a transaction by its ID with its items in display order.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindAll retrieves all transactions, newest first.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindLatest retrieves the most recent transaction by date. The invoice
// sequence generator depends on this ordering matching FindAll's head.
func (r *transactionRepository) FindLatest(ctx context.Context) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Order("date DESC, created_at DESC").
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByDateRange retrieves transactions within the inclusive range, newest first.
func (r *transactionRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByCustomer retrieves the transactions referencing a customer, newest first.
func (r *transactionRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("customer_id = ?", customerID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// ExistsByCustomer reports whether any transaction references the customer.
func (r *transactionRepository) ExistsByCustomer(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("customer_id = ?", customerID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a transaction and its items permanently.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).
			Delete(&model.TransactionItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.TransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return nil
	})
}

// ReplaceAll overwrites the whole collection inside one database transaction.
func (r *transactionRepository) ReplaceAll(ctx context.Context, transactions []*entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.TransactionItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}
		for _, transaction := range transactions {
			transactionModel := model.TransactionFromEntity(transaction)
			items := transactionModel.Items
			transactionModel.Items = nil
			if err := tx.Create(transactionModel).Error; err != nil {
				return err
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func orderItemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("transaction_items.position ASC")
}

func toTransactionEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
