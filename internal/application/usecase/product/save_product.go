// Package product contains product catalog use cases.
package product

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// SaveProductInput represents the input for product creation or update.
// A nil ID creates a new record.
type SaveProductInput struct {
	ID        *uuid.UUID
	Name      string
	CostPrice decimal.Decimal
	SellPrice decimal.Decimal
	Category  string
}

// SaveProductOutput represents the output of product creation or update.
type SaveProductOutput struct {
	Product *entity.Product
}

// SaveProductUseCase handles product upsert logic.
type SaveProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewSaveProductUseCase creates a new SaveProductUseCase instance.
func NewSaveProductUseCase(productRepo adapter.ProductRepository) *SaveProductUseCase {
	return &SaveProductUseCase{
		productRepo: productRepo,
	}
}

// Execute creates or updates a product. Price edits never rewrite the item
// snapshots stored on past transactions.
func (uc *SaveProductUseCase) Execute(ctx context.Context, input SaveProductInput) (*SaveProductOutput, error) {
	var product *entity.Product
	if input.ID == nil {
		product = entity.NewProduct(input.Name, input.CostPrice, input.SellPrice, input.Category)
	} else {
		existing, err := uc.productRepo.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		existing.Name = input.Name
		existing.CostPrice = input.CostPrice
		existing.SellPrice = input.SellPrice
		if input.Category != "" {
			existing.Category = input.Category
		}
		existing.UpdatedAt = time.Now().UTC()
		product = existing
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return &SaveProductOutput{Product: product}, nil
}
