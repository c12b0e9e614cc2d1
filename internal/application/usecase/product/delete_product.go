// Package product contains product catalog use cases.
package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ID uuid.UUID
}

// DeleteProductUseCase handles product deletion logic.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute removes a product. Transaction items keep their copied name and
// price, so history is unaffected.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	if _, err := uc.productRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	return uc.productRepo.Delete(ctx, input.ID)
}
