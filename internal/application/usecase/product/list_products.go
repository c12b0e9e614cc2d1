// Package product contains product catalog use cases.
package product

import (
	"context"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// ListProductsOutput represents the output of product listing.
type ListProductsOutput struct {
	Products []*entity.Product
}

// ListProductsUseCase handles product listing logic.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute retrieves all catalog products.
func (uc *ListProductsUseCase) Execute(ctx context.Context) (*ListProductsOutput, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListProductsOutput{Products: products}, nil
}
