// Package product contains product catalog use cases.
package product

import (
	"context"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// LookupProductInput represents the input for a pricing template lookup.
type LookupProductInput struct {
	Name string
}

// LookupProductOutput represents the output of a pricing template lookup.
type LookupProductOutput struct {
	Product *entity.Product
}

// LookupProductUseCase resolves an exact product name to its catalog record,
// used to pre-fill the unit price and product id while composing an order
// line. The caller may still override both afterwards.
type LookupProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewLookupProductUseCase creates a new LookupProductUseCase instance.
func NewLookupProductUseCase(productRepo adapter.ProductRepository) *LookupProductUseCase {
	return &LookupProductUseCase{
		productRepo: productRepo,
	}
}

// Execute retrieves a product by exact name match.
func (uc *LookupProductUseCase) Execute(ctx context.Context, input LookupProductInput) (*LookupProductOutput, error) {
	product, err := uc.productRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	return &LookupProductOutput{Product: product}, nil
}
