// Package customer contains customer master-data use cases.
package customer

import (
	"context"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// ListCustomersOutput represents the output of customer listing.
type ListCustomersOutput struct {
	Customers []*entity.Customer
}

// ListCustomersUseCase handles customer listing logic.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(customerRepo adapter.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
	}
}

// Execute retrieves all customers.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) (*ListCustomersOutput, error) {
	customers, err := uc.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListCustomersOutput{Customers: customers}, nil
}
