// Package customer contains customer master-data use cases.
package customer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// SaveCustomerInput represents the input for customer creation or update.
// A nil ID creates a new record.
type SaveCustomerInput struct {
	ID      *uuid.UUID
	Name    string
	Phone   string
	Address string
}

// SaveCustomerOutput represents the output of customer creation or update.
type SaveCustomerOutput struct {
	Customer *entity.Customer
}

// SaveCustomerUseCase handles customer upsert logic.
type SaveCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewSaveCustomerUseCase creates a new SaveCustomerUseCase instance.
func NewSaveCustomerUseCase(customerRepo adapter.CustomerRepository) *SaveCustomerUseCase {
	return &SaveCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute creates or updates a customer. Edits never propagate into the
// customer snapshots stored on past transactions.
func (uc *SaveCustomerUseCase) Execute(ctx context.Context, input SaveCustomerInput) (*SaveCustomerOutput, error) {
	if input.Name == "" {
		return nil, domainerror.ErrCustomerNameRequired
	}

	var customer *entity.Customer
	if input.ID == nil {
		customer = entity.NewCustomer(input.Name, input.Phone, input.Address)
	} else {
		existing, err := uc.customerRepo.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		existing.Name = input.Name
		existing.Phone = input.Phone
		existing.Address = input.Address
		existing.UpdatedAt = time.Now().UTC()
		customer = existing
	}

	if err := uc.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return &SaveCustomerOutput{Customer: customer}, nil
}
