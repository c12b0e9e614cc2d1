// Package customer contains customer master-data use cases.
package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// DeleteCustomerInput represents the input for customer deletion.
type DeleteCustomerInput struct {
	ID uuid.UUID
}

// DeleteCustomerUseCase handles customer deletion logic.
type DeleteCustomerUseCase struct {
	customerRepo    adapter.CustomerRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteCustomerUseCase creates a new DeleteCustomerUseCase instance.
func NewDeleteCustomerUseCase(
	customerRepo adapter.CustomerRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute removes a customer. A customer referenced by any transaction is
// protected; the transaction history must be removed first.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, input DeleteCustomerInput) error {
	if _, err := uc.customerRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	referenced, err := uc.transactionRepo.ExistsByCustomer(ctx, input.ID)
	if err != nil {
		return err
	}
	if referenced {
		return domainerror.ErrCustomerHasTransactions
	}

	return uc.customerRepo.Delete(ctx, input.ID)
}
