// Package transaction contains order-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
)

// GetTransactionInput represents the input for fetching a single order.
type GetTransactionInput struct {
	ID uuid.UUID
}

// GetTransactionOutput represents the output of fetching a single order.
type GetTransactionOutput struct {
	Transaction *TransactionOutput
}

// GetTransactionUseCase handles single order retrieval.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves one transaction by id.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetTransactionOutput{Transaction: newTransactionOutput(transaction)}, nil
}
