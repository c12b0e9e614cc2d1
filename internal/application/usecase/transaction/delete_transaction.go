// Package transaction contains order-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for order deletion.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles order deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute removes a transaction permanently. Its invoice number becomes
// available again when it was the latest one of the current month.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if _, err := uc.transactionRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	return uc.transactionRepo.Delete(ctx, input.ID)
}
