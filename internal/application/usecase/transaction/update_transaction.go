// Package transaction contains order-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for order update. The invoice
// number and creation timestamp are immutable; everything else is replaced.
type UpdateTransactionInput struct {
	ID uuid.UUID
	CreateTransactionInput
}

// UpdateTransactionOutput represents the output of order update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles order update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the order update: the stored aggregate is replaced whole
// with the re-derived version, keeping its identity and invoice number.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionInput(input.CustomerName, input.Items, input.Status); err != nil {
		return nil, err
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	applyTransactionInput(transaction, input.CreateTransactionInput)

	transaction.Recalculate()
	if transaction.DownPayment.GreaterThan(transaction.Total) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodePaymentExceedsTotal,
			"down payment exceeds the invoice total",
			domainerror.ErrPaymentExceedsTotal,
		)
	}
	transaction.RemainingBalance = transaction.Total.Sub(transaction.DownPayment)
	transaction.ApplyStatus(input.Status)
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{Transaction: newTransactionOutput(transaction)}, nil
}
