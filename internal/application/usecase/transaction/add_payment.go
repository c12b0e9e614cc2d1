// Package transaction contains order-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// AddPaymentInput represents the input for recording a payment against an
// order. PayInFull settles whatever remains regardless of Amount.
type AddPaymentInput struct {
	TransactionID uuid.UUID
	Amount        decimal.Decimal
	PayInFull     bool
}

// AddPaymentOutput represents the output of payment recording.
type AddPaymentOutput struct {
	Transaction *TransactionOutput
}

// AddPaymentUseCase handles cumulative payment logic.
type AddPaymentUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewAddPaymentUseCase creates a new AddPaymentUseCase instance.
func NewAddPaymentUseCase(transactionRepo adapter.TransactionRepository) *AddPaymentUseCase {
	return &AddPaymentUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute records a payment. A partial payment that clears the remaining
// balance promotes the order to "Sudah Diambil", same as an explicit
// pay-in-full.
func (uc *AddPaymentUseCase) Execute(ctx context.Context, input AddPaymentInput) (*AddPaymentOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if input.PayInFull {
		transaction.PayInFull()
	} else {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNegativePayment,
				"payment amount must be positive",
				domainerror.ErrNegativePayment,
			)
		}
		if err := transaction.AddPayment(input.Amount); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodePaymentExceedsTotal,
				"payment exceeds the invoice total",
				err,
			)
		}
		transaction.ApplyStatus(transaction.Status)
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	return &AddPaymentOutput{Transaction: newTransactionOutput(transaction)}, nil
}
