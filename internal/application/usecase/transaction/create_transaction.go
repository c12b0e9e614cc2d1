// Package transaction contains order-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// TransactionItemInput represents a single order line in use case input.
type TransactionItemInput struct {
	ProductID *uuid.UUID
	Name      string
	Detail    string
	Bahan     string
	Ukuran    string
	Quantity  int
	Price     decimal.Decimal
}

// CreateTransactionInput represents the input for order creation.
type CreateTransactionInput struct {
	Date            time.Time
	EstimasiSelesai time.Time
	CustomerID      *uuid.UUID
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	Items           []TransactionItemInput
	DiscountValue   decimal.Decimal
	TaxEnabled      bool
	TaxAmount       decimal.Decimal
	DownPayment     decimal.Decimal
	Status          entity.TransactionStatus
}

// CreateTransactionOutput represents the output of order creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles order creation logic.
type CreateTransactionUseCase struct {
	transactionRepo       adapter.TransactionRepository
	generateInvoiceNumber *GenerateInvoiceNumberUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	generateInvoiceNumber *GenerateInvoiceNumberUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:       transactionRepo,
		generateInvoiceNumber: generateInvoiceNumber,
	}
}

// Execute performs the order creation: it validates the input, assigns the
// next invoice number, derives the monetary fields and persists the result.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionInput(input.CustomerName, input.Items, input.Status); err != nil {
		return nil, err
	}

	numberOutput, err := uc.generateInvoiceNumber.Execute(ctx)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(numberOutput.InvoiceNumber, input.Date, input.EstimasiSelesai)
	applyTransactionInput(transaction, input)

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

	if err := uc.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{Transaction: newTransactionOutput(transaction)}, nil
}

// validateTransactionInput enforces the invariants shared by create and update.
func validateTransactionInput(customerName string, items []TransactionItemInput, status entity.TransactionStatus) error {
	if customerName == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCustomerNameRequired,
			"customer name is required",
			domainerror.ErrCustomerNameRequired,
		)
	}
	if len(items) == 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionHasNoItems,
			"at least one item is required",
			domainerror.ErrTransactionHasNoItems,
		)
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidQuantity,
				"item quantity must be at least 1",
				domainerror.ErrInvalidQuantity,
			)
		}
	}
	if !status.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"unknown transaction status",
			domainerror.ErrInvalidTransactionStatus,
		)
	}
	return nil
}

// applyTransactionInput copies the mutable fields from the input onto the
// aggregate. The tax amount only counts when the operator enabled it; the
// flag itself is not stored.
func applyTransactionInput(transaction *entity.Transaction, input CreateTransactionInput) {
	transaction.Date = input.Date
	transaction.EstimasiSelesai = input.EstimasiSelesai
	transaction.CustomerID = input.CustomerID
	transaction.CustomerName = input.CustomerName
	transaction.CustomerAddress = input.CustomerAddress
	transaction.CustomerPhone = input.CustomerPhone
	transaction.DiscountValue = input.DiscountValue
	transaction.DownPayment = input.DownPayment

	if input.TaxEnabled {
		transaction.TaxAmount = input.TaxAmount
	} else {
		transaction.TaxAmount = decimal.Zero
	}

	items := make([]entity.TransactionItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.TransactionItem{
			ID:        uuid.New(),
			ProductID: item.ProductID,
			Name:      item.Name,
			Detail:    item.Detail,
			Bahan:     item.Bahan,
			Ukuran:    item.Ukuran,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	transaction.Items = items
}
