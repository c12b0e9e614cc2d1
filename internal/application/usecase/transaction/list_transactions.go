// Package transaction contains order-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// ListTransactionsInput represents the optional filters for listing orders.
type ListTransactionsInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID *uuid.UUID
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// TransactionItemOutput represents a single order line in use case output.
type TransactionItemOutput struct {
	ID        uuid.UUID
	ProductID *uuid.UUID
	Name      string
	Detail    string
	Bahan     string
	Ukuran    string
	Quantity  int
	Price     decimal.Decimal
	Total     decimal.Decimal
}

// TransactionOutput represents order information in use case output.
type TransactionOutput struct {
	ID               uuid.UUID
	InvoiceNumber    string
	Date             time.Time
	EstimasiSelesai  time.Time
	CustomerID       *uuid.UUID
	CustomerName     string
	CustomerAddress  string
	CustomerPhone    string
	Items            []TransactionItemOutput
	Subtotal         decimal.Decimal
	DiscountValue    decimal.Decimal
	DiscountAmount   decimal.Decimal
	TaxAmount        decimal.Decimal
	Total            decimal.Decimal
	DownPayment      decimal.Decimal
	RemainingBalance decimal.Decimal
	Status           entity.TransactionStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func newTransactionOutput(t *entity.Transaction) *TransactionOutput {
	items := make([]TransactionItemOutput, len(t.Items))
	for i, item := range t.Items {
		items[i] = TransactionItemOutput{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Detail:    item.Detail,
			Bahan:     item.Bahan,
			Ukuran:    item.Ukuran,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		}
	}

	return &TransactionOutput{
		ID:               t.ID,
		InvoiceNumber:    t.InvoiceNumber,
		Date:             t.Date,
		EstimasiSelesai:  t.EstimasiSelesai,
		CustomerID:       t.CustomerID,
		CustomerName:     t.CustomerName,
		CustomerAddress:  t.CustomerAddress,
		CustomerPhone:    t.CustomerPhone,
		Items:            items,
		Subtotal:         t.Subtotal,
		DiscountValue:    t.DiscountValue,
		DiscountAmount:   t.DiscountAmount,
		TaxAmount:        t.TaxAmount,
		Total:            t.Total,
		DownPayment:      t.DownPayment,
		RemainingBalance: t.RemainingBalance,
		Status:           t.Status,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves transactions sorted by date, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var (
		transactions []*entity.Transaction
		err          error
	)

	switch {
	case input.CustomerID != nil:
		transactions, err = uc.transactionRepo.FindByCustomer(ctx, *input.CustomerID)
	case input.StartDate != nil && input.EndDate != nil:
		transactions, err = uc.transactionRepo.FindByDateRange(ctx, *input.StartDate, *input.EndDate)
	default:
		transactions, err = uc.transactionRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	outputs := make([]*TransactionOutput, len(transactions))
	for i, t := range transactions {
		outputs[i] = newTransactionOutput(t)
	}

	return &ListTransactionsOutput{Transactions: outputs}, nil
}
