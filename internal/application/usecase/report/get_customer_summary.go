// Package report contains financial aggregation use cases.
package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
)

// GetCustomerSummaryInput represents the input for the per-customer report.
type GetCustomerSummaryInput struct {
	CustomerID uuid.UUID
}

// GetCustomerSummaryOutput represents the output of the per-customer report.
// It spans the customer's whole history, not a date range.
type GetCustomerSummaryOutput struct {
	TransactionCount int
	Total            decimal.Decimal
	DownPayment      decimal.Decimal
	RemainingBalance decimal.Decimal
}

// GetCustomerSummaryUseCase aggregates the transaction history of one customer.
type GetCustomerSummaryUseCase struct {
	customerRepo    adapter.CustomerRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetCustomerSummaryUseCase creates a new GetCustomerSummaryUseCase instance.
func NewGetCustomerSummaryUseCase(
	customerRepo adapter.CustomerRepository,
	transactionRepo adapter.TransactionRepository,
) *GetCustomerSummaryUseCase {
	return &GetCustomerSummaryUseCase{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute sums total, down payment and remaining balance across every
// transaction referencing the customer.
func (uc *GetCustomerSummaryUseCase) Execute(ctx context.Context, input GetCustomerSummaryInput) (*GetCustomerSummaryOutput, error) {
	if _, err := uc.customerRepo.FindByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	output := &GetCustomerSummaryOutput{
		TransactionCount: len(transactions),
		Total:            decimal.Zero,
		DownPayment:      decimal.Zero,
		RemainingBalance: decimal.Zero,
	}
	for _, t := range transactions {
		output.Total = output.Total.Add(t.Total)
		output.DownPayment = output.DownPayment.Add(t.DownPayment)
		output.RemainingBalance = output.RemainingBalance.Add(t.RemainingBalance)
	}

	return output, nil
}
