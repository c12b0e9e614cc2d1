// Package transaction contains order-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// GenerateInvoiceNumberOutput represents the output of invoice number generation.
type GenerateInvoiceNumberOutput struct {
	InvoiceNumber string
}

// GenerateInvoiceNumberUseCase produces the next sequential invoice number.
//
// The format is YYMM followed by a four digit counter, e.g. "24060001". The
// counter continues from the most recent transaction when it belongs to the
// same calendar month and restarts at 0001 otherwise. Numbers are not
// reserved: deleting the newest transaction frees its number for reuse.
type GenerateInvoiceNumberUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGenerateInvoiceNumberUseCase creates a new GenerateInvoiceNumberUseCase instance.
func NewGenerateInvoiceNumberUseCase(transactionRepo adapter.TransactionRepository) *GenerateInvoiceNumberUseCase {
	return &GenerateInvoiceNumberUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Execute computes the next invoice number from the latest stored transaction.
func (uc *GenerateInvoiceNumberUseCase) Execute(ctx context.Context) (*GenerateInvoiceNumberOutput, error) {
	prefix := uc.now().Format("0601") // YYMM

	latest, err := uc.transactionRepo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return &GenerateInvoiceNumberOutput{InvoiceNumber: prefix + "0001"}, nil
		}
		return nil, err
	}

	sequence := 1
	if strings.HasPrefix(latest.InvoiceNumber, prefix) && len(latest.InvoiceNumber) >= len(prefix)+4 {
		last, parseErr := strconv.Atoi(latest.InvoiceNumber[len(latest.InvoiceNumber)-4:])
		if parseErr == nil {
			sequence = last + 1
		}
	}

	return &GenerateInvoiceNumberOutput{InvoiceNumber: fmt.Sprintf("%s%04d", prefix, sequence)}, nil
}
