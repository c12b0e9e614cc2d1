// Package transaction contains order-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

func validCreateInput() CreateTransactionInput {
	return CreateTransactionInput{
		Date:            time.Date(2024, time.May, 20, 0, 0, 0, 0, time.Local),
		EstimasiSelesai: time.Date(2024, time.May, 23, 0, 0, 0, 0, time.Local),
		CustomerName:    "Budi",
		Items: []TransactionItemInput{
			{Name: "Spanduk", Ukuran: "2x1", Quantity: 1, Price: decimal.NewFromInt(12500)},
			{Name: "Stiker", Quantity: 5, Price: decimal.NewFromInt(20000)},
		},
		DiscountValue: decimal.NewFromInt(5000),
		Status:        entity.TransactionStatusNew,
	}
}

func TestCreateTransactionUseCase(t *testing.T) {
	newUseCase := func() (*CreateTransactionUseCase, *fakeTransactionRepository) {
		repo := newFakeTransactionRepository()
		return NewCreateTransactionUseCase(repo, NewGenerateInvoiceNumberUseCase(repo)), repo
	}

	t.Run("creates an order with derived totals and an invoice number", func(t *testing.T) {
		uc, repo := newUseCase()

		output, err := uc.Execute(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.InvoiceNumber == "" {
			t.Error("expected a generated invoice number")
		}
		if want := decimal.NewFromInt(120000); !output.Transaction.Total.Equal(want) {
			t.Errorf("total = %s, want %s", output.Transaction.Total, want)
		}
		if len(repo.saved) != 1 {
			t.Fatalf("saved %d transactions, want 1", len(repo.saved))
		}
	})

	t.Run("ignores the tax amount when tax is disabled", func(t *testing.T) {
		uc, _ := newUseCase()
		input := validCreateInput()
		input.TaxEnabled = false
		input.TaxAmount = decimal.NewFromInt(13200)

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := decimal.NewFromInt(120000); !output.Transaction.Total.Equal(want) {
			t.Errorf("total = %s, want %s", output.Transaction.Total, want)
		}
	})

	t.Run("applies the tax amount when tax is enabled", func(t *testing.T) {
		uc, _ := newUseCase()
		input := validCreateInput()
		input.TaxEnabled = true
		input.TaxAmount = decimal.NewFromInt(13200)

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := decimal.NewFromInt(133200); !output.Transaction.Total.Equal(want) {
			t.Errorf("total = %s, want %s", output.Transaction.Total, want)
		}
	})

	t.Run("forces picked-up status on full down payment", func(t *testing.T) {
		uc, _ := newUseCase()
		input := validCreateInput()
		input.DownPayment = decimal.NewFromInt(120000)
		input.Status = entity.TransactionStatusNew

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Status != entity.TransactionStatusPickedUp {
			t.Errorf("status = %s, want %s", output.Transaction.Status, entity.TransactionStatusPickedUp)
		}
	})

	t.Run("rejects a down payment above the total", func(t *testing.T) {
		uc, _ := newUseCase()
		input := validCreateInput()
		input.DownPayment = decimal.NewFromInt(500000)

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrPaymentExceedsTotal) {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrPaymentExceedsTotal)
		}
	})

	t.Run("rejects missing customer name", func(t *testing.T) {
		uc, _ := newUseCase()
		input := validCreateInput()
		input.CustomerName = ""

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrCustomerNameRequired) {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrCustomerNameRequired)
		}
	})

	t.Run("rejects an order without items", func(t *testing.T) {
		uc, _ := newUseCase()
		input := validCreateInput()
		input.Items = nil

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrTransactionHasNoItems) {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrTransactionHasNoItems)
		}
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		uc, _ := newUseCase()
		input := validCreateInput()
		input.Items[0].Quantity = 0

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidQuantity) {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrInvalidQuantity)
		}
	})
}
