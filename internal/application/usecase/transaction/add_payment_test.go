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

func storedOrder(repo *fakeTransactionRepository) *entity.Transaction {
	tx := entity.NewTransaction("24050001", time.Now(), time.Now())
	tx.CustomerName = "Budi"
	tx.Items = []entity.TransactionItem{
		{Name: "Spanduk", Ukuran: "2x1", Quantity: 1, Price: decimal.NewFromInt(50000)},
	}
	tx.Recalculate()
	repo.byID[tx.ID] = tx
	return tx
}

func TestAddPaymentUseCase(t *testing.T) {
	t.Run("records a partial payment", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		tx := storedOrder(repo)
		uc := NewAddPaymentUseCase(repo)

		output, err := uc.Execute(context.Background(), AddPaymentInput{
			TransactionID: tx.ID,
			Amount:        decimal.NewFromInt(40000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromInt(60000); !output.Transaction.RemainingBalance.Equal(want) {
			t.Errorf("remaining balance = %s, want %s", output.Transaction.RemainingBalance, want)
		}
		if output.Transaction.Status == entity.TransactionStatusPickedUp {
			t.Error("partial payment must not settle the order")
		}
	})

	t.Run("a clearing payment settles the order", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		tx := storedOrder(repo)
		uc := NewAddPaymentUseCase(repo)

		output, err := uc.Execute(context.Background(), AddPaymentInput{
			TransactionID: tx.ID,
			Amount:        decimal.NewFromInt(100000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.RemainingBalance.Equal(decimal.Zero) {
			t.Errorf("remaining balance = %s, want 0", output.Transaction.RemainingBalance)
		}
		if output.Transaction.Status != entity.TransactionStatusPickedUp {
			t.Errorf("status = %s, want %s", output.Transaction.Status, entity.TransactionStatusPickedUp)
		}
	})

	t.Run("pay in full settles whatever remains", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		tx := storedOrder(repo)
		tx.DownPayment = decimal.NewFromInt(30000)
		tx.Recalculate()
		uc := NewAddPaymentUseCase(repo)

		output, err := uc.Execute(context.Background(), AddPaymentInput{
			TransactionID: tx.ID,
			PayInFull:     true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.DownPayment.Equal(output.Transaction.Total) {
			t.Errorf("down payment = %s, want total %s", output.Transaction.DownPayment, output.Transaction.Total)
		}
		if output.Transaction.Status != entity.TransactionStatusPickedUp {
			t.Errorf("status = %s, want %s", output.Transaction.Status, entity.TransactionStatusPickedUp)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		tx := storedOrder(repo)
		uc := NewAddPaymentUseCase(repo)

		_, err := uc.Execute(context.Background(), AddPaymentInput{
			TransactionID: tx.ID,
			Amount:        decimal.Zero,
		})
		if !errors.Is(err, domainerror.ErrNegativePayment) {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrNegativePayment)
		}
	})

	t.Run("rejects an overpayment", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		tx := storedOrder(repo)
		uc := NewAddPaymentUseCase(repo)

		_, err := uc.Execute(context.Background(), AddPaymentInput{
			TransactionID: tx.ID,
			Amount:        decimal.NewFromInt(150000),
		})
		if !errors.Is(err, domainerror.ErrPaymentExceedsTotal) {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrPaymentExceedsTotal)
		}
	})
}
