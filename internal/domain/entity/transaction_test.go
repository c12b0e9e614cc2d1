// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// newOrderFixture builds the reference order: a 2x1 banner at 12,500/m2,
// five unit-priced stickers and a zero-priced proofing line, with a flat
// 5,000 discount and no tax.
func newOrderFixture() *Transaction {
	tx := NewTransaction("24060001", time.Now(), time.Now().AddDate(0, 0, 3))
	tx.CustomerName = "Budi"
	tx.Items = []TransactionItem{
		{Name: "Spanduk", Ukuran: "2x1", Quantity: 1, Price: decimal.NewFromInt(12500)},
		{Name: "Proofing", Ukuran: "", Quantity: 1, Price: decimal.Zero},
		{Name: "Stiker", Ukuran: "", Quantity: 5, Price: decimal.NewFromInt(20000)},
	}
	tx.DiscountValue = decimal.NewFromInt(5000)
	tx.Recalculate()
	return tx
}

func TestTransactionRecalculate(t *testing.T) {
	t.Run("derives item totals, subtotal and grand total", func(t *testing.T) {
		tx := newOrderFixture()

		if want := decimal.NewFromInt(25000); !tx.Items[0].Total.Equal(want) {
			t.Errorf("banner total = %s, want %s", tx.Items[0].Total, want)
		}
		if !tx.Items[1].Total.Equal(decimal.Zero) {
			t.Errorf("zero-priced line total = %s, want 0", tx.Items[1].Total)
		}
		if want := decimal.NewFromInt(100000); !tx.Items[2].Total.Equal(want) {
			t.Errorf("sticker total = %s, want %s", tx.Items[2].Total, want)
		}
		if want := decimal.NewFromInt(125000); !tx.Subtotal.Equal(want) {
			t.Errorf("subtotal = %s, want %s", tx.Subtotal, want)
		}
		if want := decimal.NewFromInt(120000); !tx.Total.Equal(want) {
			t.Errorf("total = %s, want %s", tx.Total, want)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		tx := newOrderFixture()
		before := tx.Total

		tx.Recalculate()
		tx.Recalculate()

		if !tx.Total.Equal(before) {
			t.Errorf("total drifted from %s to %s after repeated recalculation", before, tx.Total)
		}
	})

	t.Run("remaining balance tracks down payment", func(t *testing.T) {
		tx := newOrderFixture()
		tx.DownPayment = decimal.NewFromInt(50000)
		tx.Recalculate()

		if want := decimal.NewFromInt(70000); !tx.RemainingBalance.Equal(want) {
			t.Errorf("remaining balance = %s, want %s", tx.RemainingBalance, want)
		}
	})
}

func TestTransactionApplyStatus(t *testing.T) {
	t.Run("keeps selection while a balance remains", func(t *testing.T) {
		tx := newOrderFixture()
		tx.DownPayment = decimal.NewFromInt(50000)
		tx.Recalculate()

		tx.ApplyStatus(TransactionStatusInProgress)

		if tx.Status != TransactionStatusInProgress {
			t.Errorf("status = %s, want %s", tx.Status, TransactionStatusInProgress)
		}
	})

	t.Run("full payment overrides the selection", func(t *testing.T) {
		tx := newOrderFixture()
		tx.DownPayment = tx.Total
		tx.Recalculate()

		tx.ApplyStatus(TransactionStatusNew)

		if tx.Status != TransactionStatusPickedUp {
			t.Errorf("status = %s, want %s", tx.Status, TransactionStatusPickedUp)
		}
	})
}

func TestTransactionAddPayment(t *testing.T) {
	t.Run("accumulates partial payments", func(t *testing.T) {
		tx := newOrderFixture()

		if err := tx.AddPayment(decimal.NewFromInt(50000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tx.AddPayment(decimal.NewFromInt(20000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromInt(70000); !tx.DownPayment.Equal(want) {
			t.Errorf("down payment = %s, want %s", tx.DownPayment, want)
		}
		if want := decimal.NewFromInt(50000); !tx.RemainingBalance.Equal(want) {
			t.Errorf("remaining balance = %s, want %s", tx.RemainingBalance, want)
		}
	})

	t.Run("rejects overpayment without changing state", func(t *testing.T) {
		tx := newOrderFixture()
		tx.DownPayment = decimal.NewFromInt(100000)
		tx.Recalculate()

		err := tx.AddPayment(decimal.NewFromInt(30000))

		if err != domainerror.ErrPaymentExceedsTotal {
			t.Fatalf("error = %v, want %v", err, domainerror.ErrPaymentExceedsTotal)
		}
		if want := decimal.NewFromInt(100000); !tx.DownPayment.Equal(want) {
			t.Errorf("down payment changed to %s after rejected payment", tx.DownPayment)
		}
	})
}

func TestTransactionPayInFull(t *testing.T) {
	tx := newOrderFixture()
	tx.DownPayment = decimal.NewFromInt(50000)
	tx.Recalculate()

	tx.PayInFull()

	if !tx.DownPayment.Equal(tx.Total) {
		t.Errorf("down payment = %s, want total %s", tx.DownPayment, tx.Total)
	}
	if !tx.RemainingBalance.Equal(decimal.Zero) {
		t.Errorf("remaining balance = %s, want 0", tx.RemainingBalance)
	}
	if tx.Status != TransactionStatusPickedUp {
		t.Errorf("status = %s, want %s", tx.Status, TransactionStatusPickedUp)
	}
	if !tx.IsPaid() {
		t.Error("IsPaid() = false after PayInFull")
	}
}

func TestTransactionSnapshot(t *testing.T) {
	tx := newOrderFixture()
	clone := tx.Snapshot()

	clone.Items[0].Name = "changed"
	clone.Items[0].Total = decimal.NewFromInt(999)

	if tx.Items[0].Name == "changed" {
		t.Error("mutating the snapshot changed the original item")
	}
	if tx.Items[0].Total.Equal(decimal.NewFromInt(999)) {
		t.Error("mutating the snapshot changed the original total")
	}
}
