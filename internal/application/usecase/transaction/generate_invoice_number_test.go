// Package transaction contains order-related use cases.
package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

func TestGenerateInvoiceNumberUseCase(t *testing.T) {
	may := time.Date(2024, time.May, 20, 10, 0, 0, 0, time.Local)
	june := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)

	newUseCase := func(latest *entity.Transaction, at time.Time) *GenerateInvoiceNumberUseCase {
		repo := newFakeTransactionRepository()
		repo.latest = latest
		uc := NewGenerateInvoiceNumberUseCase(repo)
		uc.now = func() time.Time { return at }
		return uc
	}

	t.Run("starts at 0001 when no transactions exist", func(t *testing.T) {
		uc := newUseCase(nil, may)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.InvoiceNumber != "24050001" {
			t.Errorf("invoice number = %q, want %q", output.InvoiceNumber, "24050001")
		}
	})

	t.Run("continues the sequence within the same month", func(t *testing.T) {
		latest := entity.NewTransaction("24050012", may, may)
		uc := newUseCase(latest, may)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.InvoiceNumber != "24050013" {
			t.Errorf("invoice number = %q, want %q", output.InvoiceNumber, "24050013")
		}
	})

	t.Run("restarts at 0001 on month rollover", func(t *testing.T) {
		latest := entity.NewTransaction("24050999", may, may)
		uc := newUseCase(latest, june)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.InvoiceNumber != "24060001" {
			t.Errorf("invoice number = %q, want %q", output.InvoiceNumber, "24060001")
		}
	})

	t.Run("restarts at 0001 when the latest number is malformed", func(t *testing.T) {
		latest := entity.NewTransaction("INV-7", may, may)
		uc := newUseCase(latest, may)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.InvoiceNumber != "24050001" {
			t.Errorf("invoice number = %q, want %q", output.InvoiceNumber, "24050001")
		}
	})
}
