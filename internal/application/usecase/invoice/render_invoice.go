// Package invoice contains the printable invoice document use case.
package invoice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// MinRows is the fixed minimum number of line-item rows on the printed
// document; short orders are padded with blank rows to keep the layout stable.
const MinRows = 10

// RenderInvoiceInput represents the input for invoice document assembly.
type RenderInvoiceInput struct {
	TransactionID uuid.UUID
	IssuedBy      string
}

// InvoiceRow is one printable line-item row. Blank padding rows have a zero
// Quantity and empty Name.
type InvoiceRow struct {
	Name     string
	Detail   string
	Bahan    string
	Ukuran   string
	Quantity int
	Price    decimal.Decimal
	Total    decimal.Decimal
	Blank    bool
}

// InvoiceCompany is the letterhead block of the document.
type InvoiceCompany struct {
	Name             string
	Slogan           string
	Address          string
	City             string
	Phone            string
	Email            string
	Logo             string
	BankAccountLines []string
}

// InvoiceDocument is a fully resolved, frozen document handed to the print
// layer. It never references live aggregates, so a record being edited while
// printing cannot tear the output.
type InvoiceDocument struct {
	InvoiceNumber    string
	OrderNumber      string // last four digits of the invoice number
	Format           string
	Date             time.Time
	EstimasiSelesai  time.Time
	Company          InvoiceCompany
	CustomerName     string
	CustomerAddress  string
	CustomerPhone    string
	Rows             []InvoiceRow
	Subtotal         decimal.Decimal
	DiscountAmount   decimal.Decimal
	TaxAmount        decimal.Decimal
	Total            decimal.Decimal
	DownPayment      decimal.Decimal
	RemainingBalance decimal.Decimal
	Status           entity.TransactionStatus
	IssuedBy         string
	GeneratedAt      time.Time
}

// RenderInvoiceOutput represents the output of invoice document assembly.
type RenderInvoiceOutput struct {
	Document *InvoiceDocument
}

// RenderInvoiceUseCase assembles the printable document for one order. Only
// one render may be in flight at a time; a concurrent request is rejected
// rather than queued.
type RenderInvoiceUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	inFlight        sync.Mutex
}

// NewRenderInvoiceUseCase creates a new RenderInvoiceUseCase instance.
func NewRenderInvoiceUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *RenderInvoiceUseCase {
	return &RenderInvoiceUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute resolves the transaction and company profile into a frozen document.
func (uc *RenderInvoiceUseCase) Execute(ctx context.Context, input RenderInvoiceInput) (*RenderInvoiceOutput, error) {
	if !uc.inFlight.TryLock() {
		return nil, domainerror.ErrRenderInProgress
	}
	defer uc.inFlight.Unlock()

	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}
	snapshot := transaction.Snapshot()

	profile, err := uc.settingsRepo.GetCompanyProfile(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]InvoiceRow, 0, MinRows)
	for _, item := range snapshot.Items {
		rows = append(rows, InvoiceRow{
			Name:     item.Name,
			Detail:   item.Detail,
			Bahan:    item.Bahan,
			Ukuran:   item.Ukuran,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		})
	}
	for len(rows) < MinRows {
		rows = append(rows, InvoiceRow{Blank: true, Price: decimal.Zero, Total: decimal.Zero})
	}

	orderNumber := snapshot.InvoiceNumber
	if len(orderNumber) > 4 {
		orderNumber = orderNumber[len(orderNumber)-4:]
	}

	document := &InvoiceDocument{
		InvoiceNumber:   snapshot.InvoiceNumber,
		OrderNumber:     orderNumber,
		Format:          profile.InvoiceFormat,
		Date:            snapshot.Date,
		EstimasiSelesai: snapshot.EstimasiSelesai,
		Company: InvoiceCompany{
			Name:             profile.Name,
			Slogan:           profile.Slogan,
			Address:          profile.Address,
			City:             profile.City(),
			Phone:            profile.Phone,
			Email:            profile.Email,
			Logo:             profile.Logo,
			BankAccountLines: profile.BankAccountLines(),
		},
		CustomerName:     snapshot.CustomerName,
		CustomerAddress:  snapshot.CustomerAddress,
		CustomerPhone:    snapshot.CustomerPhone,
		Rows:             rows,
		Subtotal:         snapshot.Subtotal,
		DiscountAmount:   snapshot.DiscountAmount,
		TaxAmount:        snapshot.TaxAmount,
		Total:            snapshot.Total,
		DownPayment:      snapshot.DownPayment,
		RemainingBalance: snapshot.RemainingBalance,
		Status:           snapshot.Status,
		IssuedBy:         input.IssuedBy,
		GeneratedAt:      time.Now().UTC(),
	}

	return &RenderInvoiceOutput{Document: document}, nil
}
