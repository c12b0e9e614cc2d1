// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/percetakan-pos/backend/internal/application/usecase/invoice"
)

// InvoiceRowResponse represents one printable line-item row.
type InvoiceRowResponse struct {
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Bahan    string `json:"bahan"`
	Ukuran   string `json:"ukuran"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
	Blank    bool   `json:"blank"`
}

// InvoiceCompanyResponse represents the letterhead block of the document.
type InvoiceCompanyResponse struct {
	Name             string   `json:"name"`
	Slogan           string   `json:"slogan"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Logo             string   `json:"logo,omitempty"`
	BankAccountLines []string `json:"bankAccountLines,omitempty"`
}

// InvoiceDocumentResponse represents the frozen printable document.
type InvoiceDocumentResponse struct {
	InvoiceNumber    string                 `json:"invoiceNumber"`
	OrderNumber      string                 `json:"orderNumber"`
	Format           string                 `json:"format"`
	Date             time.Time              `json:"date"`
	EstimasiSelesai  time.Time              `json:"estimasiSelesai"`
	Company          InvoiceCompanyResponse `json:"company"`
	CustomerName     string                 `json:"customerName"`
	CustomerAddress  string                 `json:"customerAddress"`
	CustomerPhone    string                 `json:"customerPhone"`
	Rows             []InvoiceRowResponse   `json:"rows"`
	Subtotal         string                 `json:"subtotal"`
	DiscountAmount   string                 `json:"discountAmount"`
	TaxAmount        string                 `json:"taxAmount"`
	Total            string                 `json:"total"`
	DownPayment      string                 `json:"downPayment"`
	RemainingBalance string                 `json:"remainingBalance"`
	Status           string                 `json:"status"`
	IssuedBy         string                 `json:"issuedBy"`
	GeneratedAt      time.Time              `json:"generatedAt"`
}

// ToInvoiceDocumentResponse converts an invoice document to its response form.
func ToInvoiceDocumentResponse(document *invoice.InvoiceDocument) InvoiceDocumentResponse {
	rows := make([]InvoiceRowResponse, len(document.Rows))
	for i, row := range document.Rows {
		rows[i] = InvoiceRowResponse{
			Name:     row.Name,
			Detail:   row.Detail,
			Bahan:    row.Bahan,
			Ukuran:   row.Ukuran,
			Quantity: row.Quantity,
			Price:    row.Price.String(),
			Total:    row.Total.String(),
			Blank:    row.Blank,
		}
	}

	return InvoiceDocumentResponse{
		InvoiceNumber:   document.InvoiceNumber,
		OrderNumber:     document.OrderNumber,
		Format:          document.Format,
		Date:            document.Date,
		EstimasiSelesai: document.EstimasiSelesai,
		Company: InvoiceCompanyResponse{
			Name:             document.Company.Name,
			Slogan:           document.Company.Slogan,
			Address:          document.Company.Address,
			City:             document.Company.City,
			Phone:            document.Company.Phone,
			Email:            document.Company.Email,
			Logo:             document.Company.Logo,
			BankAccountLines: document.Company.BankAccountLines,
		},
		CustomerName:     document.CustomerName,
		CustomerAddress:  document.CustomerAddress,
		CustomerPhone:    document.CustomerPhone,
		Rows:             rows,
		Subtotal:         document.Subtotal.String(),
		DiscountAmount:   document.DiscountAmount.String(),
		TaxAmount:        document.TaxAmount.String(),
		Total:            document.Total.String(),
		DownPayment:      document.DownPayment.String(),
		RemainingBalance: document.RemainingBalance.String(),
		Status:           string(document.Status),
		IssuedBy:         document.IssuedBy,
		GeneratedAt:      document.GeneratedAt,
	}
}
