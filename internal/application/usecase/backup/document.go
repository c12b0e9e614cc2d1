// Package backup contains the snapshot export and restore use cases.
package backup

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// Collection keys of the backup document. They match the historical storage
// layout so documents exported by older releases keep restoring.
const (
	KeyCustomers      = "pos_customers"
	KeyProducts       = "pos_products"
	KeyTransactions   = "pos_transactions"
	KeyExpenses       = "pos_expenses"
	KeyCompanyProfile = "pos_company_profile"
	KeyInvoiceFormats = "pos_invoice_formats"
	KeyAdmins         = "pos_admins"
	KeyDataVersion    = "pos_data_version"
)

// Document is the complete key-to-collection snapshot. Absent collections are
// omitted from the serialized form.
type Document struct {
	Customers      []CustomerRecord    `json:"pos_customers,omitempty"`
	Products       []ProductRecord     `json:"pos_products,omitempty"`
	Transactions   []TransactionRecord `json:"pos_transactions,omitempty"`
	Expenses       []ExpenseRecord     `json:"pos_expenses,omitempty"`
	CompanyProfile *ProfileRecord      `json:"pos_company_profile,omitempty"`
	InvoiceFormats []string            `json:"pos_invoice_formats,omitempty"`
	Admins         []AdminRecord       `json:"pos_admins,omitempty"`
	DataVersion    *int                `json:"pos_data_version,omitempty"`
}

// IsEmpty reports whether no recognized collection is present.
func (d Document) IsEmpty() bool {
	return d.Customers == nil &&
		d.Products == nil &&
		d.Transactions == nil &&
		d.Expenses == nil &&
		d.CompanyProfile == nil &&
		d.InvoiceFormats == nil &&
		d.Admins == nil &&
		d.DataVersion == nil
}

// CustomerRecord is the stored form of a customer.
type CustomerRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductRecord is the stored form of a product.
type ProductRecord struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TransactionItemRecord is the stored form of an order line.
type TransactionItemRecord struct {
	ID        uuid.UUID       `json:"id"`
	ProductID *uuid.UUID      `json:"productId"`
	Name      string          `json:"name"`
	Detail    string          `json:"detail"`
	Bahan     string          `json:"bahan"`
	Ukuran    string          `json:"ukuran"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// TransactionRecord is the stored form of an order.
type TransactionRecord struct {
	ID               uuid.UUID               `json:"id"`
	InvoiceNumber    string                  `json:"invoiceNumber"`
	Date             time.Time               `json:"date"`
	EstimasiSelesai  time.Time               `json:"estimasiSelesai"`
	CustomerID       *uuid.UUID              `json:"customerId"`
	CustomerName     string                  `json:"customerName"`
	CustomerAddress  string                  `json:"customerAddress"`
	CustomerPhone    string                  `json:"customerPhone"`
	Items            []TransactionItemRecord `json:"items"`
	Subtotal         decimal.Decimal         `json:"subtotal"`
	DiscountValue    decimal.Decimal         `json:"discountValue"`
	DiscountAmount   decimal.Decimal         `json:"discountAmount"`
	TaxAmount        decimal.Decimal         `json:"taxAmount"`
	Total            decimal.Decimal         `json:"total"`
	DownPayment      decimal.Decimal         `json:"downPayment"`
	RemainingBalance decimal.Decimal         `json:"remainingBalance"`
	Status           string                  `json:"status"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

// ExpenseRecord is the stored form of an expense.
type ExpenseRecord struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// AdminRecord is the stored form of an admin account. The password hash
// travels with the backup so accounts survive a restore.
type AdminRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfileRecord is the stored form of the company profile.
type ProfileRecord struct {
	Name          string `json:"name"`
	Slogan        string `json:"slogan"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BankAccount   string `json:"bankAccount"`
	InvoiceFormat string `json:"invoiceFormat"`
	Logo          string `json:"logo"`
}

func customerRecord(c *entity.Customer) CustomerRecord {
	return CustomerRecord{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r CustomerRecord) toEntity() *entity.Customer {
	return &entity.Customer{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func productRecord(p *entity.Product) ProductRecord {
	return ProductRecord{
		ID:        p.ID,
		Name:      p.Name,
		CostPrice: p.CostPrice,
		SellPrice: p.SellPrice,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r ProductRecord) toEntity() *entity.Product {
	return &entity.Product{
		ID:        r.ID,
		Name:      r.Name,
		CostPrice: r.CostPrice,
		SellPrice: r.SellPrice,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func transactionRecord(t *entity.Transaction) TransactionRecord {
	items := make([]TransactionItemRecord, len(t.Items))
	for i, item := range t.Items {
		items[i] = TransactionItemRecord{
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

	return TransactionRecord{
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
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func (r TransactionRecord) toEntity() *entity.Transaction {
	items := make([]entity.TransactionItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = entity.TransactionItem{
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

	return &entity.Transaction{
		ID:               r.ID,
		InvoiceNumber:    r.InvoiceNumber,
		Date:             r.Date,
		EstimasiSelesai:  r.EstimasiSelesai,
		CustomerID:       r.CustomerID,
		CustomerName:     r.CustomerName,
		CustomerAddress:  r.CustomerAddress,
		CustomerPhone:    r.CustomerPhone,
		Items:            items,
		Subtotal:         r.Subtotal,
		DiscountValue:    r.DiscountValue,
		DiscountAmount:   r.DiscountAmount,
		TaxAmount:        r.TaxAmount,
		Total:            r.Total,
		DownPayment:      r.DownPayment,
		RemainingBalance: r.RemainingBalance,
		Status:           entity.TransactionStatus(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func expenseRecord(e *entity.Expense) ExpenseRecord {
	return ExpenseRecord{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r ExpenseRecord) toEntity() *entity.Expense {
	return &entity.Expense{
		ID:          r.ID,
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func adminRecord(a *entity.Admin) AdminRecord {
	return AdminRecord{
		ID:           a.ID,
		Name:         a.Name,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		Avatar:       a.Avatar,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r AdminRecord) toEntity() *entity.Admin {
	return &entity.Admin{
		ID:           r.ID,
		Name:         r.Name,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         entity.AdminRole(r.Role),
		Avatar:       r.Avatar,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func profileRecord(p *entity.CompanyProfile) *ProfileRecord {
	return &ProfileRecord{
		Name:          p.Name,
		Slogan:        p.Slogan,
		Address:       p.Address,
		Phone:         p.Phone,
		Email:         p.Email,
		BankAccount:   p.BankAccount,
		InvoiceFormat: p.InvoiceFormat,
		Logo:          p.Logo,
	}
}

func (r ProfileRecord) toEntity() *entity.CompanyProfile {
	return &entity.CompanyProfile{
		Name:          r.Name,
		Slogan:        r.Slogan,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		BankAccount:   r.BankAccount,
		InvoiceFormat: r.InvoiceFormat,
		Logo:          r.Logo,
	}
}
