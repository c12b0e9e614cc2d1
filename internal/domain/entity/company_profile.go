// Package entity defines the core business entities for the domain layer.
package entity

import (
	"regexp"
	"strings"
)

// addressSeparator mirrors how addresses are tokenized on the printed
// invoice: comma-space first, plain spaces otherwise.
var addressSeparator = regexp.MustCompile(`, | `)

// DefaultInvoiceFormats are the built-in paper formats always offered
// alongside any stored custom formats.
var DefaultInvoiceFormats = []string{
	"Kertas A5 (Lanskap)",
	"Kertas A4 (Potret)",
	"Struk Thermal 80mm",
}

// CompanyProfile is the singleton business identity printed on invoices.
type CompanyProfile struct {
	Name          string
	Slogan        string
	Address       string
	Phone         string
	Email         string
	BankAccount   string // newline-separated account lines
	InvoiceFormat string
	Logo          string // data URL or empty
}

// City extracts a city name from the profile address for the invoice
// letterhead. Indonesian addresses usually carry the city or regency as the
// second-to-last token, so that token is used with a generic fallback.
func (p CompanyProfile) City() string {
	if p.Address == "" {
		return "Kota"
	}
	parts := addressSeparator.Split(p.Address, -1)
	if len(parts) >= 2 && parts[len(parts)-2] != "" {
		return parts[len(parts)-2]
	}
	return "Kota"
}

// BankAccountLines splits the bank account field into displayable lines.
func (p CompanyProfile) BankAccountLines() []string {
	if p.BankAccount == "" {
		return nil
	}
	return strings.Split(p.BankAccount, "\n")
}
