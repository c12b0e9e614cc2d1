// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/percetakan-pos/backend/internal/application/usecase/report"
)

// CashflowResponse represents the cashflow report in API responses.
type CashflowResponse struct {
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpense"`
	Net          string `json:"net"`
}

// ToCashflowResponse converts a cashflow output to its response form.
func ToCashflowResponse(output *report.GetCashflowOutput) CashflowResponse {
	return CashflowResponse{
		TotalIncome:  output.TotalIncome.String(),
		TotalExpense: output.TotalExpense.String(),
		Net:          output.Net.String(),
	}
}

// ProductSalesRowResponse represents one row of the per-product report.
type ProductSalesRowResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

// ToProductSalesResponse converts a per-product output to its response form.
func ToProductSalesResponse(output *report.GetProductSalesOutput) []ProductSalesRowResponse {
	rows := make([]ProductSalesRowResponse, len(output.Rows))
	for i, row := range output.Rows {
		rows[i] = ProductSalesRowResponse{
			Name:     row.Name,
			Quantity: row.Quantity,
			Total:    row.Total.String(),
		}
	}
	return rows
}

// CustomerSummaryResponse represents the per-customer report.
type CustomerSummaryResponse struct {
	TransactionCount int    `json:"transactionCount"`
	Total            string `json:"total"`
	DownPayment      string `json:"downPayment"`
	RemainingBalance string `json:"remainingBalance"`
}

// ToCustomerSummaryResponse converts a per-customer output to its response form.
func ToCustomerSummaryResponse(output *report.GetCustomerSummaryOutput) CustomerSummaryResponse {
	return CustomerSummaryResponse{
		TransactionCount: output.TransactionCount,
		Total:            output.Total.String(),
		DownPayment:      output.DownPayment.String(),
		RemainingBalance: output.RemainingBalance.String(),
	}
}

// LedgerEntryResponse represents one leg of the merged ledger.
type LedgerEntryResponse struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
}

// ToLedgerResponse converts a ledger output to its response form.
func ToLedgerResponse(output *report.GetLedgerOutput) []LedgerEntryResponse {
	entries := make([]LedgerEntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = LedgerEntryResponse{
			Date:        entry.Date,
			Type:        entry.Type,
			Description: entry.Description,
			Amount:      entry.Amount.String(),
		}
	}
	return entries
}

// DashboardResponse represents the landing-page summary.
type DashboardResponse struct {
	TodayIncome       string         `json:"todayIncome"`
	MonthIncome       string         `json:"monthIncome"`
	OutstandingAmount string         `json:"outstandingAmount"`
	TransactionCount  int            `json:"transactionCount"`
	StatusCounts      map[string]int `json:"statusCounts"`
}

// ToDashboardResponse converts a dashboard output to its response form.
func ToDashboardResponse(output *report.GetDashboardOutput) DashboardResponse {
	statusCounts := make(map[string]int, len(output.StatusCounts))
	for status, count := range output.StatusCounts {
		statusCounts[string(status)] = count
	}

	return DashboardResponse{
		TodayIncome:       output.TodayIncome.String(),
		MonthIncome:       output.MonthIncome.String(),
		OutstandingAmount: output.OutstandingAmount.String(),
		TransactionCount:  output.TransactionCount,
		StatusCounts:      statusCounts,
	}
}
