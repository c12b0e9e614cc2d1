// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/usecase/report"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// ReportController handles financial report endpoints.
type ReportController struct {
	cashflowUseCase        *report.GetCashflowUseCase
	productSalesUseCase    *report.GetProductSalesUseCase
	customerSummaryUseCase *report.GetCustomerSummaryUseCase
	ledgerUseCase          *report.GetLedgerUseCase
	dashboardUseCase       *report.GetDashboardUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	cashflowUseCase *report.GetCashflowUseCase,
	productSalesUseCase *report.GetProductSalesUseCase,
	customerSummaryUseCase *report.GetCustomerSummaryUseCase,
	ledgerUseCase *report.GetLedgerUseCase,
	dashboardUseCase *report.GetDashboardUseCase,
) *ReportController {
	return &ReportController{
		cashflowUseCase:        cashflowUseCase,
		productSalesUseCase:    productSalesUseCase,
		customerSummaryUseCase: customerSummaryUseCase,
		ledgerUseCase:          ledgerUseCase,
		dashboardUseCase:       dashboardUseCase,
	}
}

// Cashflow handles GET /reports/cashflow requests.
func (c *ReportController) Cashflow(ctx *gin.Context) {
	start, end, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.cashflowUseCase.Execute(ctx.Request.Context(), report.GetCashflowInput{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashflowResponse(output))
}

// ProductSales handles GET /reports/product-sales requests.
func (c *ReportController) ProductSales(ctx *gin.Context) {
	start, end, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.productSalesUseCase.Execute(ctx.Request.Context(), report.GetProductSalesInput{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductSalesResponse(output))
}

// CustomerSummary handles GET /reports/customers/:id requests.
func (c *ReportController) CustomerSummary(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	output, err := c.customerSummaryUseCase.Execute(ctx.Request.Context(), report.GetCustomerSummaryInput{
		CustomerID: id,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerSummaryResponse(output))
}

// Ledger handles GET /reports/ledger requests.
func (c *ReportController) Ledger(ctx *gin.Context) {
	start, end, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.ledgerUseCase.Execute(ctx.Request.Context(), report.GetLedgerInput{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output))
}

// Dashboard handles GET /reports/dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	output, err := c.dashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

func (c *ReportController) parseRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	start, err := parseDate(ctx.Query("startDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing startDate"})
		return time.Time{}, time.Time{}, false
	}
	end, err := parseDate(ctx.Query("endDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing endDate"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
