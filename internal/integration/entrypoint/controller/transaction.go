// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/percetakan-pos/backend/internal/application/usecase/transaction"
	"github.com/percetakan-pos/backend/internal/domain/entity"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles order endpoints.
type TransactionController struct {
	listUseCase          *transaction.ListTransactionsUseCase
	getUseCase           *transaction.GetTransactionUseCase
	createUseCase        *transaction.CreateTransactionUseCase
	updateUseCase        *transaction.UpdateTransactionUseCase
	deleteUseCase        *transaction.DeleteTransactionUseCase
	addPaymentUseCase    *transaction.AddPaymentUseCase
	invoiceNumberUseCase *transaction.GenerateInvoiceNumberUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	addPaymentUseCase *transaction.AddPaymentUseCase,
	invoiceNumberUseCase *transaction.GenerateInvoiceNumberUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		addPaymentUseCase:    addPaymentUseCase,
		invoiceNumberUseCase: invoiceNumberUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	var input transaction.ListTransactionsInput

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := parseDate(startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := parseDate(endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}
	if customerIDStr := ctx.Query("customerId"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			input.CustomerID = &customerID
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{ID: id})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var request dto.SaveTransactionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input, err := toCreateTransactionInput(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	var request dto.SaveTransactionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	createInput, err := toCreateTransactionInput(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:                     id,
		CreateTransactionInput: createInput,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// AddPayment handles POST /transactions/:id/payments requests.
func (c *TransactionController) AddPayment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	var request dto.AddPaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.addPaymentUseCase.Execute(ctx.Request.Context(), transaction.AddPaymentInput{
		TransactionID: id,
		Amount:        decimal.NewFromFloat(request.Amount),
		PayInFull:     request.PayInFull,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// NextInvoiceNumber handles GET /transactions/next-invoice-number requests.
func (c *TransactionController) NextInvoiceNumber(ctx *gin.Context) {
	output, err := c.invoiceNumberUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InvoiceNumberResponse{InvoiceNumber: output.InvoiceNumber})
}

func toCreateTransactionInput(request dto.SaveTransactionRequest) (transaction.CreateTransactionInput, error) {
	var input transaction.CreateTransactionInput

	date, err := parseDate(request.Date)
	if err != nil {
		return input, err
	}
	estimasiSelesai, err := parseDate(request.EstimasiSelesai)
	if err != nil {
		return input, err
	}

	var customerID *uuid.UUID
	if request.CustomerID != nil && *request.CustomerID != "" {
		id, err := uuid.Parse(*request.CustomerID)
		if err != nil {
			return input, err
		}
		customerID = &id
	}

	items := make([]transaction.TransactionItemInput, len(request.Items))
	for i, item := range request.Items {
		var productID *uuid.UUID
		if item.ProductID != nil && *item.ProductID != "" {
			id, err := uuid.Parse(*item.ProductID)
			if err != nil {
				return input, err
			}
			productID = &id
		}
		items[i] = transaction.TransactionItemInput{
			ProductID: productID,
			Name:      item.Name,
			Detail:    item.Detail,
			Bahan:     item.Bahan,
			Ukuran:    item.Ukuran,
			Quantity:  item.Quantity,
			Price:     decimal.NewFromFloat(item.Price),
		}
	}

	return transaction.CreateTransactionInput{
		Date:            date,
		EstimasiSelesai: estimasiSelesai,
		CustomerID:      customerID,
		CustomerName:    request.CustomerName,
		CustomerAddress: request.CustomerAddress,
		CustomerPhone:   request.CustomerPhone,
		Items:           items,
		DiscountValue:   decimal.NewFromFloat(request.DiscountValue),
		TaxEnabled:      request.TaxEnabled,
		TaxAmount:       decimal.NewFromFloat(request.TaxAmount),
		DownPayment:     decimal.NewFromFloat(request.DownPayment),
		Status:          entity.TransactionStatus(request.Status),
	}, nil
}
