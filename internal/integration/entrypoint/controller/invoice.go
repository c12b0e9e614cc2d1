// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/percetakan-pos/backend/internal/application/usecase/invoice"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/middleware"
)

// InvoiceController handles printable invoice document endpoints.
type InvoiceController struct {
	renderUseCase *invoice.RenderInvoiceUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(renderUseCase *invoice.RenderInvoiceUseCase) *InvoiceController {
	return &InvoiceController{
		renderUseCase: renderUseCase,
	}
}

// Render handles GET /transactions/:id/invoice requests. The issuing admin's
// name is stamped on the document.
func (c *InvoiceController) Render(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	issuedBy, _ := middleware.GetAdminUsernameFromContext(ctx)

	output, err := c.renderUseCase.Execute(ctx.Request.Context(), invoice.RenderInvoiceInput{
		TransactionID: id,
		IssuedBy:      issuedBy,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceDocumentResponse(output.Document))
}
