// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
	"github.com/percetakan-pos/backend/internal/integration/entrypoint/dto"
)

// respondDomainError maps a domain error to its HTTP status and writes the
// error response. Unknown errors become an opaque 500.
func respondDomainError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerror.ErrTransactionNotFound),
		errors.Is(err, domainerror.ErrCustomerNotFound),
		errors.Is(err, domainerror.ErrProductNotFound),
		errors.Is(err, domainerror.ErrExpenseNotFound),
		errors.Is(err, domainerror.ErrAdminNotFound):
		status = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, domainerror.ErrInvalidCredentials),
		errors.Is(err, domainerror.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()

	case errors.Is(err, domainerror.ErrCustomerHasTransactions),
		errors.Is(err, domainerror.ErrUsernameTaken),
		errors.Is(err, domainerror.ErrLastAdmin),
		errors.Is(err, domainerror.ErrInvoiceFormatExists),
		errors.Is(err, domainerror.ErrBackupInProgress),
		errors.Is(err, domainerror.ErrRenderInProgress):
		status = http.StatusConflict
		message = err.Error()

	case errors.Is(err, domainerror.ErrTransactionHasNoItems),
		errors.Is(err, domainerror.ErrCustomerNameRequired),
		errors.Is(err, domainerror.ErrInvalidTransactionStatus),
		errors.Is(err, domainerror.ErrInvalidQuantity),
		errors.Is(err, domainerror.ErrPaymentExceedsTotal),
		errors.Is(err, domainerror.ErrNegativePayment),
		errors.Is(err, domainerror.ErrInvalidAdminRole),
		errors.Is(err, domainerror.ErrLogoTooLarge),
		errors.Is(err, domainerror.ErrInvoiceFormatNameEmpty),
		errors.Is(err, domainerror.ErrInvalidBackupDocument):
		status = http.StatusBadRequest
		message = err.Error()
	}

	response := dto.ErrorResponse{Error: message}

	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		response.Code = string(transactionErr.Code)
	}
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		response.Code = string(authErr.Code)
	}

	ctx.JSON(status, response)
}

// parseDate accepts the two timestamp shapes clients send: a bare date or a
// full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
