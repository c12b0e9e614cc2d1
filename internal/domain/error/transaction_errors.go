// Package error defines domain-specific errors for the POS application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionHasNoItems is returned when a transaction is saved without any billable item.
	ErrTransactionHasNoItems = errors.New("transaction has no items")

	// ErrCustomerNameRequired is returned when a transaction is saved without a customer name.
	ErrCustomerNameRequired = errors.New("customer name is required")

	// ErrInvalidTransactionStatus is returned when the status is not a known state.
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")

	// ErrInvalidQuantity is returned when an item quantity is below one.
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")

	// ErrPaymentExceedsTotal is returned when a payment would push the amount paid past the total.
	ErrPaymentExceedsTotal = errors.New("payment exceeds the invoice total")

	// ErrNegativePayment is returned when a payment amount is not positive.
	ErrNegativePayment = errors.New("payment amount must be positive")
)

// TransactionErrorCode represents transaction error codes.
type TransactionErrorCode string

// Transaction error codes.
const (
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010001"
	ErrCodeTransactionHasNoItems    TransactionErrorCode = "TXN-010002"
	ErrCodeCustomerNameRequired     TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionStatus TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidQuantity          TransactionErrorCode = "TXN-010005"
	ErrCodePaymentExceedsTotal      TransactionErrorCode = "TXN-010006"
	ErrCodeNegativePayment          TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010008"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
