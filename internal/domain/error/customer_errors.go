// Package error defines domain-specific errors for the POS application.
package error

import "errors"

// Customer domain errors.
var (
	// ErrCustomerNotFound is returned when a customer is not found in the system.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerHasTransactions is returned when deleting a customer that is
	// referenced by at least one transaction.
	ErrCustomerHasTransactions = errors.New("customer has transaction history")
)

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the system.
	ErrProductNotFound = errors.New("product not found")
)

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")
)
