// Package error defines domain-specific errors for the POS application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrLogoTooLarge is returned when the uploaded logo exceeds the size limit.
	ErrLogoTooLarge = errors.New("logo exceeds the maximum allowed size")

	// ErrInvoiceFormatNameEmpty is returned when an invoice format name is blank.
	ErrInvoiceFormatNameEmpty = errors.New("invoice format name cannot be empty")

	// ErrInvoiceFormatExists is returned when an invoice format name is already
	// defined, case-insensitively, as a default or custom format.
	ErrInvoiceFormatExists = errors.New("invoice format name already exists")
)

// Backup domain errors.
var (
	// ErrBackupInProgress is returned when an export or restore is requested
	// while another one is still running.
	ErrBackupInProgress = errors.New("a backup operation is already in progress")

	// ErrInvalidBackupDocument is returned when a restore document is not a
	// JSON object containing at least one recognized collection key.
	ErrInvalidBackupDocument = errors.New("backup document is invalid or empty")

	// ErrRenderInProgress is returned when an invoice document is requested
	// while a previous generation has not finished.
	ErrRenderInProgress = errors.New("an invoice render is already in progress")
)
