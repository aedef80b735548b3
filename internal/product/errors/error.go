// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidInput marks payloads that pass the field contract but break a business rule.
	ErrInvalidInput = errors.New("invalid input")
)
