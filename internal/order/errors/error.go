// Package errors provides custom error types for order-related operations.
package errors

import "errors"

var ErrOrderNotFound = errors.New("order not found")
