// Package apperror provides structured error handling following RFC 7807 Problem Details.
// All business errors must use AppError for consistent API responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeConfig   = "CONFIG_ERROR"

	// Validation errors (400)
	CodeValidation             = "VALIDATION_ERROR"
	CodeInvalidQuantity        = "INVALID_QUANTITY"
	CodeInvalidDiscount        = "INVALID_DISCOUNT"
	CodeMissingCustomerDetails = "MISSING_CUSTOMER_DETAILS"

	// Business rule violations (422)
	CodeUnknownProduct   = "UNKNOWN_PRODUCT"
	CodePriceNotComputed = "PRICE_NOT_COMPUTED"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type for the desk.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field, value, limits)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewBusinessRule creates a business rule violation error (422)
func NewBusinessRule(code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NewUnknownProduct is returned when a product name is not in the catalog.
func NewUnknownProduct(name string) *AppError {
	return NewBusinessRule(CodeUnknownProduct, "product is not in the catalog").
		WithDetail("product", name)
}

// NewInvalidQuantity is returned for quantities below one.
func NewInvalidQuantity(quantity int) *AppError {
	return &AppError{
		Code:       CodeInvalidQuantity,
		Message:    "quantity must be at least 1",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": "quantity", "value": quantity},
	}
}

// NewInvalidDiscount is returned for discounts outside 0..100 percent.
func NewInvalidDiscount(percent int) *AppError {
	return &AppError{
		Code:       CodeInvalidDiscount,
		Message:    "discount percentage must be between 0 and 100",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": "discountPercent", "value": percent},
	}
}

// NewMissingCustomerDetails is returned when name or phone is empty.
func NewMissingCustomerDetails(missing ...string) *AppError {
	return &AppError{
		Code:       CodeMissingCustomerDetails,
		Message:    "Please fill in all customer details.",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"fields": missing},
	}
}

// NewPriceNotComputed is returned when an invoice is requested without a fresh price.
func NewPriceNotComputed() *AppError {
	return NewBusinessRule(CodePriceNotComputed,
		"Please calculate the total price before generating the invoice.")
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewConfig creates a startup configuration error.
func NewConfig(message string) *AppError {
	return &AppError{
		Code:       CodeConfig,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetHTTPStatus returns appropriate HTTP status for any error.
// An AppError without a status is treated as internal.
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok && appErr.HTTPStatus != 0 {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}
