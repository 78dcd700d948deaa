package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	err := NewUnknownProduct("brass tap")
	assert.Equal(t, "UNKNOWN_PRODUCT: product is not in the catalog", err.Error())

	cause := errors.New("boom")
	wrapped := NewInternal(cause)
	assert.Equal(t, "INTERNAL_ERROR: Internal server error (caused by: boom)", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("price order: %w", NewInvalidDiscount(120))

	assert.True(t, Is(err, CodeInvalidDiscount))
	assert.False(t, Is(err, CodeInvalidQuantity))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(err))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 120, appErr.Details["value"])
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown product", NewUnknownProduct("x"), http.StatusUnprocessableEntity},
		{"price not computed", NewPriceNotComputed(), http.StatusUnprocessableEntity},
		{"missing customer", NewMissingCustomerDetails("customerName"), http.StatusBadRequest},
		{"not found", NewNotFound("draft", "abc"), http.StatusNotFound},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"no status set", &AppError{Code: "CUSTOM"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("invoice", "last")))
	assert.False(t, IsNotFound(NewValidation("bad")))
	assert.False(t, IsNotFound(nil))
}
