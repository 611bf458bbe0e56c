package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/pickup-inventory/constant"
	cerr "github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     constant.ErrorType
		wantHTTP int
	}{
		{name: "validation", err: cerr.NewValidationError("items", "is required"), want: constant.ErrValidation, wantHTTP: http.StatusBadRequest},
		{name: "insufficient stock", err: cerr.InsufficientStockError{ProductID: 1, BranchID: 2, Requested: 3}, want: constant.ErrInsufficientStock, wantHTTP: http.StatusConflict},
		{name: "invalid transition", err: cerr.InvalidTransitionError{OrderID: 1, From: constant.OrderStatusPending, To: constant.OrderStatusPickedUp}, want: constant.ErrInvalidTransition, wantHTTP: http.StatusConflict},
		{name: "already terminal", err: cerr.OrderAlreadyTerminalError{OrderID: 1, Status: constant.OrderStatusCancelled}, want: constant.ErrOrderAlreadyTerminal, wantHTTP: http.StatusConflict},
		{name: "not found", err: cerr.NewNotFoundError("branch", 9), want: constant.ErrNotFound, wantHTTP: http.StatusNotFound},
		{name: "conflict", err: cerr.NewConflictError("orders", nil), want: constant.ErrConflict, wantHTTP: http.StatusConflict},
		{name: "custom", err: cerr.SetCustomError(constant.ErrUnauthorize), want: constant.ErrUnauthorize, wantHTTP: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cerr.TypeOf(tt.err))
			assert.True(t, cerr.Is(fmt.Errorf("wrapped: %w", tt.err), tt.want))

			var typed cerr.Typed
			assert.True(t, cerr.As(tt.err, &typed))
			assert.Equal(t, tt.wantHTTP, typed.ErrorHTTPCode())
			assert.Equal(t, constant.ErrorTypeCode[tt.want], typed.ErrorCode())
		})
	}
}

func TestTypeOf_Untyped(t *testing.T) {
	assert.Equal(t, constant.Successful, cerr.TypeOf(nil))
	assert.Equal(t, constant.ErrInternal, cerr.TypeOf(cerr.New("boom")))
	assert.False(t, cerr.Is(nil, constant.ErrInternal))
}

func TestErrorMessages(t *testing.T) {
	err := cerr.InsufficientStockError{ProductID: 4, BranchID: 2, Requested: 5, Available: 1}
	assert.Equal(t, "insufficient stock for product 4 at branch 2: requested 5, available 1", err.Error())
	assert.Contains(t, cerr.NewNotFoundError("product", 7).Error(), "7")
	assert.Contains(t, cerr.NewValidationError("items.quantity", "must be greater than 0").Error(), "items.quantity")
}
