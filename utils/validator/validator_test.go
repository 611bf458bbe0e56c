package validatorx

import (
	"testing"

	"github.com/muhammadheryan/pickup-inventory/model"
	cerr "github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	long := make([]byte, 70)
	for i := range long {
		long[i] = 'x'
	}
	ref := string(long)

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantErr   bool
	}{
		{
			name:  "valid reserve request",
			input: &model.ReserveOrderRequest{BranchID: 1, Items: []model.OrderItemRequest{{ProductID: 2, Quantity: 1}}},
		},
		{
			name:      "missing branch",
			input:     &model.ReserveOrderRequest{Items: []model.OrderItemRequest{{ProductID: 2, Quantity: 1}}},
			wantErr:   true,
			wantField: "branch_id",
		},
		{
			name:      "nested item quantity uses json names",
			input:     &model.ReserveOrderRequest{BranchID: 1, Items: []model.OrderItemRequest{{ProductID: 2, Quantity: 0}}},
			wantErr:   true,
			wantField: "items[0].quantity",
		},
		{
			name:      "item quantity above the line limit",
			input:     &model.ReserveOrderRequest{BranchID: 1, Items: []model.OrderItemRequest{{ProductID: 2, Quantity: 1_000_001}}},
			wantErr:   true,
			wantField: "items[0].quantity",
		},
		{
			name:      "reference too long",
			input:     &model.MovementRequest{Type: "COMPRA", Quantity: 1, ProductID: 1, ReferenceID: &ref},
			wantErr:   true,
			wantField: "reference_id",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var verr cerr.ValidationError
			require.True(t, cerr.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}
