package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/pickup-inventory/application/order"
	"github.com/muhammadheryan/pickup-inventory/cmd/config"
	"github.com/muhammadheryan/pickup-inventory/constant"
	reservationmocks "github.com/muhammadheryan/pickup-inventory/mocks/application/reservation"
	orderrepomocks "github.com/muhammadheryan/pickup-inventory/mocks/repository/order"
	txmocks "github.com/muhammadheryan/pickup-inventory/mocks/repository/tx"
	"github.com/muhammadheryan/pickup-inventory/model"
	cerr "github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderApp_CancelOrder_Mocked(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		orderRepo   *orderrepomocks.OrderRepository
		reservation *reservationmocks.Manager
	}
	type args struct {
		ctx     context.Context
		orderID uint64
	}

	items := []model.OrderItem{{ProductID: 4, Quantity: 2}, {ProductID: 9, Quantity: 1}}
	lines := []model.StockLine{{ProductID: 4, Quantity: 2}, {ProductID: 9, Quantity: 1}}
	pending := func() *model.Order {
		return &model.Order{ID: 1, BranchID: 2, Status: constant.OrderStatusPending}
	}
	conflict := cerr.NewConflictError("orders", errors.New("Error 1213: Deadlock found"))

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     constant.OrderStatus
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending order releases its items",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pending(), nil).Once()
				f.orderRepo.On("GetOrderItemsTx", mock.Anything, tx, uint64(1)).Return(items, nil).Once()
				f.reservation.On("ReleaseForOrderTx", mock.Anything, tx, uint64(2), lines).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusCancelled, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: constant.OrderStatusCancelled,
		},
		{
			name: "success: retried as a whole after a lock conflict",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(nil, conflict).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pending(), nil).Once()
				f.orderRepo.On("GetOrderItemsTx", mock.Anything, tx, uint64(1)).Return(items, nil).Once()
				f.reservation.On("ReleaseForOrderTx", mock.Anything, tx, uint64(2), lines).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusCancelled, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: constant.OrderStatusCancelled,
		},
		{
			name: "error: conflict outlasts the retries",
			fields: fields{
				config: &config.Config{Order: config.OrderConfig{ConflictRetries: 1}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
				f.txRepo.On("RollbackTx", tx).Return(nil).Twice()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(nil, conflict).Twice()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: BeginTx returns error",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: order not found",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: release fails, status untouched",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pending(), nil).Once()
				f.orderRepo.On("GetOrderItemsTx", mock.Anything, tx, uint64(1)).Return(items, nil).Once()
				f.reservation.On("ReleaseForOrderTx", mock.Anything, tx, uint64(2), lines).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: picked up order is terminal",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(&model.Order{ID: 1, BranchID: 2, Status: constant.OrderStatusPickedUp}, nil).Once()
				f.orderRepo.On("GetOrderItemsTx", mock.Anything, tx, uint64(1)).Return(items, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderAlreadyTerminal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := tt.fields
			if f.config == nil {
				f.config = &config.Config{Order: config.OrderConfig{ConflictRetries: 2}}
			}
			f.txRepo = txmocks.NewTxRepository(t)
			f.orderRepo = orderrepomocks.NewOrderRepository(t)
			f.reservation = reservationmocks.NewManager(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			app := apporder.NewOrderApp(f.config, f.txRepo, f.orderRepo, nil, nil, f.reservation, nil, nil, nil)
			got, err := app.CancelOrder(context.Background(), 1, model.Actor{UserID: 1})
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var typed cerr.Typed
				if !errors.As(err, &typed) {
					t.Fatalf("error type = %T, want a typed error", err)
				}
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], typed.ErrorCode())
				return
			}

			assert.Equal(t, tt.want, got.Status)
		})
	}
}
