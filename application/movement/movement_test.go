package movement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/pickup-inventory/application/audit"
	"github.com/muhammadheryan/pickup-inventory/application/movement"
	"github.com/muhammadheryan/pickup-inventory/constant"
	auditmocks "github.com/muhammadheryan/pickup-inventory/mocks/application/audit"
	txmocks "github.com/muhammadheryan/pickup-inventory/mocks/repository/tx"
	"github.com/muhammadheryan/pickup-inventory/model"
	branchrepo "github.com/muhammadheryan/pickup-inventory/repository/branch"
	"github.com/muhammadheryan/pickup-inventory/repository/dbtest"
	inventoryrepo "github.com/muhammadheryan/pickup-inventory/repository/inventory"
	movementrepo "github.com/muhammadheryan/pickup-inventory/repository/movement"
	productrepo "github.com/muhammadheryan/pickup-inventory/repository/product"
	txrepo "github.com/muhammadheryan/pickup-inventory/repository/tx"
	cerr "github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ref(v uint64) *uint64 { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		m         *model.StockMovement
		wantField string
	}{
		{
			name: "valid purchase",
			m:    &model.StockMovement{Type: constant.MovementCompra, Quantity: 1, ProductID: 1, ToBranchID: ref(1)},
		},
		{
			name: "valid transfer",
			m:    &model.StockMovement{Type: constant.MovementTransferencia, Quantity: 1, ProductID: 1, FromBranchID: ref(1), ToBranchID: ref(2)},
		},
		{
			name:      "unknown type",
			m:         &model.StockMovement{Type: "REGALO", Quantity: 1, ProductID: 1, ToBranchID: ref(1)},
			wantField: "type",
		},
		{
			name:      "zero quantity",
			m:         &model.StockMovement{Type: constant.MovementProduccion, Quantity: 0, ProductID: 1, ToBranchID: ref(1)},
			wantField: "quantity",
		},
		{
			name:      "negative quantity",
			m:         &model.StockMovement{Type: constant.MovementSobrante, Quantity: -2, ProductID: 1, ToBranchID: ref(1)},
			wantField: "quantity",
		},
		{
			name:      "loss without source branch",
			m:         &model.StockMovement{Type: constant.MovementMerma, Quantity: 1, ProductID: 1},
			wantField: "from_branch_id",
		},
		{
			name:      "theft with destination branch",
			m:         &model.StockMovement{Type: constant.MovementPerdidaRobo, Quantity: 1, ProductID: 1, FromBranchID: ref(1), ToBranchID: ref(2)},
			wantField: "to_branch_id",
		},
		{
			name:      "production without destination branch",
			m:         &model.StockMovement{Type: constant.MovementProduccion, Quantity: 1, ProductID: 1},
			wantField: "to_branch_id",
		},
		{
			name:      "transfer without destination",
			m:         &model.StockMovement{Type: constant.MovementTransferencia, Quantity: 1, ProductID: 1, FromBranchID: ref(1)},
			wantField: "to_branch_id",
		},
		{
			name:      "transfer to the same branch",
			m:         &model.StockMovement{Type: constant.MovementTransferencia, Quantity: 1, ProductID: 1, FromBranchID: ref(3), ToBranchID: ref(3)},
			wantField: "to_branch_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := movement.Validate(tt.m)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve cerr.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestReplay(t *testing.T) {
	movements := []model.StockMovement{
		{Type: constant.MovementCompra, Quantity: 10, ToBranchID: ref(1)},
		{Type: constant.MovementTransferencia, Quantity: 4, FromBranchID: ref(1), ToBranchID: ref(2)},
		{Type: constant.MovementVenta, Quantity: 2, FromBranchID: ref(1)},
		{Type: constant.MovementSobrante, Quantity: 1, ToBranchID: ref(2)},
	}
	assert.Equal(t, int64(4), movement.Replay(movements, 1))
	assert.Equal(t, int64(5), movement.Replay(movements, 2))
	assert.Equal(t, int64(0), movement.Replay(nil, 1))
}

type env struct {
	app     movement.MovementApp
	audit   audit.Emitter
	product uint64
	branch1 uint64
	branch2 uint64
}

func newEnv(t *testing.T, publisher audit.Publisher) (env, func(table string) int, func(p, b uint64) (int64, int64)) {
	db := dbtest.Open(t)
	emitter := audit.NewEmitter(publisher)
	app := movement.NewMovementApp(
		txrepo.NewTxRepository(db),
		movementrepo.NewMovementRepository(db),
		inventoryrepo.NewInventoryRepository(db),
		branchrepo.NewBranchRepository(db),
		productrepo.NewProductRepository(db),
		emitter,
	)
	e := env{
		app:     app,
		audit:   emitter,
		product: dbtest.SeedProduct(t, db, "Bolillo", "3.50"),
		branch1: dbtest.SeedBranch(t, db, "Centro", constant.BranchStatusActive),
		branch2: dbtest.SeedBranch(t, db, "Norte", constant.BranchStatusActive),
	}
	count := func(table string) int { return dbtest.CountRows(t, db, table) }
	counters := func(p, b uint64) (int64, int64) { return dbtest.Counters(t, db, p, b) }
	return e, count, counters
}

func TestRecordMovement_Transfer(t *testing.T) {
	ctx := context.Background()
	e, count, counters := newEnv(t, nil)
	actor := model.Actor{UserID: 9, Role: "admin"}

	_, err := e.app.RecordMovement(ctx, &model.MovementRequest{
		Type: constant.MovementCompra, Quantity: 10, ProductID: e.product, ToBranchID: ref(e.branch1),
	}, actor)
	require.NoError(t, err)

	got, err := e.app.RecordMovement(ctx, &model.MovementRequest{
		Type: constant.MovementTransferencia, Quantity: 4, ProductID: e.product,
		FromBranchID: ref(e.branch1), ToBranchID: ref(e.branch2),
	}, actor)
	require.NoError(t, err)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, uint64(9), *got.CreatedBy)

	qty1, _ := counters(e.product, e.branch1)
	qty2, _ := counters(e.product, e.branch2)
	assert.Equal(t, int64(6), qty1)
	assert.Equal(t, int64(4), qty2)
	assert.Equal(t, 2, count("stock_movement"))

	transfers, err := e.app.ListMovements(ctx, &model.MovementFilter{Type: constant.MovementTransferencia})
	require.NoError(t, err)
	assert.Len(t, transfers, 1)
}

func TestRecordMovement_TransferExceedingStockLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	e, count, counters := newEnv(t, nil)

	_, err := e.app.RecordMovement(ctx, &model.MovementRequest{
		Type: constant.MovementProduccion, Quantity: 3, ProductID: e.product, ToBranchID: ref(e.branch1),
	}, model.Actor{})
	require.NoError(t, err)

	// branch2 sorts after branch1, so its leg never runs; the movement row must still roll back
	_, err = e.app.RecordMovement(ctx, &model.MovementRequest{
		Type: constant.MovementTransferencia, Quantity: 5, ProductID: e.product,
		FromBranchID: ref(e.branch1), ToBranchID: ref(e.branch2),
	}, model.Actor{})
	assert.True(t, cerr.Is(err, constant.ErrInsufficientStock), "got %v", err)

	qty1, _ := counters(e.product, e.branch1)
	assert.Equal(t, int64(3), qty1)
	assert.Equal(t, 1, count("stock_movement"))
	assert.Equal(t, 1, count("inventory"))
}

func TestRecordMovement_Rejections(t *testing.T) {
	ctx := context.Background()
	e, count, _ := newEnv(t, nil)

	tests := []struct {
		name    string
		req     *model.MovementRequest
		errType constant.ErrorType
	}{
		{
			name:    "sale through the admin path",
			req:     &model.MovementRequest{Type: constant.MovementVenta, Quantity: 1, ProductID: e.product, FromBranchID: ref(e.branch1)},
			errType: constant.ErrValidation,
		},
		{
			name:    "missing product",
			req:     &model.MovementRequest{Type: constant.MovementCompra, Quantity: 1, ToBranchID: ref(e.branch1)},
			errType: constant.ErrValidation,
		},
		{
			name:    "unknown product",
			req:     &model.MovementRequest{Type: constant.MovementCompra, Quantity: 1, ProductID: 404, ToBranchID: ref(e.branch1)},
			errType: constant.ErrNotFound,
		},
		{
			name:    "unknown branch",
			req:     &model.MovementRequest{Type: constant.MovementCompra, Quantity: 1, ProductID: e.product, ToBranchID: ref(404)},
			errType: constant.ErrNotFound,
		},
		{
			name:    "loss larger than stock",
			req:     &model.MovementRequest{Type: constant.MovementPerdidaRobo, Quantity: 1, ProductID: e.product, FromBranchID: ref(e.branch1)},
			errType: constant.ErrInsufficientStock,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.app.RecordMovement(ctx, tt.req, model.Actor{})
			require.Error(t, err)
			assert.Equal(t, tt.errType, cerr.TypeOf(err), "got %v", err)
		})
	}
	assert.Equal(t, 0, count("stock_movement"))
}

func TestRecordMovement_AuditFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	publisher := auditmocks.NewPublisher(t)
	publisher.On("PublishAuditEvent", mock.Anything, mock.MatchedBy(func(ev model.AuditEvent) bool {
		return ev.Action == model.AuditActionMovement && ev.Entity == "stock_movement" && ev.ID != ""
	})).Return(errors.New("broker down")).Once()

	e, count, _ := newEnv(t, publisher)
	got, err := e.app.RecordMovement(ctx, &model.MovementRequest{
		Type: constant.MovementSobrante, Quantity: 2, ProductID: e.product, ToBranchID: ref(e.branch1),
	}, model.Actor{})
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, 1, count("stock_movement"))
	e.audit.Wait()
}

func TestRecordMovement_BeginTxFailure(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	app := movement.NewMovementApp(txRepo, nil, nil, nil, nil, nil)
	_, err := app.RecordMovement(context.Background(), &model.MovementRequest{
		Type: constant.MovementCompra, Quantity: 1, ProductID: 1, ToBranchID: ref(1),
	}, model.Actor{})

	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInternal], ce.ErrorCode())
}
