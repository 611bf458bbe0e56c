package movement_test

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/muhammadheryan/pickup-inventory/repository/dbtest"
	"github.com/muhammadheryan/pickup-inventory/repository/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(v uint64) *uint64 { return &v }

func str(s string) *string { return &s }

func TestMovementRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := movement.NewMovementRepository(db)

	now := time.Now().UTC()
	rows := []model.StockMovement{
		{Type: constant.MovementCompra, Quantity: 10, ProductID: 1, ToBranchID: ref(1), ReferenceID: str("PO-7"), CreatedAt: now},
		{Type: constant.MovementTransferencia, Quantity: 4, ProductID: 1, FromBranchID: ref(1), ToBranchID: ref(2), CreatedAt: now},
		{Type: constant.MovementMerma, Quantity: 1, ProductID: 1, FromBranchID: ref(2), Note: str("dropped tray"), CreatedAt: now},
		{Type: constant.MovementProduccion, Quantity: 3, ProductID: 2, ToBranchID: ref(1), CreatedAt: now},
	}

	tx, err := db.Beginx()
	require.NoError(t, err)
	for i := range rows {
		id, err := repo.InsertTx(ctx, tx, &rows[i])
		require.NoError(t, err)
		assert.Equal(t, uint64(i+1), id)
	}
	require.NoError(t, tx.Commit())

	t.Run("branch history in creation order", func(t *testing.T) {
		tx, err := db.Beginx()
		require.NoError(t, err)
		defer tx.Rollback()

		got, err := repo.ListForBranchTx(ctx, tx, 1, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, constant.MovementTransferencia, got[0].Type)
		assert.Equal(t, constant.MovementMerma, got[1].Type)
		require.NotNil(t, got[1].Note)
		assert.Equal(t, "dropped tray", *got[1].Note)
	})

	tests := []struct {
		name   string
		filter *model.MovementFilter
		want   []uint64
	}{
		{name: "no filter, newest first", filter: nil, want: []uint64{4, 3, 2, 1}},
		{name: "by product", filter: &model.MovementFilter{ProductID: 1}, want: []uint64{3, 2, 1}},
		{name: "by branch on either leg", filter: &model.MovementFilter{BranchID: 2}, want: []uint64{3, 2}},
		{name: "by type", filter: &model.MovementFilter{Type: constant.MovementProduccion}, want: []uint64{4}},
		{name: "by reference", filter: &model.MovementFilter{ReferenceID: "PO-7"}, want: []uint64{1}},
		{name: "limit", filter: &model.MovementFilter{Limit: 1}, want: []uint64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]uint64, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
