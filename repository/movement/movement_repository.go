package movement

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/muhammadheryan/pickup-inventory/utils/dbutil"
)

// MovementRepository only ever inserts and reads; stock_movement rows are immutable.
type MovementRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) (uint64, error)
	ListForBranchTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64) ([]model.StockMovement, error)
	List(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewMovementRepository(conn *sqlx.DB) MovementRepository {
	return &SQL{conn: conn}
}

const (
	insertMovement = `INSERT INTO stock_movement
(type, quantity, product_id, from_branch_id, to_branch_id, reference_id, note, created_at, created_by)
VALUES (:type, :quantity, :product_id, :from_branch_id, :to_branch_id, :reference_id, :note, :created_at, :created_by)`

	selectMovementBase = `SELECT id, type, quantity, product_id, from_branch_id, to_branch_id, reference_id, note, created_at, created_by
FROM stock_movement WHERE true`

	defaultListLimit = 500
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) (uint64, error) {
	res, err := tx.NamedExecContext(ctx, insertMovement, m)
	if err != nil {
		return 0, dbutil.Translate("stock_movement", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListForBranchTx returns, in creation order, every movement with a leg at branchID.
func (r *SQL) ListForBranchTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64) ([]model.StockMovement, error) {
	query := selectMovementBase + " AND product_id = ? AND (from_branch_id = ? OR to_branch_id = ?) ORDER BY id"
	movements := make([]model.StockMovement, 0)
	if err := tx.SelectContext(ctx, &movements, query, productID, branchID, branchID); err != nil {
		return nil, err
	}
	return movements, nil
}

// List returns the newest movements first.
func (r *SQL) List(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, error) {
	query := selectMovementBase
	args := make([]any, 0, 5)
	limit := defaultListLimit

	if filter != nil {
		if filter.ProductID != 0 {
			query += " AND product_id = ?"
			args = append(args, filter.ProductID)
		}
		if filter.BranchID != 0 {
			query += " AND (from_branch_id = ? OR to_branch_id = ?)"
			args = append(args, filter.BranchID, filter.BranchID)
		}
		if filter.Type != "" {
			query += " AND type = ?"
			args = append(args, filter.Type)
		}
		if filter.ReferenceID != "" {
			query += " AND reference_id = ?"
			args = append(args, filter.ReferenceID)
		}
		if filter.Limit > 0 && filter.Limit < defaultListLimit {
			limit = filter.Limit
		}
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	movements := make([]model.StockMovement, 0)
	if err := r.conn.SelectContext(ctx, &movements, query, args...); err != nil {
		return nil, err
	}
	return movements, nil
}
