package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/muhammadheryan/pickup-inventory/utils/dbutil"
	cerr "github.com/muhammadheryan/pickup-inventory/utils/errors"
)

// ErrReservedUnderflow is returned when a release asks for more than is reserved.
var ErrReservedUnderflow = errors.New("reserved would drop below zero")

// InventoryRepository is the ledger store for the quantity/reserved counters.
// AdjustQuantityTx belongs to the movement log and AdjustReservedTx to the
// reservation manager; nothing else writes these columns.
type InventoryRepository interface {
	GetAvailable(ctx context.Context, productID uint64, branchID *uint64) (int64, error)
	List(ctx context.Context, filter *model.InventoryFilter) ([]model.InventoryRecord, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64) (*model.InventoryRecord, error)
	AdjustQuantityTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64, delta int64) (*model.InventoryRecord, error)
	AdjustReservedTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64, delta int64) (*model.InventoryRecord, error)
}

type SQL struct {
	conn *sqlx.DB
	now  func() time.Time
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn, now: time.Now}
}

const (
	selectInventoryBase = `SELECT product_id, branch_id, quantity, reserved, updated_at FROM inventory WHERE true`
	selectInventoryRow  = `SELECT product_id, branch_id, quantity, reserved, updated_at FROM inventory WHERE product_id = ? AND branch_id = ?`
	sumAvailable        = `SELECT COALESCE(SUM(quantity - reserved), 0) FROM inventory WHERE product_id = ?`
	branchAvailable     = `SELECT quantity - reserved FROM inventory WHERE product_id = ? AND branch_id = ?`
	insertEmptyRow      = ` INTO inventory (product_id, branch_id, quantity, reserved, updated_at) VALUES (?, ?, 0, 0, ?)`
	updateQuantity      = `UPDATE inventory SET quantity = ?, updated_at = ? WHERE product_id = ? AND branch_id = ?`
	updateReserved      = `UPDATE inventory SET reserved = ?, updated_at = ? WHERE product_id = ? AND branch_id = ?`
)

// GetAvailable reads through to the store; a missing row counts as zero.
func (r *SQL) GetAvailable(ctx context.Context, productID uint64, branchID *uint64) (int64, error) {
	var total sql.NullInt64
	var err error
	if branchID == nil {
		err = r.conn.GetContext(ctx, &total, sumAvailable, productID)
	} else {
		err = r.conn.GetContext(ctx, &total, branchAvailable, productID, *branchID)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) List(ctx context.Context, filter *model.InventoryFilter) ([]model.InventoryRecord, error) {
	query := selectInventoryBase
	args := make([]any, 0, 2)

	if filter != nil && filter.ProductID != 0 {
		query += " AND product_id = ?"
		args = append(args, filter.ProductID)
	}
	if filter != nil && filter.BranchID != 0 {
		query += " AND branch_id = ?"
		args = append(args, filter.BranchID)
	}
	query += " ORDER BY product_id, branch_id"

	records := make([]model.InventoryRecord, 0)
	if err := r.conn.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

// GetForUpdateTx locks and returns the row, or nil when the pair has never been stocked.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	query := selectInventoryRow + dbutil.ForUpdate(tx.DriverName())
	if err := tx.GetContext(ctx, &rec, query, productID, branchID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, dbutil.Translate(entity(productID, branchID), err)
	}
	return &rec, nil
}

// AdjustQuantityTx applies delta to quantity. The row is created on the first
// increase. A result below the row's reserved count is refused, so a loss can
// never eat into stock that open orders are holding.
func (r *SQL) AdjustQuantityTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64, delta int64) (*model.InventoryRecord, error) {
	if delta > 0 {
		if _, err := tx.ExecContext(ctx, dbutil.InsertIgnore(tx.DriverName())+insertEmptyRow, productID, branchID, r.now()); err != nil {
			return nil, dbutil.Translate(entity(productID, branchID), err)
		}
	}

	rec, err := r.GetForUpdateTx(ctx, tx, productID, branchID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, cerr.InsufficientStockError{ProductID: productID, BranchID: branchID, Requested: -delta}
	}

	next := rec.Quantity + delta
	if next < 0 || next < rec.Reserved {
		return nil, cerr.InsufficientStockError{
			ProductID: productID,
			BranchID:  branchID,
			Requested: -delta,
			Available: rec.Available(),
		}
	}

	rec.Quantity = next
	rec.UpdatedAt = r.now()
	if _, err := tx.ExecContext(ctx, updateQuantity, rec.Quantity, rec.UpdatedAt, productID, branchID); err != nil {
		return nil, dbutil.Translate(entity(productID, branchID), err)
	}
	return rec, nil
}

// AdjustReservedTx applies delta to reserved, keeping 0 <= reserved <= quantity.
func (r *SQL) AdjustReservedTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64, delta int64) (*model.InventoryRecord, error) {
	rec, err := r.GetForUpdateTx(ctx, tx, productID, branchID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		if delta > 0 {
			return nil, cerr.InsufficientStockError{ProductID: productID, BranchID: branchID, Requested: delta}
		}
		return nil, fmt.Errorf("%s: %w", entity(productID, branchID), ErrReservedUnderflow)
	}

	next := rec.Reserved + delta
	if next < 0 {
		return nil, fmt.Errorf("%s: %w", entity(productID, branchID), ErrReservedUnderflow)
	}
	if next > rec.Quantity {
		return nil, cerr.InsufficientStockError{
			ProductID: productID,
			BranchID:  branchID,
			Requested: delta,
			Available: rec.Available(),
		}
	}

	rec.Reserved = next
	rec.UpdatedAt = r.now()
	if _, err := tx.ExecContext(ctx, updateReserved, rec.Reserved, rec.UpdatedAt, productID, branchID); err != nil {
		return nil, dbutil.Translate(entity(productID, branchID), err)
	}
	return rec, nil
}

func entity(productID, branchID uint64) string {
	return fmt.Sprintf("inventory(product=%d,branch=%d)", productID, branchID)
}
