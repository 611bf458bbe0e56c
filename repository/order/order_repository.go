package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/muhammadheryan/pickup-inventory/utils/dbutil"
)

// DuplicateNumberError is returned when the order number is already taken.
type DuplicateNumberError struct {
	Number string
	Cause  error
}

func (e DuplicateNumberError) Error() string {
	return fmt.Sprintf("order number %s already used: %v", e.Number, e.Cause)
}

func (e DuplicateNumberError) Unwrap() error { return e.Cause }

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error
	GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Order, error)
	GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, updatedAt time.Time) error
	SumHeldQuantityTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64) (int64, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.Order, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrder = `INSERT INTO orders
(order_number, status, branch_id, user_id, subtotal, delivery_fee, discount, total, created_at, updated_at)
VALUES (:order_number, :status, :branch_id, :user_id, :subtotal, :delivery_fee, :discount, :total, :created_at, :updated_at)`

	insertOrderItem = `INSERT INTO order_item (order_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)`

	selectOrder = `SELECT id, order_number, status, branch_id, user_id, subtotal, delivery_fee, discount, total, created_at, updated_at
FROM orders WHERE id = ?`

	selectOrderItems = `SELECT id, order_id, product_id, quantity, unit_price FROM order_item WHERE order_id = ? ORDER BY product_id, id`

	sumHeld = `SELECT COALESCE(SUM(oi.quantity), 0) FROM order_item oi JOIN orders o ON o.id = oi.order_id
WHERE oi.product_id = ? AND o.branch_id = ? AND o.status IN (?)`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (uint64, error) {
	res, err := tx.NamedExecContext(ctx, insertOrder, order)
	if err != nil {
		if dbutil.IsDuplicate(err) {
			return 0, DuplicateNumberError{Number: order.OrderNumber, Cause: err}
		}
		return 0, dbutil.Translate("orders", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItem, orderID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			return dbutil.Translate("order_item", err)
		}
	}
	return nil
}

// GetOrderForUpdateTx locks the order row so concurrent transitions on one order serialize. Nil when missing.
func (r *SQL) GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Order, error) {
	var order model.Order
	if err := tx.GetContext(ctx, &order, selectOrder+dbutil.ForUpdate(tx.DriverName()), orderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, dbutil.Translate("orders", err)
	}
	return &order, nil
}

func (r *SQL) GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	if err := tx.SelectContext(ctx, &items, selectOrderItems, orderID); err != nil {
		return nil, dbutil.Translate("order_item", err)
	}
	return items, nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, updatedAt time.Time) error {
	_, err := tx.ExecContext(ctx, "UPDATE orders SET status = ?, updated_at = ? WHERE id = ?", status, updatedAt, orderID)
	return dbutil.Translate("orders", err)
}

// SumHeldQuantityTx totals what open orders at the branch hold of the product.
func (r *SQL) SumHeldQuantityTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64) (int64, error) {
	held := make([]constant.OrderStatus, 0, len(constant.OrderStatuses))
	for _, st := range constant.OrderStatuses {
		if st.HoldsStock() {
			held = append(held, st)
		}
	}
	query, args, err := sqlx.In(sumHeld, productID, branchID, held)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := tx.GetContext(ctx, &total, tx.Rebind(query), args...); err != nil {
		return 0, dbutil.Translate("order_item", err)
	}
	return total, nil
}

// GetOrder reads an order with its items outside any transaction. Nil when missing.
func (r *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.Order, error) {
	var order model.Order
	if err := r.conn.GetContext(ctx, &order, selectOrder, orderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	items := make([]model.OrderItem, 0)
	if err := r.conn.SelectContext(ctx, &items, selectOrderItems, orderID); err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}
