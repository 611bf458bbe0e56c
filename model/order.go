package model

import (
	"time"

	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint64               `db:"id" json:"id"`
	OrderNumber string               `db:"order_number" json:"order_number"`
	Status      constant.OrderStatus `db:"status" json:"status"`
	BranchID    uint64               `db:"branch_id" json:"branch_id"`
	UserID      *uint64              `db:"user_id" json:"user_id,omitempty"`
	Subtotal    decimal.Decimal      `db:"subtotal" json:"subtotal"`
	DeliveryFee decimal.Decimal      `db:"delivery_fee" json:"delivery_fee"`
	Discount    decimal.Decimal      `db:"discount" json:"discount"`
	Total       decimal.Decimal      `db:"total" json:"total"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `db:"updated_at" json:"updated_at"`
	Items       []OrderItem          `db:"-" json:"items,omitempty"`
}

type OrderItem struct {
	ID        uint64          `db:"id" json:"-"`
	OrderID   uint64          `db:"order_id" json:"-"`
	ProductID uint64          `db:"product_id" json:"product_id"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
}

// StockLine is one product/quantity pair handed to the reservation manager.
type StockLine struct {
	ProductID uint64
	Quantity  int64
}

type OrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gt=0,lte=1000000"`
}

type ReserveOrderRequest struct {
	BranchID    uint64             `json:"branch_id" validate:"required"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryFee decimal.Decimal    `json:"delivery_fee"`
	Discount    decimal.Decimal    `json:"discount"`
}

type ChangeStatusRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required"`
}

// OrderExpirationMessage is published when an order is reserved and consumed once it expires.
type OrderExpirationMessage struct {
	MessageID string    `json:"message_id"`
	OrderID   uint64    `json:"order_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
