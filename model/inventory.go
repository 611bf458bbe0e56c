package model

import "time"

// InventoryRecord is the stock counter pair for one product at one branch.
type InventoryRecord struct {
	ProductID uint64    `db:"product_id" json:"product_id"`
	BranchID  uint64    `db:"branch_id" json:"branch_id"`
	Quantity  int64     `db:"quantity" json:"quantity"`
	Reserved  int64     `db:"reserved" json:"reserved"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (r InventoryRecord) Available() int64 {
	return r.Quantity - r.Reserved
}

type InventoryFilter struct {
	ProductID uint64 `json:"product_id"`
	BranchID  uint64 `json:"branch_id"`
}

type AvailabilityResponse struct {
	ProductID uint64  `json:"product_id"`
	BranchID  *uint64 `json:"branch_id,omitempty"`
	Available int64   `json:"available"`
}

// ReconcileResult compares the counters with what the movement log and open orders say they should be.
type ReconcileResult struct {
	ProductID        uint64 `json:"product_id"`
	BranchID         uint64 `json:"branch_id"`
	Quantity         int64  `json:"quantity"`
	ReplayedQuantity int64  `json:"replayed_quantity"`
	Reserved         int64  `json:"reserved"`
	HeldByOrders     int64  `json:"held_by_orders"`
	Movements        int    `json:"movements"`
}

func (r ReconcileResult) Consistent() bool {
	return r.Quantity == r.ReplayedQuantity && r.Reserved == r.HeldByOrders
}
