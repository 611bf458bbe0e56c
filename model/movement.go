package model

import (
	"time"

	"github.com/muhammadheryan/pickup-inventory/constant"
)

// StockMovement is an immutable ledger entry. It is never updated once inserted.
type StockMovement struct {
	ID           uint64                `db:"id" json:"id"`
	Type         constant.MovementType `db:"type" json:"type"`
	Quantity     int64                 `db:"quantity" json:"quantity"`
	ProductID    uint64                `db:"product_id" json:"product_id"`
	FromBranchID *uint64               `db:"from_branch_id" json:"from_branch_id,omitempty"`
	ToBranchID   *uint64               `db:"to_branch_id" json:"to_branch_id,omitempty"`
	ReferenceID  *string               `db:"reference_id" json:"reference_id,omitempty"`
	Note         *string               `db:"note" json:"note,omitempty"`
	CreatedAt    time.Time             `db:"created_at" json:"created_at"`
	CreatedBy    *uint64               `db:"created_by" json:"created_by,omitempty"`
}

// Delta returns the signed change this movement applied to branchID's quantity.
func (m StockMovement) Delta(branchID uint64) int64 {
	var delta int64
	if m.ToBranchID != nil && *m.ToBranchID == branchID {
		delta += m.Quantity
	}
	if m.FromBranchID != nil && *m.FromBranchID == branchID {
		delta -= m.Quantity
	}
	return delta
}

type MovementRequest struct {
	Type         constant.MovementType `json:"type" validate:"required"`
	Quantity     int64                 `json:"quantity" validate:"gt=0"`
	ProductID    uint64                `json:"product_id" validate:"required"`
	FromBranchID *uint64               `json:"from_branch_id,omitempty"`
	ToBranchID   *uint64               `json:"to_branch_id,omitempty"`
	ReferenceID  *string               `json:"reference_id,omitempty" validate:"omitempty,max=64"`
	Note         *string               `json:"note,omitempty" validate:"omitempty,max=255"`
}

type MovementFilter struct {
	ProductID   uint64
	BranchID    uint64
	Type        constant.MovementType
	ReferenceID string
	Limit       int
}
