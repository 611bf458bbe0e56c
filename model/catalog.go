package model

import (
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/shopspring/decimal"
)

// Branch and Product are owned by the catalog service; this service only reads them.
type Branch struct {
	ID     uint64                `db:"id" json:"id"`
	Name   string                `db:"name" json:"name"`
	Status constant.BranchStatus `db:"status" json:"status"`
}

type Product struct {
	ID    uint64          `db:"id" json:"id"`
	Name  string          `db:"name" json:"name"`
	Price decimal.Decimal `db:"price" json:"price"`
}
