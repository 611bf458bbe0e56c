package product

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetProductsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (map[uint64]model.Product, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const getProductsByIDs = `SELECT id, name, price FROM product WHERE id IN (?)`

// GetProductsTx returns the products found, keyed by id. Missing ids are simply absent.
func (s *SQL) GetProductsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (map[uint64]model.Product, error) {
	res := make(map[uint64]model.Product, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	query, args, err := sqlx.In(getProductsByIDs, ids)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(ids))
	if err := tx.SelectContext(ctx, &products, tx.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, p := range products {
		res[p.ID] = p
	}
	return res, nil
}
