package tx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/utils/dbutil"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

// BeginTx opens a transaction. On MySQL it runs at READ COMMITTED: every counter
// read that matters is a locking read, and it avoids gap locks between branches.
func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	var opts *sql.TxOptions
	if r.db.DriverName() == dbutil.DriverMySQL {
		opts = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}
	tx, err := r.db.BeginTxx(ctx, opts)
	if err != nil {
		return nil, dbutil.Translate("transaction", err)
	}
	return tx, nil
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return dbutil.Translate("transaction", tx.Commit())
}

// RollbackTx is safe to call on a transaction that already finished.
func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	err := tx.Rollback()
	if err == nil || errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}
