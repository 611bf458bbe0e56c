package branch

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/model"
)

type BranchRepository interface {
	GetBranchTx(ctx context.Context, tx *sqlx.Tx, branchID uint64) (*model.Branch, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewBranchRepository(conn *sqlx.DB) BranchRepository {
	return &SQL{conn: conn}
}

// GetBranchTx returns nil when the branch does not exist.
func (r *SQL) GetBranchTx(ctx context.Context, tx *sqlx.Tx, branchID uint64) (*model.Branch, error) {
	var b model.Branch
	if err := tx.GetContext(ctx, &b, "SELECT id, name, status FROM branch WHERE id = ?", branchID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
