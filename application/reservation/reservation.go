package reservation

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/application/movement"
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	inventoryrepo "github.com/muhammadheryan/pickup-inventory/repository/inventory"
	txrepo "github.com/muhammadheryan/pickup-inventory/repository/tx"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	"go.uber.org/zap"
)

// SaleRef describes the order a committed sale belongs to.
type SaleRef struct {
	ReferenceID string
	Note        string
	CreatedBy   *uint64
}

// Manager reserves, releases and commits stock for the lines of one order at one branch.
// The Tx variants join the caller's transaction; the others run in their own.
type Manager interface {
	ReserveForOrder(ctx context.Context, branchID uint64, lines []model.StockLine) error
	ReleaseForOrder(ctx context.Context, branchID uint64, lines []model.StockLine) error
	CommitSaleForOrder(ctx context.Context, branchID uint64, lines []model.StockLine, ref SaleRef) ([]model.StockMovement, error)

	ReserveForOrderTx(ctx context.Context, tx *sqlx.Tx, branchID uint64, lines []model.StockLine) error
	ReleaseForOrderTx(ctx context.Context, tx *sqlx.Tx, branchID uint64, lines []model.StockLine) error
	CommitSaleForOrderTx(ctx context.Context, tx *sqlx.Tx, branchID uint64, lines []model.StockLine, ref SaleRef) ([]model.StockMovement, error)
}

type manager struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	movementApp   movement.MovementApp
}

func NewManager(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, movementApp movement.MovementApp) Manager {
	return &manager{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		movementApp:   movementApp,
	}
}

// Normalize merges lines for the same product and sorts them by product id.
// Every caller locks inventory rows in that order. A product totalling more than
// MaxLineQuantity is refused, so merging can never overflow.
func Normalize(lines []model.StockLine) ([]model.StockLine, error) {
	if len(lines) == 0 {
		return nil, errors.NewValidationError("items", "at least one line is required")
	}

	merged := make(map[uint64]int64, len(lines))
	for _, l := range lines {
		if l.ProductID == 0 {
			return nil, errors.NewValidationError("items.product_id", "is required")
		}
		if l.Quantity <= 0 {
			return nil, errors.NewValidationError("items.quantity", "must be greater than 0")
		}
		if l.Quantity > constant.MaxLineQuantity || merged[l.ProductID] > constant.MaxLineQuantity-l.Quantity {
			return nil, errors.NewValidationError("items.quantity", fmt.Sprintf("must not exceed %d per product", constant.MaxLineQuantity))
		}
		merged[l.ProductID] += l.Quantity
	}

	out := make([]model.StockLine, 0, len(merged))
	for productID, qty := range merged {
		out = append(out, model.StockLine{ProductID: productID, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (m *manager) ReserveForOrder(ctx context.Context, branchID uint64, lines []model.StockLine) error {
	return m.inTx(ctx, func(tx *sqlx.Tx) error {
		return m.ReserveForOrderTx(ctx, tx, branchID, lines)
	})
}

func (m *manager) ReleaseForOrder(ctx context.Context, branchID uint64, lines []model.StockLine) error {
	return m.inTx(ctx, func(tx *sqlx.Tx) error {
		return m.ReleaseForOrderTx(ctx, tx, branchID, lines)
	})
}

func (m *manager) CommitSaleForOrder(ctx context.Context, branchID uint64, lines []model.StockLine, ref SaleRef) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := m.inTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		movements, err = m.CommitSaleForOrderTx(ctx, tx, branchID, lines, ref)
		return err
	})
	return movements, err
}

// ReserveForOrderTx reserves every line or none. When a line is refused for lack
// of stock, lines already reserved are given back before the error is returned,
// so the counters are clean even if the caller commits anyway. Any other failure
// may mean the database already aborted the transaction, so nothing more is
// written and the caller's rollback undoes the earlier lines.
func (m *manager) ReserveForOrderTx(ctx context.Context, tx *sqlx.Tx, branchID uint64, lines []model.StockLine) error {
	normalized, err := Normalize(lines)
	if err != nil {
		return err
	}

	for i, line := range normalized {
		if _, err := m.inventoryRepo.AdjustReservedTx(ctx, tx, line.ProductID, branchID, line.Quantity); err != nil {
			if errors.Is(err, constant.ErrInsufficientStock) {
				m.compensate(ctx, tx, branchID, normalized[:i])
			}
			return err
		}
	}
	return nil
}

func (m *manager) compensate(ctx context.Context, tx *sqlx.Tx, branchID uint64, reserved []model.StockLine) {
	for i := len(reserved) - 1; i >= 0; i-- {
		line := reserved[i]
		if _, err := m.inventoryRepo.AdjustReservedTx(ctx, tx, line.ProductID, branchID, -line.Quantity); err != nil {
			logger.Warn("[ReserveForOrderTx] compensate reservation",
				zap.Uint64("product_id", line.ProductID),
				zap.Uint64("branch_id", branchID),
				zap.Int64("quantity", line.Quantity),
				zap.String("error", err.Error()))
		}
	}
}

// ReleaseForOrderTx gives reserved units back. A reserved count smaller than the
// line is released down to zero and logged instead of failing the cancellation.
func (m *manager) ReleaseForOrderTx(ctx context.Context, tx *sqlx.Tx, branchID uint64, lines []model.StockLine) error {
	normalized, err := Normalize(lines)
	if err != nil {
		return err
	}

	for _, line := range normalized {
		rec, err := m.inventoryRepo.GetForUpdateTx(ctx, tx, line.ProductID, branchID)
		if err != nil {
			return err
		}

		release := line.Quantity
		var held int64
		if rec != nil {
			held = rec.Reserved
		}
		if held < release {
			logger.Warn("[ReleaseForOrderTx] reserved below release quantity",
				zap.Uint64("product_id", line.ProductID),
				zap.Uint64("branch_id", branchID),
				zap.Int64("reserved", held),
				zap.Int64("release", release))
			release = held
		}
		if release == 0 {
			continue
		}

		if _, err := m.inventoryRepo.AdjustReservedTx(ctx, tx, line.ProductID, branchID, -release); err != nil {
			return err
		}
	}
	return nil
}

// CommitSaleForOrderTx turns reservations into sales: reserved drops by each line
// and one VENTA movement per line takes the units out of quantity.
func (m *manager) CommitSaleForOrderTx(ctx context.Context, tx *sqlx.Tx, branchID uint64, lines []model.StockLine, ref SaleRef) ([]model.StockMovement, error) {
	normalized, err := Normalize(lines)
	if err != nil {
		return nil, err
	}

	movements := make([]model.StockMovement, 0, len(normalized))
	for _, line := range normalized {
		if _, err := m.inventoryRepo.AdjustReservedTx(ctx, tx, line.ProductID, branchID, -line.Quantity); err != nil {
			return nil, err
		}

		from := branchID
		sale := &model.StockMovement{
			Type:         constant.MovementVenta,
			Quantity:     line.Quantity,
			ProductID:    line.ProductID,
			FromBranchID: &from,
			ReferenceID:  optional(ref.ReferenceID),
			Note:         optional(ref.Note),
			CreatedBy:    ref.CreatedBy,
		}
		recorded, err := m.movementApp.RecordMovementTx(ctx, tx, sale)
		if err != nil {
			return nil, err
		}
		movements = append(movements, *recorded)
	}
	return movements, nil
}

func (m *manager) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := m.txRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = m.txRepo.RollbackTx(tx)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := m.txRepo.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
