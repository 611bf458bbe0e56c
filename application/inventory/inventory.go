package inventory

import (
	"context"

	"github.com/muhammadheryan/pickup-inventory/application/movement"
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	inventoryrepo "github.com/muhammadheryan/pickup-inventory/repository/inventory"
	orderrepo "github.com/muhammadheryan/pickup-inventory/repository/order"
	txrepo "github.com/muhammadheryan/pickup-inventory/repository/tx"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	// GetAvailable returns quantity minus reserved for one branch, or summed over all branches when branchID is nil.
	GetAvailable(ctx context.Context, productID uint64, branchID *uint64) (*model.AvailabilityResponse, error)
	ListInventory(ctx context.Context, filter *model.InventoryFilter) ([]model.InventoryRecord, error)
	// Reconcile compares one counter pair against the movement log and the open orders at that branch.
	Reconcile(ctx context.Context, productID, branchID uint64) (*model.ReconcileResult, error)
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	orderRepo     orderrepo.OrderRepository
	movementApp   movement.MovementApp
}

func NewInventoryApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, orderRepo orderrepo.OrderRepository, movementApp movement.MovementApp) InventoryApp {
	return &inventoryAppImpl{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		orderRepo:     orderRepo,
		movementApp:   movementApp,
	}
}

func (s *inventoryAppImpl) GetAvailable(ctx context.Context, productID uint64, branchID *uint64) (*model.AvailabilityResponse, error) {
	if productID == 0 {
		return nil, errors.NewValidationError("product_id", "is required")
	}

	available, err := s.inventoryRepo.GetAvailable(ctx, productID, branchID)
	if err != nil {
		logger.Error("[GetAvailable] inventoryRepo.GetAvailable", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AvailabilityResponse{
		ProductID: productID,
		BranchID:  branchID,
		Available: available,
	}, nil
}

func (s *inventoryAppImpl) ListInventory(ctx context.Context, filter *model.InventoryFilter) ([]model.InventoryRecord, error) {
	records, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListInventory] inventoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}

func (s *inventoryAppImpl) Reconcile(ctx context.Context, productID, branchID uint64) (*model.ReconcileResult, error) {
	if productID == 0 {
		return nil, errors.NewValidationError("product_id", "is required")
	}
	if branchID == 0 {
		return nil, errors.NewValidationError("branch_id", "is required")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reconcile] BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer func() {
		_ = s.txRepo.RollbackTx(tx)
	}()

	// lock the counters first so no movement lands between the two reads
	rec, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, productID, branchID)
	if err != nil {
		logger.Error("[Reconcile] inventoryRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	replayed, count, err := s.movementApp.ReplayTx(ctx, tx, productID, branchID)
	if err != nil {
		logger.Error("[Reconcile] movementApp.ReplayTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	held, err := s.orderRepo.SumHeldQuantityTx(ctx, tx, productID, branchID)
	if err != nil {
		logger.Error("[Reconcile] orderRepo.SumHeldQuantityTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := &model.ReconcileResult{
		ProductID:        productID,
		BranchID:         branchID,
		ReplayedQuantity: replayed,
		HeldByOrders:     held,
		Movements:        count,
	}
	if rec != nil {
		result.Quantity = rec.Quantity
		result.Reserved = rec.Reserved
	}

	if !result.Consistent() {
		logger.Warn("[Reconcile] counters drifted from ledger",
			zap.Uint64("product_id", productID),
			zap.Uint64("branch_id", branchID),
			zap.Int64("quantity", result.Quantity),
			zap.Int64("replayed_quantity", result.ReplayedQuantity),
			zap.Int64("reserved", result.Reserved),
			zap.Int64("held_by_orders", result.HeldByOrders))
	}
	return result, nil
}
