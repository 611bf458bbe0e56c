package movement

import (
	"context"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/application/audit"
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	branchrepo "github.com/muhammadheryan/pickup-inventory/repository/branch"
	inventoryrepo "github.com/muhammadheryan/pickup-inventory/repository/inventory"
	movementrepo "github.com/muhammadheryan/pickup-inventory/repository/movement"
	productrepo "github.com/muhammadheryan/pickup-inventory/repository/product"
	txrepo "github.com/muhammadheryan/pickup-inventory/repository/tx"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	validatorx "github.com/muhammadheryan/pickup-inventory/utils/validator"
	"go.uber.org/zap"
)

// MovementApp is the stock movement log: the only path through which quantity changes.
type MovementApp interface {
	// RecordMovement is the administrative entry point for non-sale movements.
	RecordMovement(ctx context.Context, req *model.MovementRequest, actor model.Actor) (*model.StockMovement, error)
	// RecordMovementTx appends m and applies it to every affected branch inside tx.
	RecordMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) (*model.StockMovement, error)
	// ReplayTx recomputes a branch's quantity from the log, returning it and the number of movements read.
	ReplayTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64) (int64, int, error)
	ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, error)
}

type movementAppImpl struct {
	txRepo        txrepo.TxRepository
	movementRepo  movementrepo.MovementRepository
	inventoryRepo inventoryrepo.InventoryRepository
	branchRepo    branchrepo.BranchRepository
	productRepo   productrepo.ProductRepository
	audit         audit.Emitter
	now           func() time.Time
}

func NewMovementApp(txRepo txrepo.TxRepository, movementRepo movementrepo.MovementRepository, inventoryRepo inventoryrepo.InventoryRepository,
	branchRepo branchrepo.BranchRepository, productRepo productrepo.ProductRepository, auditEmitter audit.Emitter) MovementApp {
	return &movementAppImpl{
		txRepo:        txRepo,
		movementRepo:  movementRepo,
		inventoryRepo: inventoryRepo,
		branchRepo:    branchRepo,
		productRepo:   productRepo,
		audit:         auditEmitter,
		now:           time.Now,
	}
}

func (s *movementAppImpl) RecordMovement(ctx context.Context, req *model.MovementRequest, actor model.Actor) (*model.StockMovement, error) {
	if req == nil {
		return nil, errors.NewValidationError("", "request is required")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.Type == constant.MovementVenta {
		return nil, errors.NewValidationError("type", "VENTA is recorded by order pickup or delivery")
	}

	m := &model.StockMovement{
		Type:         req.Type,
		Quantity:     req.Quantity,
		ProductID:    req.ProductID,
		FromBranchID: req.FromBranchID,
		ToBranchID:   req.ToBranchID,
		ReferenceID:  req.ReferenceID,
		Note:         req.Note,
		CreatedBy:    actor.UserRef(),
	}
	if err := Validate(m); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return nil, internal("[RecordMovement] begin tx", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.checkReferences(ctx, tx, m); err != nil {
		return nil, internal("[RecordMovement] check references", err)
	}

	recorded, err := s.RecordMovementTx(ctx, tx, m)
	if err != nil {
		return nil, internal("[RecordMovement] record movement", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, internal("[RecordMovement] commit tx", err)
	}
	committed = true

	if s.audit != nil {
		s.audit.Emit(ctx, model.AuditEvent{
			Action:   model.AuditActionMovement,
			Entity:   "stock_movement",
			EntityID: recorded.ID,
			ActorID:  actor.UserRef(),
			Payload:  recorded,
		})
	}

	return recorded, nil
}

func (s *movementAppImpl) RecordMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) (*model.StockMovement, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now().UTC()
	}

	id, err := s.movementRepo.InsertTx(ctx, tx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id

	for _, leg := range legs(m) {
		if _, err := s.inventoryRepo.AdjustQuantityTx(ctx, tx, m.ProductID, leg.branchID, leg.delta); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (s *movementAppImpl) ReplayTx(ctx context.Context, tx *sqlx.Tx, productID, branchID uint64) (int64, int, error) {
	movements, err := s.movementRepo.ListForBranchTx(ctx, tx, productID, branchID)
	if err != nil {
		return 0, 0, err
	}
	return Replay(movements, branchID), len(movements), nil
}

func (s *movementAppImpl) ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, error) {
	movements, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, internal("[ListMovements] movementRepo.List", err)
	}
	return movements, nil
}

func (s *movementAppImpl) checkReferences(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) error {
	products, err := s.productRepo.GetProductsTx(ctx, tx, []uint64{m.ProductID})
	if err != nil {
		return err
	}
	if _, ok := products[m.ProductID]; !ok {
		return errors.NewNotFoundError("product", m.ProductID)
	}

	for _, id := range []*uint64{m.FromBranchID, m.ToBranchID} {
		if id == nil {
			continue
		}
		b, err := s.branchRepo.GetBranchTx(ctx, tx, *id)
		if err != nil {
			return err
		}
		if b == nil {
			return errors.NewNotFoundError("branch", *id)
		}
	}
	return nil
}

// Validate checks a movement against the branch rules of its type.
func Validate(m *model.StockMovement) error {
	if m == nil {
		return errors.NewValidationError("", "movement is required")
	}
	if !m.Type.Valid() {
		return errors.NewValidationError("type", "is not a known movement type")
	}
	if m.Quantity <= 0 {
		return errors.NewValidationError("quantity", "must be greater than 0")
	}
	if m.ProductID == 0 {
		return errors.NewValidationError("product_id", "is required")
	}
	if m.Type.Decreases() && (m.FromBranchID == nil || *m.FromBranchID == 0) {
		return errors.NewValidationError("from_branch_id", "is required for "+string(m.Type))
	}
	if m.Type.Increases() && (m.ToBranchID == nil || *m.ToBranchID == 0) {
		return errors.NewValidationError("to_branch_id", "is required for "+string(m.Type))
	}
	if !m.Type.Decreases() && m.FromBranchID != nil {
		return errors.NewValidationError("from_branch_id", "is not allowed for "+string(m.Type))
	}
	if !m.Type.Increases() && m.ToBranchID != nil {
		return errors.NewValidationError("to_branch_id", "is not allowed for "+string(m.Type))
	}
	if m.Type == constant.MovementTransferencia && *m.FromBranchID == *m.ToBranchID {
		return errors.NewValidationError("to_branch_id", "must differ from from_branch_id")
	}
	return nil
}

// Replay folds movements into the quantity they leave at branchID.
func Replay(movements []model.StockMovement, branchID uint64) int64 {
	var quantity int64
	for _, m := range movements {
		quantity += m.Delta(branchID)
	}
	return quantity
}

type leg struct {
	branchID uint64
	delta    int64
}

// legs lists the counter changes of a movement, ordered by branch id so two
// opposite transfers lock their rows in the same order.
func legs(m *model.StockMovement) []leg {
	out := make([]leg, 0, 2)
	if m.Type.Decreases() {
		out = append(out, leg{branchID: *m.FromBranchID, delta: -m.Quantity})
	}
	if m.Type.Increases() {
		out = append(out, leg{branchID: *m.ToBranchID, delta: m.Quantity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].branchID < out[j].branchID })
	return out
}

// internal passes typed errors through and turns anything else into ErrInternal after logging it.
func internal(step string, err error) error {
	var typed errors.Typed
	if errors.As(err, &typed) {
		return err
	}
	logger.Error(step, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
