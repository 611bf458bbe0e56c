package order

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/pickup-inventory/application/audit"
	"github.com/muhammadheryan/pickup-inventory/application/reservation"
	"github.com/muhammadheryan/pickup-inventory/cmd/config"
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	branchrepo "github.com/muhammadheryan/pickup-inventory/repository/branch"
	orderrepo "github.com/muhammadheryan/pickup-inventory/repository/order"
	productrepo "github.com/muhammadheryan/pickup-inventory/repository/product"
	redisrepo "github.com/muhammadheryan/pickup-inventory/repository/redis"
	txrepo "github.com/muhammadheryan/pickup-inventory/repository/tx"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	validatorx "github.com/muhammadheryan/pickup-inventory/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderApp interface {
	ReserveOrder(ctx context.Context, req *model.ReserveOrderRequest, actor model.Actor) (*model.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID uint64, actor model.Actor) (*model.Order, error)
	PickupOrder(ctx context.Context, orderID uint64, actor model.Actor) (*model.Order, error)
	DeliverOrder(ctx context.Context, orderID uint64, actor model.Actor) (*model.Order, error)
	ChangeOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus, actor model.Actor) (*model.Order, error)
	// ExpireOrder cancels the order if it is still PENDING and does nothing otherwise.
	ExpireOrder(ctx context.Context, orderID uint64) (*model.Order, error)
}

// ExpirationPublisher schedules the delayed expiration of a PENDING order.
type ExpirationPublisher interface {
	PublishOrderExpiration(ctx context.Context, msg model.OrderExpirationMessage) error
}

type orderAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	branchRepo  branchrepo.BranchRepository
	productRepo productrepo.ProductRepository
	reservation reservation.Manager
	redisRepo   redisrepo.Repository
	audit       audit.Emitter
	publisher   ExpirationPublisher
	now         func() time.Time
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, branchRepo branchrepo.BranchRepository,
	productRepo productrepo.ProductRepository, reservationManager reservation.Manager, redisRepo redisrepo.Repository,
	auditEmitter audit.Emitter, publisher ExpirationPublisher) OrderApp {
	if auditEmitter == nil {
		auditEmitter = audit.NewEmitter(nil)
	}
	return &orderAppImpl{
		config:      config,
		txRepo:      txRepo,
		orderRepo:   orderRepo,
		branchRepo:  branchRepo,
		productRepo: productRepo,
		reservation: reservationManager,
		redisRepo:   redisRepo,
		audit:       auditEmitter,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *orderAppImpl) ReserveOrder(ctx context.Context, req *model.ReserveOrderRequest, actor model.Actor) (*model.Order, error) {
	if req == nil {
		return nil, errors.NewValidationError("", "request is required")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.DeliveryFee.IsNegative() {
		return nil, errors.NewValidationError("delivery_fee", "must not be negative")
	}
	if req.Discount.IsNegative() {
		return nil, errors.NewValidationError("discount", "must not be negative")
	}

	lines := make([]model.StockLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, model.StockLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	lines, err := reservation.Normalize(lines)
	if err != nil {
		return nil, err
	}

	// each attempt takes a fresh number; once the daily sequence has handed out a
	// number that is already stored, the remaining attempts use random suffixes
	sequenced := true
	var order *model.Order
	err = s.withRetry(ctx, "ReserveOrder", func() error {
		orderNumber := s.nextOrderNumber(ctx, sequenced)

		var err error
		order, err = s.reserveOrder(ctx, req, lines, orderNumber, actor)

		var dup orderrepo.DuplicateNumberError
		if errors.As(err, &dup) {
			logger.Warn("[ReserveOrder] order number already used", zap.String("order_number", dup.Number))
			sequenced = false
			return errors.NewConflictError("orders", err)
		}
		return err
	})
	if err != nil {
		return nil, mapError("[ReserveOrder]", err)
	}

	s.audit.Emit(ctx, model.AuditEvent{
		Action:      model.AuditActionReserve,
		Entity:      "order",
		EntityID:    order.ID,
		BranchID:    &order.BranchID,
		ActorID:     actor.UserRef(),
		AfterStatus: string(order.Status),
		Payload:     order.Items,
	})
	s.scheduleExpiration(ctx, order)

	return order, nil
}

func (s *orderAppImpl) reserveOrder(ctx context.Context, req *model.ReserveOrderRequest, lines []model.StockLine, orderNumber string, actor model.Actor) (*model.Order, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	branch, err := s.branchRepo.GetBranchTx(ctx, tx, req.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.Status != constant.BranchStatusActive {
		return nil, errors.NewNotFoundError("branch", req.BranchID)
	}

	items, subtotal, err := s.priceLines(ctx, tx, lines)
	if err != nil {
		return nil, err
	}

	total := subtotal.Add(req.DeliveryFee).Sub(req.Discount)
	if total.IsNegative() {
		return nil, errors.NewValidationError("discount", "exceeds subtotal plus delivery fee")
	}

	// stock is held before the order row exists; a failure here leaves nothing behind
	if err := s.reservation.ReserveForOrderTx(ctx, tx, req.BranchID, lines); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	order := &model.Order{
		OrderNumber: orderNumber,
		Status:      constant.OrderStatusPending,
		BranchID:    req.BranchID,
		UserID:      actor.UserRef(),
		Subtotal:    subtotal,
		DeliveryFee: req.DeliveryFee,
		Discount:    req.Discount,
		Total:       total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, order)
	if err != nil {
		return nil, err
	}
	order.ID = orderID

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	order.Items = items

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, err
	}
	committed = true
	return order, nil
}

// priceLines snapshots each product's current price into the order items.
func (s *orderAppImpl) priceLines(ctx context.Context, tx *sqlx.Tx, lines []model.StockLine) ([]model.OrderItem, decimal.Decimal, error) {
	ids := make([]uint64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	products, err := s.productRepo.GetProductsTx(ctx, tx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	subtotal := decimal.Zero
	items := make([]model.OrderItem, 0, len(lines))
	for _, l := range lines {
		p, ok := products[l.ProductID]
		if !ok {
			return nil, decimal.Zero, errors.NewNotFoundError("product", l.ProductID)
		}
		items = append(items, model.OrderItem{ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: p.Price})
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return items, subtotal, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] orderRepo.GetOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.NewNotFoundError("order", orderID)
	}
	return order, nil
}

func (s *orderAppImpl) scheduleExpiration(ctx context.Context, order *model.Order) {
	if s.publisher == nil || s.config == nil || s.config.Order.PendingExpiration <= 0 {
		return
	}
	msg := model.OrderExpirationMessage{
		OrderID:   order.ID,
		ExpiresAt: order.CreatedAt.Add(s.config.Order.PendingExpiration),
	}
	if err := s.publisher.PublishOrderExpiration(ctx, msg); err != nil {
		logger.Error("[ReserveOrder] publish order expiration", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
	}
}

// mapError passes typed errors through and hides everything else behind ErrInternal.
func mapError(method string, err error) error {
	var typed errors.Typed
	if errors.As(err, &typed) {
		return err
	}
	logger.Error(method, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
