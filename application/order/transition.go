package order

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/pickup-inventory/application/reservation"
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
)

// decideFunc picks the target status for a locked order, or returns the typed error refusing it.
// A nil status with a nil error means there is nothing to do.
type decideFunc func(order *model.Order) (*constant.OrderStatus, error)

type transitionResult struct {
	order  *model.Order
	before constant.OrderStatus
	noop   bool
}

func (s *orderAppImpl) CancelOrder(ctx context.Context, orderID uint64, actor model.Actor) (*model.Order, error) {
	return s.run(ctx, "CancelOrder", orderID, actor, model.AuditActionCancel, func(order *model.Order) (*constant.OrderStatus, error) {
		if order.Status.IsTerminal() {
			return nil, errors.OrderAlreadyTerminalError{OrderID: order.ID, Status: order.Status, Attempted: constant.OrderStatusCancelled}
		}
		return checkEdge(order, constant.OrderStatusCancelled)
	})
}

func (s *orderAppImpl) PickupOrder(ctx context.Context, orderID uint64, actor model.Actor) (*model.Order, error) {
	return s.run(ctx, "PickupOrder", orderID, actor, model.AuditActionPickup, func(order *model.Order) (*constant.OrderStatus, error) {
		return checkEdge(order, constant.OrderStatusPickedUp)
	})
}

func (s *orderAppImpl) DeliverOrder(ctx context.Context, orderID uint64, actor model.Actor) (*model.Order, error) {
	return s.run(ctx, "DeliverOrder", orderID, actor, model.AuditActionDeliver, func(order *model.Order) (*constant.OrderStatus, error) {
		return checkEdge(order, constant.OrderStatusDelivered)
	})
}

func (s *orderAppImpl) ChangeOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus, actor model.Actor) (*model.Order, error) {
	if !status.Valid() {
		return nil, errors.NewValidationError("status", fmt.Sprintf("%q is not an order status", status))
	}
	return s.run(ctx, "ChangeOrderStatus", orderID, actor, model.AuditActionStatusChange, func(order *model.Order) (*constant.OrderStatus, error) {
		return checkEdge(order, status)
	})
}

func (s *orderAppImpl) ExpireOrder(ctx context.Context, orderID uint64) (*model.Order, error) {
	return s.run(ctx, "ExpireOrder", orderID, model.Actor{}, model.AuditActionExpire, func(order *model.Order) (*constant.OrderStatus, error) {
		if order.Status != constant.OrderStatusPending {
			return nil, nil
		}
		next := constant.OrderStatusCancelled
		return &next, nil
	})
}

func checkEdge(order *model.Order, next constant.OrderStatus) (*constant.OrderStatus, error) {
	if !order.Status.CanTransitionTo(next) {
		return nil, errors.InvalidTransitionError{OrderID: order.ID, From: order.Status, To: next}
	}
	return &next, nil
}

// run executes one transition with conflict retries, then emits its audit event.
func (s *orderAppImpl) run(ctx context.Context, method string, orderID uint64, actor model.Actor, action model.AuditAction, decide decideFunc) (*model.Order, error) {
	var res *transitionResult
	err := s.withRetry(ctx, method, func() error {
		var err error
		res, err = s.transition(ctx, orderID, actor, decide)
		return err
	})
	if err != nil {
		return nil, mapError("["+method+"]", err)
	}

	if !res.noop {
		s.audit.Emit(ctx, model.AuditEvent{
			Action:       action,
			Entity:       "order",
			EntityID:     res.order.ID,
			BranchID:     &res.order.BranchID,
			ActorID:      actor.UserRef(),
			BeforeStatus: string(res.before),
			AfterStatus:  string(res.order.Status),
		})
	}
	return res.order, nil
}

// transition locks the order, applies the side effects of moving it to the decided
// status and updates it, all in one transaction. Nothing is written when decide refuses.
func (s *orderAppImpl) transition(ctx context.Context, orderID uint64, actor model.Actor, decide decideFunc) (*transitionResult, error) {
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

	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.NewNotFoundError("order", orderID)
	}

	items, err := s.orderRepo.GetOrderItemsTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	next, err := decide(order)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return &transitionResult{order: order, before: order.Status, noop: true}, nil
	}

	lines := make([]model.StockLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, model.StockLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	switch *next {
	case constant.OrderStatusCancelled:
		if order.Status.HoldsStock() && len(lines) > 0 {
			if err := s.reservation.ReleaseForOrderTx(ctx, tx, order.BranchID, lines); err != nil {
				return nil, err
			}
		}
	case constant.OrderStatusPickedUp, constant.OrderStatusDelivered:
		if len(lines) > 0 {
			ref := reservation.SaleRef{
				ReferenceID: order.OrderNumber,
				Note:        "order " + string(*next),
				CreatedBy:   actor.UserRef(),
			}
			if _, err := s.reservation.CommitSaleForOrderTx(ctx, tx, order.BranchID, lines, ref); err != nil {
				return nil, err
			}
		}
	}

	before := order.Status
	order.Status = *next
	order.UpdatedAt = s.now().UTC()
	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, order.ID, order.Status, order.UpdatedAt); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, err
	}
	committed = true

	return &transitionResult{order: order, before: before}, nil
}
