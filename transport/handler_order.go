package transport

import (
	"net/http"

	"github.com/muhammadheryan/pickup-inventory/model"
)

// ReserveOrder handler
// @Summary Reserve order
// @Description Reserve stock for every item at one branch and create a PENDING order. All items are held or none.
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ReserveOrderRequest true "Reserve Order Request"
// @Success 200 {object} model.Order
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /v1/orders [post]
func (s *RestHandler) ReserveOrder(w http.ResponseWriter, r *http.Request) {
	var req model.ReserveOrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.ReserveOrder(r.Context(), &req, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} Response
// @Router /v1/orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelOrder handler
// @Summary Cancel order
// @Description Cancel a non-terminal order and release its reservation.
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /v1/orders/{id}/cancel [post]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.CancelOrder(r.Context(), id, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PickupOrder handler
// @Summary Pick up order
// @Description Hand a READY order to the customer. Records one VENTA movement per item.
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /v1/orders/{id}/pickup [post]
func (s *RestHandler) PickupOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.PickupOrder(r.Context(), id, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeliverOrder handler
// @Summary Deliver order
// @Description Mark an IN_DELIVERY order as DELIVERED. Records one VENTA movement per item.
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /v1/orders/{id}/deliver [post]
func (s *RestHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.DeliverOrder(r.Context(), id, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ChangeOrderStatus handler
// @Summary Change order status
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body model.ChangeStatusRequest true "Change Status Request"
// @Success 200 {object} model.Order
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /v1/orders/{id}/status [patch]
func (s *RestHandler) ChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChangeStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.ChangeOrderStatus(r.Context(), id, req.Status, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExpireOrder handler
// @Summary Expire order
// @Description Cancel the order if it is still PENDING. Internal, called by the expiration worker.
// @Tags Internal
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} Response
// @Router /internal/v1/order/{id}/expire [post]
func (s *RestHandler) ExpireOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.ExpireOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
