package transport

import (
	"net/http"
	"strconv"

	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
)

// ListInventory handler
// @Summary List inventory
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param product_id query int false "Product ID"
// @Param branch_id query int false "Branch ID"
// @Success 200 {array} model.InventoryRecord
// @Router /v1/inventory [get]
func (s *RestHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	productID, err := queryID(r, "product_id")
	if err != nil {
		writeError(w, err)
		return
	}
	branchID, err := queryID(r, "branch_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.ListInventory(r.Context(), &model.InventoryFilter{ProductID: productID, BranchID: branchID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAvailable handler
// @Summary Available stock
// @Description quantity minus reserved at one branch, or summed over all branches when branch_id is omitted.
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param product_id query int true "Product ID"
// @Param branch_id query int false "Branch ID"
// @Success 200 {object} model.AvailabilityResponse
// @Failure 400 {object} Response
// @Router /v1/inventory/available [get]
func (s *RestHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	productID, err := queryID(r, "product_id")
	if err != nil {
		writeError(w, err)
		return
	}
	branchID, err := queryID(r, "branch_id")
	if err != nil {
		writeError(w, err)
		return
	}

	var branch *uint64
	if branchID != 0 {
		branch = &branchID
	}

	res, err := s.InventoryApp.GetAvailable(r.Context(), productID, branch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Reconcile handler
// @Summary Reconcile inventory
// @Description Compare one counter pair with the movement log and the open orders.
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param product_id query int true "Product ID"
// @Param branch_id query int true "Branch ID"
// @Success 200 {object} model.ReconcileResult
// @Failure 400 {object} Response
// @Router /v1/inventory/reconcile [get]
func (s *RestHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	productID, err := queryID(r, "product_id")
	if err != nil {
		writeError(w, err)
		return
	}
	branchID, err := queryID(r, "branch_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.Reconcile(r.Context(), productID, branchID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RecordMovement handler
// @Summary Record stock movement
// @Description Administrative entry point for non-sale movements.
// @Tags Movement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MovementRequest true "Movement Request"
// @Success 200 {object} model.StockMovement
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /v1/movements [post]
func (s *RestHandler) RecordMovement(w http.ResponseWriter, r *http.Request) {
	var req model.MovementRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.MovementApp.RecordMovement(r.Context(), &req, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMovements handler
// @Summary List stock movements
// @Tags Movement
// @Produce json
// @Security BearerAuth
// @Param product_id query int false "Product ID"
// @Param branch_id query int false "Branch ID, either leg"
// @Param type query string false "Movement type"
// @Param reference_id query string false "Reference ID"
// @Param limit query int false "Max rows, newest first"
// @Success 200 {array} model.StockMovement
// @Failure 400 {object} Response
// @Router /v1/movements [get]
func (s *RestHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	productID, err := queryID(r, "product_id")
	if err != nil {
		writeError(w, err)
		return
	}
	branchID, err := queryID(r, "branch_id")
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filter := &model.MovementFilter{
		ProductID:   productID,
		BranchID:    branchID,
		Type:        constant.MovementType(q.Get("type")),
		ReferenceID: q.Get("reference_id"),
	}
	if filter.Type != "" && !filter.Type.Valid() {
		writeError(w, errors.NewValidationError("type", "is not a known movement type"))
		return
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, errors.NewValidationError("limit", "must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	res, err := s.MovementApp.ListMovements(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
