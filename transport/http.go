package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	actorapp "github.com/muhammadheryan/pickup-inventory/application/actor"
	inventoryapp "github.com/muhammadheryan/pickup-inventory/application/inventory"
	movementapp "github.com/muhammadheryan/pickup-inventory/application/movement"
	orderapp "github.com/muhammadheryan/pickup-inventory/application/order"
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/model"
	utilsContext "github.com/muhammadheryan/pickup-inventory/utils/context"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
	validatorx "github.com/muhammadheryan/pickup-inventory/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	OrderApp     orderapp.OrderApp
	InventoryApp inventoryapp.InventoryApp
	MovementApp  movementapp.MovementApp
}

func NewTransport(orderApp orderapp.OrderApp, inventoryApp inventoryapp.InventoryApp, movementApp movementapp.MovementApp,
	actorApp actorapp.ActorApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		OrderApp:     orderApp,
		InventoryApp: inventoryApp,
		MovementApp:  movementApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// orders
	mux.HandleFunc("/v1/orders", rh.ReserveOrder).Methods(http.MethodPost)
	mux.HandleFunc("/v1/orders/{id:[0-9]+}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/v1/orders/{id:[0-9]+}/cancel", rh.CancelOrder).Methods(http.MethodPost)
	mux.HandleFunc("/v1/orders/{id:[0-9]+}/pickup", rh.PickupOrder).Methods(http.MethodPost)
	mux.HandleFunc("/v1/orders/{id:[0-9]+}/deliver", rh.DeliverOrder).Methods(http.MethodPost)
	mux.HandleFunc("/v1/orders/{id:[0-9]+}/status", rh.ChangeOrderStatus).Methods(http.MethodPatch)

	// inventory and movements
	mux.HandleFunc("/v1/inventory", rh.ListInventory).Methods(http.MethodGet)
	mux.HandleFunc("/v1/inventory/available", rh.GetAvailable).Methods(http.MethodGet)
	mux.HandleFunc("/v1/inventory/reconcile", rh.Reconcile).Methods(http.MethodGet)
	mux.HandleFunc("/v1/movements", rh.RecordMovement).Methods(http.MethodPost)
	mux.HandleFunc("/v1/movements", rh.ListMovements).Methods(http.MethodGet)

	// internal routes, called by the expiration worker
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/order/{id:[0-9]+}/expire", rh.ExpireOrder).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(actorApp))

	return mux
}

func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return validatorx.ValidateStruct(dst)
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// queryID reads an optional positive integer query parameter; zero means absent.
func queryID(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

func actorFrom(r *http.Request) model.Actor {
	actor, _ := utilsContext.GetActor(r.Context())
	return actor
}
