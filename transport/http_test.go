package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/pickup-inventory/constant"
	actormocks "github.com/muhammadheryan/pickup-inventory/mocks/application/actor"
	inventorymocks "github.com/muhammadheryan/pickup-inventory/mocks/application/inventory"
	movementmocks "github.com/muhammadheryan/pickup-inventory/mocks/application/movement"
	ordermocks "github.com/muhammadheryan/pickup-inventory/mocks/application/order"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/muhammadheryan/pickup-inventory/transport"
	cerr "github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "worker-key"

type mocks struct {
	order     *ordermocks.OrderApp
	inventory *inventorymocks.InventoryApp
	movement  *movementmocks.MovementApp
	actor     *actormocks.ActorApp
}

func newMocks(t *testing.T) mocks {
	return mocks{
		order:     ordermocks.NewOrderApp(t),
		inventory: inventorymocks.NewInventoryApp(t),
		movement:  movementmocks.NewMovementApp(t),
		actor:     actormocks.NewActorApp(t),
	}
}

func (m mocks) handler() http.Handler {
	return transport.NewTransport(m.order, m.inventory, m.movement, m.actor, internalKey)
}

func (m mocks) authorized() {
	m.actor.On("ValidateToken", mock.Anything, "good").Return(model.Actor{UserID: 7, Role: "cashier"}, nil).Maybe()
}

type body struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, method, target, auth, payload string) (*httptest.ResponseRecorder, body) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b), rec.Body.String())
	return rec, b
}

func TestRestHandler_Orders(t *testing.T) {
	actor := model.Actor{UserID: 7, Role: "cashier"}

	tests := []struct {
		name       string
		method     string
		target     string
		payload    string
		mockCall   func(m mocks)
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:    "reserve: success",
			method:  http.MethodPost,
			target:  "/v1/orders",
			payload: `{"branch_id":1,"items":[{"product_id":2,"quantity":3}]}`,
			mockCall: func(m mocks) {
				m.order.On("ReserveOrder", mock.Anything, mock.MatchedBy(func(req *model.ReserveOrderRequest) bool {
					return req.BranchID == 1 && len(req.Items) == 1 && req.Items[0].Quantity == 3
				}), actor).Return(&model.Order{ID: 10, Status: constant.OrderStatusPending}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:       "reserve: malformed body",
			method:     http.MethodPost,
			target:     "/v1/orders",
			payload:    `{"branch_id":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:    "reserve: insufficient stock",
			method:  http.MethodPost,
			target:  "/v1/orders",
			payload: `{"branch_id":1,"items":[{"product_id":2,"quantity":30}]}`,
			mockCall: func(m mocks) {
				m.order.On("ReserveOrder", mock.Anything, mock.Anything, actor).
					Return(nil, cerr.InsufficientStockError{ProductID: 2, BranchID: 1, Requested: 30, Available: 4}).Once()
			},
			wantStatus: constant.ErrorTypeHTTPCode[constant.ErrInsufficientStock],
			wantCode:   constant.ErrorTypeCode[constant.ErrInsufficientStock],
			wantDetail: cerr.InsufficientStockError{ProductID: 2, BranchID: 1, Requested: 30, Available: 4}.Error(),
		},
		{
			name:   "get: not found",
			method: http.MethodGet,
			target: "/v1/orders/5",
			mockCall: func(m mocks) {
				m.order.On("GetOrder", mock.Anything, uint64(5)).Return(nil, cerr.NewNotFoundError("order", 5)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   constant.ErrorTypeCode[constant.ErrNotFound],
		},
		{
			name:   "cancel: terminal",
			method: http.MethodPost,
			target: "/v1/orders/5/cancel",
			mockCall: func(m mocks) {
				m.order.On("CancelOrder", mock.Anything, uint64(5), actor).Return(nil, cerr.OrderAlreadyTerminalError{
					OrderID: 5, Status: constant.OrderStatusCancelled, Attempted: constant.OrderStatusCancelled,
				}).Once()
			},
			wantStatus: constant.ErrorTypeHTTPCode[constant.ErrOrderAlreadyTerminal],
			wantCode:   constant.ErrorTypeCode[constant.ErrOrderAlreadyTerminal],
		},
		{
			name:   "pickup: untyped error hides its text",
			method: http.MethodPost,
			target: "/v1/orders/5/pickup",
			mockCall: func(m mocks) {
				m.order.On("PickupOrder", mock.Anything, uint64(5), actor).Return(nil, errors.New("dial tcp: refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   constant.ErrorTypeCode[constant.ErrInternal],
		},
		{
			name:    "status: success",
			method:  http.MethodPatch,
			target:  "/v1/orders/5/status",
			payload: `{"status":"READY"}`,
			mockCall: func(m mocks) {
				m.order.On("ChangeOrderStatus", mock.Anything, uint64(5), constant.OrderStatusReady, actor).
					Return(&model.Order{ID: 5, Status: constant.OrderStatusReady}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name:       "status: missing status",
			method:     http.MethodPatch,
			target:     "/v1/orders/5/status",
			payload:    `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrValidation],
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			target:     "/v1/orders/abc",
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			m.authorized()
			if tt.mockCall != nil {
				tt.mockCall(m)
			}

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.payload))
			req.Header.Set("Authorization", "Bearer good")
			rec := httptest.NewRecorder()
			m.handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode == "" {
				return
			}
			var b body
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
			assert.Equal(t, tt.wantCode, b.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, b.Detail)
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "dial tcp")
			}
		})
	}
}

func TestRestHandler_Inventory(t *testing.T) {
	t.Run("available across branches", func(t *testing.T) {
		m := newMocks(t)
		m.authorized()
		m.inventory.On("GetAvailable", mock.Anything, uint64(2), (*uint64)(nil)).
			Return(&model.AvailabilityResponse{ProductID: 2, Available: 9}, nil).Once()

		rec, b := do(t, m.handler(), http.MethodGet, "/v1/inventory/available?product_id=2", "Bearer good", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.AvailabilityResponse
		require.NoError(t, json.Unmarshal(b.Data, &got))
		assert.Equal(t, int64(9), got.Available)
	})

	t.Run("available at one branch", func(t *testing.T) {
		m := newMocks(t)
		m.authorized()
		m.inventory.On("GetAvailable", mock.Anything, uint64(2), mock.MatchedBy(func(b *uint64) bool {
			return b != nil && *b == 4
		})).Return(&model.AvailabilityResponse{ProductID: 2, Available: 1}, nil).Once()

		rec, _ := do(t, m.handler(), http.MethodGet, "/v1/inventory/available?product_id=2&branch_id=4", "Bearer good", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad branch id", func(t *testing.T) {
		m := newMocks(t)
		m.authorized()

		rec, b := do(t, m.handler(), http.MethodGet, "/v1/inventory?branch_id=-1", "Bearer good", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrValidation], b.Code)
	})

	t.Run("movement list rejects unknown type", func(t *testing.T) {
		m := newMocks(t)
		m.authorized()

		rec, b := do(t, m.handler(), http.MethodGet, "/v1/movements?type=REGALO", "Bearer good", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, b.Detail, "type")
	})

	t.Run("movement list passes the filter", func(t *testing.T) {
		m := newMocks(t)
		m.authorized()
		m.movement.On("ListMovements", mock.Anything, &model.MovementFilter{
			ProductID: 2, Type: constant.MovementMerma, Limit: 5,
		}).Return([]model.StockMovement{}, nil).Once()

		rec, _ := do(t, m.handler(), http.MethodGet, "/v1/movements?product_id=2&type=MERMA&limit=5", "Bearer good", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("record movement carries the actor", func(t *testing.T) {
		m := newMocks(t)
		m.authorized()
		m.movement.On("RecordMovement", mock.Anything, mock.Anything, model.Actor{UserID: 7, Role: "cashier"}).
			Return(&model.StockMovement{ID: 1}, nil).Once()

		rec, _ := do(t, m.handler(), http.MethodPost, "/v1/movements", "Bearer good",
			`{"type":"COMPRA","quantity":3,"product_id":2,"to_branch_id":1}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		auth       string
		mockCall   func(m mocks)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			auth:       "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token refused",
			auth: "Bearer bad",
			mockCall: func(m mocks) {
				m.actor.On("ValidateToken", mock.Anything, "bad").Return(model.Actor{}, errors.New("invalid token")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token accepted",
			auth: "Bearer good",
			mockCall: func(m mocks) {
				m.authorized()
				m.order.On("GetOrder", mock.Anything, uint64(1)).Return(&model.Order{ID: 1}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			if tt.mockCall != nil {
				tt.mockCall(m)
			}
			rec, b := do(t, m.handler(), http.MethodGet, "/v1/orders/1", tt.auth, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnauthorize], b.Code)
			}
		})
	}
}

func TestInternalMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		auth       string
		mockCall   func(m mocks)
		wantStatus int
	}{
		{
			name:       "missing key",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key",
			auth:       "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "user token is not enough",
			auth: "Bearer good",
			mockCall: func(m mocks) {
				m.authorized()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "service key",
			auth: "Bearer " + internalKey,
			mockCall: func(m mocks) {
				m.order.On("ExpireOrder", mock.Anything, uint64(3)).Return(&model.Order{ID: 3, Status: constant.OrderStatusCancelled}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			if tt.mockCall != nil {
				tt.mockCall(m)
			}
			rec, _ := do(t, m.handler(), http.MethodPost, "/internal/v1/order/3/expire", tt.auth, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestInternalMiddleware_EmptyKeyRefusesAll(t *testing.T) {
	m := newMocks(t)
	h := transport.NewTransport(m.order, m.inventory, m.movement, m.actor, "")

	rec, _ := do(t, h, http.MethodPost, "/internal/v1/order/3/expire", "Bearer ", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
