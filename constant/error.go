package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrValidation
	ErrInsufficientStock
	ErrInvalidTransition
	ErrOrderAlreadyTerminal
	ErrConflict
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrValidation:           "validation failed",
	ErrInsufficientStock:    "insufficient stock",
	ErrInvalidTransition:    "invalid order status transition",
	ErrOrderAlreadyTerminal: "order already finished",
	ErrConflict:             "concurrent update, retry the operation",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrValidation:           http.StatusBadRequest,
	ErrInsufficientStock:    http.StatusConflict,
	ErrInvalidTransition:    http.StatusConflict,
	ErrOrderAlreadyTerminal: http.StatusConflict,
	ErrConflict:             http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrValidation:           "0005",
	ErrInsufficientStock:    "0006",
	ErrInvalidTransition:    "0007",
	ErrOrderAlreadyTerminal: "0008",
	ErrConflict:             "0009",
}
