package errors

import (
	"fmt"

	"github.com/muhammadheryan/pickup-inventory/constant"
)

// Typed is implemented by every error the service hands to the transport layer.
type Typed interface {
	error
	Type() constant.ErrorType
	ErrorCode() string
	ErrorHTTPCode() int
}

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// TypeOf returns the error type carried by err, or ErrInternal for anything untyped.
func TypeOf(err error) constant.ErrorType {
	if err == nil {
		return constant.Successful
	}
	var typed Typed
	if As(err, &typed) {
		return typed.Type()
	}
	return constant.ErrInternal
}

// Is reports whether err carries the given error type.
func Is(err error, errorType constant.ErrorType) bool {
	return err != nil && TypeOf(err) == errorType
}

type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) ValidationError {
	return ValidationError{Field: field, Reason: reason}
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e ValidationError) Type() constant.ErrorType { return constant.ErrValidation }
func (e ValidationError) ErrorCode() string        { return constant.ErrorTypeCode[constant.ErrValidation] }
func (e ValidationError) ErrorHTTPCode() int       { return constant.ErrorTypeHTTPCode[constant.ErrValidation] }

type InsufficientStockError struct {
	ProductID uint64
	BranchID  uint64
	Requested int64
	Available int64
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d at branch %d: requested %d, available %d",
		e.ProductID, e.BranchID, e.Requested, e.Available)
}

func (e InsufficientStockError) Type() constant.ErrorType { return constant.ErrInsufficientStock }
func (e InsufficientStockError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrInsufficientStock]
}
func (e InsufficientStockError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrInsufficientStock]
}

type InvalidTransitionError struct {
	OrderID uint64
	From    constant.OrderStatus
	To      constant.OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %d cannot move from %s to %s", e.OrderID, e.From, e.To)
}

func (e InvalidTransitionError) Type() constant.ErrorType { return constant.ErrInvalidTransition }
func (e InvalidTransitionError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrInvalidTransition]
}
func (e InvalidTransitionError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrInvalidTransition]
}

type OrderAlreadyTerminalError struct {
	OrderID   uint64
	Status    constant.OrderStatus
	Attempted constant.OrderStatus
}

func (e OrderAlreadyTerminalError) Error() string {
	return fmt.Sprintf("order %d is already %s, cannot move to %s", e.OrderID, e.Status, e.Attempted)
}

func (e OrderAlreadyTerminalError) Type() constant.ErrorType { return constant.ErrOrderAlreadyTerminal }
func (e OrderAlreadyTerminalError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrOrderAlreadyTerminal]
}
func (e OrderAlreadyTerminalError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrOrderAlreadyTerminal]
}

type NotFoundError struct {
	Entity string
	ID     uint64
}

func NewNotFoundError(entity string, id uint64) NotFoundError {
	return NotFoundError{Entity: entity, ID: id}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e NotFoundError) Type() constant.ErrorType { return constant.ErrNotFound }
func (e NotFoundError) ErrorCode() string        { return constant.ErrorTypeCode[constant.ErrNotFound] }
func (e NotFoundError) ErrorHTTPCode() int       { return constant.ErrorTypeHTTPCode[constant.ErrNotFound] }

type ConflictError struct {
	Entity string
	Cause  error
}

func NewConflictError(entity string, cause error) ConflictError {
	return ConflictError{Entity: entity, Cause: cause}
}

func (e ConflictError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("concurrent update on %s", e.Entity)
	}
	return fmt.Sprintf("concurrent update on %s: %v", e.Entity, e.Cause)
}

func (e ConflictError) Unwrap() error { return e.Cause }

func (e ConflictError) Type() constant.ErrorType { return constant.ErrConflict }
func (e ConflictError) ErrorCode() string        { return constant.ErrorTypeCode[constant.ErrConflict] }
func (e ConflictError) ErrorHTTPCode() int       { return constant.ErrorTypeHTTPCode[constant.ErrConflict] }
