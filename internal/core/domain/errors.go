package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindProductNotFound    ErrorKind = "product_not_found"
	KindCartLineNotFound   ErrorKind = "cart_line_not_found"
	KindInvalidQuantity    ErrorKind = "invalid_quantity"
	KindInsufficientStock  ErrorKind = "insufficient_stock"
	KindTransactionFailure ErrorKind = "transaction_failure"
	KindInvalidSession     ErrorKind = "invalid_session"
	KindCartEmpty          ErrorKind = "cart_empty"
	KindDuplicateRequest   ErrorKind = "duplicate_request"
	KindInvalidEmail       ErrorKind = "invalid_email"
	KindOrderNotFound      ErrorKind = "order_not_found"
)

// Error is the structured error returned by the service layer. Two errors
// match under errors.Is when their kinds are equal, so the sentinels below can
// be compared against errors carrying extra detail.
type Error struct {
	Kind      ErrorKind
	Message   string
	Available int // units the caller could still reserve; insufficient_stock only
	Err       error
}

var (
	ErrProductNotFound    = &Error{Kind: KindProductNotFound, Message: "product not found"}
	ErrCartLineNotFound   = &Error{Kind: KindCartLineNotFound, Message: "cart line not found"}
	ErrInvalidQuantity    = &Error{Kind: KindInvalidQuantity, Message: "invalid quantity"}
	ErrInsufficientStock  = &Error{Kind: KindInsufficientStock, Message: "insufficient stock"}
	ErrTransactionFailure = &Error{Kind: KindTransactionFailure, Message: "transaction failed"}
	ErrInvalidSession     = &Error{Kind: KindInvalidSession, Message: "missing session id"}
	ErrCartEmpty          = &Error{Kind: KindCartEmpty, Message: "cart is empty"}
	ErrDuplicateRequest   = &Error{Kind: KindDuplicateRequest, Message: "duplicate request"}
	ErrInvalidEmail       = &Error{Kind: KindInvalidEmail, Message: "invalid email"}
	ErrOrderNotFound      = &Error{Kind: KindOrderNotFound, Message: "order not found"}
)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func InsufficientStock(available int) *Error {
	return &Error{
		Kind:      KindInsufficientStock,
		Message:   fmt.Sprintf("insufficient stock: %d available", available),
		Available: available,
	}
}

// TransactionFailure wraps a storage error raised inside an atomic section.
func TransactionFailure(err error) *Error {
	return &Error{Kind: KindTransactionFailure, Message: "transaction failed", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
