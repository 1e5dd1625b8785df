package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for boundary mapping. Validation kinds map to 4xx
// responses and are never retried automatically; GatewayFailure is surfaced
// with the record left in a safe state so a client retry is safe.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindInvalidTransition Kind = "invalid_state_transition"
	KindUnauthorized      Kind = "unauthorized"
	KindInvalidCode       Kind = "invalid_code"
	KindCodeLocked        Kind = "code_locked"
	KindExpired           Kind = "expired"
	KindAlreadyUsed       Kind = "already_used"
	KindConflict          Kind = "conflict"
	KindGatewayFailure    Kind = "gateway_failure"
	KindValidation        Kind = "validation"
	KindInternal          Kind = "internal"
)

// Error is a classified application error with a stable machine-readable code
// and a human message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports errors.Is/As chains
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two application errors by kind and code
func (e *Error) Is(target error) bool {
	var appErr *Error
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Kind == appErr.Kind && (appErr.Code == "" || e.Code == appErr.Code)
}

// New creates a classified error
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap creates a classified error wrapping an underlying cause
func Wrap(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// NotFound reports a missing entity
func NotFound(resource, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    resource + "_not_found",
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}

// InvalidTransition reports an operation not valid from the current status
func InvalidTransition(code, message string) *Error {
	return &Error{Kind: KindInvalidTransition, Code: code, Message: message}
}

// Unauthorized reports a caller that is not the buyer/seller/reviewer of record
func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

// GatewayFailure reports a payment provider error including its reason
func GatewayFailure(reason string, err error) *Error {
	return &Error{Kind: KindGatewayFailure, Code: "gateway_failure", Message: reason, Err: err}
}

// KindOf extracts the kind from an error chain; unclassified errors are internal
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf extracts the stable machine-readable code from an error chain
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "internal_error"
}

// HTTPStatus maps an error to the response status the API boundary returns
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusForbidden
	case KindInvalidTransition, KindAlreadyUsed, KindConflict:
		return http.StatusConflict
	case KindInvalidCode, KindExpired, KindValidation:
		return http.StatusBadRequest
	case KindCodeLocked:
		return http.StatusLocked
	case KindGatewayFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
