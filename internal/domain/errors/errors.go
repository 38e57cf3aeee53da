package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"streetbite/internal/errors"
)

// Kind classifies every failure that can cross the data-access boundary.
type Kind string

const (
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindNotFound         Kind = "NOT_FOUND"
	KindValidationFailed Kind = "VALIDATION_FAILED"
	KindNetwork          Kind = "NETWORK_ERROR"
	KindServer           Kind = "SERVER_ERROR"
)

// Retryable reports whether a UI should offer a retry for this kind.
func (k Kind) Retryable() bool {
	return k == KindNetwork || k == KindServer
}

// HTTPCode is the status the gateway answers with for this kind.
func (k Kind) HTTPCode() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
	fields    FieldErrors
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Unwrap exposes the transport or decoding failure behind the error, if any.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError carrying the same business code, so predefined
// errors work as errors.Is targets after WithDetails/WithCause copies.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Fields returns per-field validation messages; empty for other kinds.
func (e *BaseError) Fields() FieldErrors {
	return e.fields
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithCause records the underlying failure.
func (e *BaseError) WithCause(cause error) *BaseError {
	clone := *e
	clone.cause = cause

	return &clone
}

// WithFields attaches per-field validation messages.
func (e *BaseError) WithFields(fields FieldErrors) *BaseError {
	clone := *e
	clone.fields = fields
	if clone.details == "" && len(fields) > 0 {
		clone.details = fields.String()
	}

	return &clone
}

// FieldErrors maps a field name to the message shown next to it.
type FieldErrors map[string]string

// String renders the field errors in a stable order.
func (f FieldErrors) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, f[k]))
	}

	return strings.Join(parts, "; ")
}

// Predefined error types
var (
	ErrUnauthorized = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"sign in required",
		"",
	)

	ErrSessionExpired = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"session expired, sign in again",
		"",
	)

	ErrForbidden = NewBaseError(
		KindUnauthorized,
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrVendorNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"VENDOR_NOT_FOUND",
		"vendor not found",
		"",
	)

	ErrPromotionNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PROMOTION_NOT_FOUND",
		"promotion not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindValidationFailed,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		KindValidationFailed,
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"vendor status change not allowed",
		"",
	)

	ErrNetwork = NewBaseError(
		KindNetwork,
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"backend unreachable",
		"",
	)

	ErrServer = NewBaseError(
		KindServer,
		http.StatusBadGateway,
		"SERVER_ERROR",
		"backend failed to handle the request",
		"",
	)

	ErrInternalError = NewBaseError(
		KindServer,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// KindOf returns the classification of err, or KindServer for anything that
// is not an AppError.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindServer
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.Kind() == kind
}
