package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error. The wire status is derived from it,
// so services never reason about HTTP codes directly.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindOwnership
	KindUnauthorized
	KindForbidden
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindOwnership:
		return "ownership"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the application error carried from services up to handlers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a wire status. Ownership mismatches are
// exposed as 403 rather than the legacy 400.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindOwnership, KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Ownership(format string, args ...interface{}) *Error {
	return &Error{Kind: KindOwnership, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// FromError returns err as an *Error, wrapping unknown errors as internal.
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
