package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is a structured error carrying a code, a caller-facing message and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on code, and on reason when the target carries one. This lets
// errors.Is(err, errors.FightNotFound("")) ignore the fight id.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e.Code != t.Code {
		return false
	}
	want := t.Reason()
	return want == "" || e.Reason() == want
}

// WithMeta sets one metadata entry and returns the same error for chaining.
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A structured cause keeps its code and a copy of
// its metadata; anything else becomes CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	code := CodeInternal
	var cause *Error
	if errors.As(err, &cause) {
		code = cause.Code
	}
	return wrap(err, code, message)
}

func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code overridden.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, code, message)
}

func wrap(err error, code Code, message string) *Error {
	out := &Error{Code: code, Message: message, Cause: err}
	var cause *Error
	if errors.As(err, &cause) && len(cause.Meta) > 0 {
		out.Meta = maps.Clone(cause.Meta)
	}
	return out
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExists(message string) *Error { return New(CodeAlreadyExists, message) }

func PermissionDenied(message string) *Error { return New(CodePermissionDenied, message) }

func PermissionDeniedf(format string, args ...any) *Error {
	return Newf(CodePermissionDenied, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

func Unauthenticated(message string) *Error { return New(CodeUnauthenticated, message) }

func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }
