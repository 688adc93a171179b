package errors

import (
	"errors"
)

// As and Is forward to the standard library so callers need only this package.
func As(err error, target **Error) bool { return errors.As(err, target) }

func Is(err, target error) bool { return errors.Is(err, target) }

func asError(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns CodeOK for nil and CodeInternal for unstructured errors.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := asError(err); ok {
		return e.Code
	}
	return CodeInternal
}

func GetMeta(err error) map[string]any {
	if e, ok := asError(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message, without code or cause.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool         { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool  { return GetCode(err) == CodeInvalidArgument }
func IsAlreadyExists(err error) bool    { return GetCode(err) == CodeAlreadyExists }
func IsPermissionDenied(err error) bool { return GetCode(err) == CodePermissionDenied }
func IsInternal(err error) bool         { return GetCode(err) == CodeInternal }
func IsUnavailable(err error) bool      { return GetCode(err) == CodeUnavailable }
