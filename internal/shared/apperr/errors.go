package apperr

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind phân loại lỗi theo cách handler map sang HTTP status
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindBadRequest   Kind = "bad_request"
)

// Code trả về error code mặc định của một kind
func (k Kind) Code() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindBadRequest:
		return "BAD_REQUEST"
	}
	return "INTERNAL_SERVER_ERROR"
}

// Kind-level sentinels. errors.Is(err, ErrNotFound) matches every not-found error,
// including domain errors such as article.ErrArticleNotFound.
var (
	ErrValidation   = &Error{Kind: KindValidation, Code: KindValidation.Code(), Message: "validation failed"}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Code: KindUnauthorized.Code(), Message: "authentication required"}
	ErrForbidden    = &Error{Kind: KindForbidden, Code: KindForbidden.Code(), Message: "access denied"}
	ErrNotFound     = &Error{Kind: KindNotFound, Code: KindNotFound.Code(), Message: "resource not found"}
	ErrConflict     = &Error{Kind: KindConflict, Code: KindConflict.Code(), Message: "resource already exists"}
	ErrBadRequest   = &Error{Kind: KindBadRequest, Code: KindBadRequest.Code(), Message: "bad request"}
)

// FieldError mô tả một field không hợp lệ
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// Error là error type chung cho mọi domain
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []FieldError
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

// Is matches errors of the same kind and code. A kind-level sentinel (code equal to
// the kind's default code) matches any error of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == e.Code || t.Code == t.Kind.Code()
}

// ========================================
// CONSTRUCTORS
// ========================================

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, KindUnauthorized.Code(), message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, KindForbidden.Code(), message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func BadRequest(message string, err error) *Error {
	return &Error{Kind: KindBadRequest, Code: KindBadRequest.Code(), Message: message, Err: err}
}

// Validation builds a validation error from explicit field errors
func Validation(fields ...FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    KindValidation.Code(),
		Message: "validation failed",
		Fields:  fields,
	}
}

// FromValidation converts an ozzo-validation result into a validation *Error.
// nil stays nil; internal validation errors are returned unchanged.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return Validation(fieldError("", err))
	}

	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]FieldError, 0, len(names))
	for _, name := range names {
		fields = append(fields, fieldError(name, errs[name]))
	}
	return Validation(fields...)
}

func fieldError(field string, err error) FieldError {
	fe := FieldError{Field: field, Constraint: "invalid", Message: err.Error()}

	var ve validation.Error
	if errors.As(err, &ve) {
		fe.Constraint = ve.Code()
		fe.Message = ve.Error()
	}
	return fe
}

// KindOf trả về kind của err, hoặc "" nếu err không phải *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
