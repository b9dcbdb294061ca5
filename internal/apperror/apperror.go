// Package apperror is the error taxonomy shared by every use case.
//
// Every failure reported to a caller is an *Error carrying a Kind (which
// decides the transport status), a machine-readable Code (which selects the
// localized message) and, for input problems, the offending Field.
package apperror

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuthorization
	KindBusinessRule
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindBusinessRule:
		return "business_rule"
	default:
		return "internal"
	}
}

// GRPCCode maps the kind to the status code used on the wire.
func (k Kind) GRPCCode() codes.Code {
	switch k {
	case KindValidation:
		return codes.InvalidArgument
	case KindConflict:
		return codes.AlreadyExists
	case KindNotFound:
		return codes.NotFound
	case KindAuthorization:
		return codes.PermissionDenied
	case KindBusinessRule:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// Code is a machine-readable error code, also used as i18n message id.
type Code string

const (
	CodeInvalidArgument       Code = "INVALID_ARGUMENT"
	CodeInvalidAmount         Code = "INVALID_AMOUNT"
	CodeInvalidQuantity       Code = "INVALID_QUANTITY"
	CodeFieldNotEditable      Code = "FIELD_NOT_EDITABLE"
	CodeUnknownField          Code = "UNKNOWN_FIELD"
	CodeReasonTooShort        Code = "REASON_TOO_SHORT"
	CodeInvalidAdjustmentType Code = "INVALID_ADJUSTMENT_TYPE"
	CodeInvalidRate           Code = "INVALID_RATE"
	CodeMissingIdentity       Code = "MISSING_IDENTITY"
	CodeShiftAlreadyOpen      Code = "SHIFT_ALREADY_OPEN"
	CodeNoOpenShift           Code = "NO_OPEN_SHIFT"
	CodeShiftNotFound         Code = "SHIFT_NOT_FOUND"
	CodeShiftClosed           Code = "SHIFT_CLOSED"
	CodeProductNotFound       Code = "PRODUCT_NOT_FOUND"
	CodeAdminRequired         Code = "ADMIN_REQUIRED"
	CodeLowFloatUnconfirmed   Code = "LOW_FLOAT_UNCONFIRMED"
	CodeDivergenceUnexplained Code = "DIVERGENCE_UNEXPLAINED"
	CodeCollaboratorIsOwner   Code = "COLLABORATOR_IS_OWNER"
	CodeCollaboratorExists    Code = "COLLABORATOR_EXISTS"
	CodeCollaboratorNotFound  Code = "COLLABORATOR_NOT_FOUND"
	CodeRateVersionConflict   Code = "RATE_VERSION_CONFLICT"
	CodeUnexpected            Code = "UNEXPECTED"
)

type Error struct {
	Kind     Kind
	Code     Code
	Field    string
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by kind and code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// With returns a copy carrying an extra metadata entry.
func (e *Error) With(key, value string) *Error {
	cp := *e
	cp.Metadata = make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		cp.Metadata[k] = v
	}
	cp.Metadata[key] = value
	return &cp
}

func Validation(code Code, field, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Field: field, Message: message,
		Metadata: map[string]string{"field": field}}
}

func Conflict(code Code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func NotFound(code Code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Unauthorized(code Code, message string) *Error {
	return &Error{Kind: KindAuthorization, Code: code, Message: message}
}

func BusinessRule(code Code, message string, metadata map[string]string) *Error {
	return &Error{Kind: KindBusinessRule, Code: code, Message: message, Metadata: metadata}
}

// KindOf returns KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnexpected
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
