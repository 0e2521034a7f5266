// Package apperr defines the single error type returned by the domain, storage and service layers.
//
// An Error carries a Kind discriminant, an untranslated message (optionally a format string with Args),
// structured Details for the client and the wrapped cause, which is only ever logged.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an Error. Its value is also the error_type reported to clients.
type Kind string

const (
	KindNotFound      Kind = "ResourceNotFound"
	KindBusinessRule  Kind = "BusinessRuleViolation"
	KindForeignKey    Kind = "ForeignKeyConstraint"
	KindFileOperation Kind = "FileOperationFailure"
	KindPersistence   Kind = "PersistenceFailure"
	KindValidation    Kind = "ValidationFailure"
	KindInternal      Kind = "InternalError"
)

var statusByKind = map[Kind]int{
	KindNotFound:      http.StatusNotFound,
	KindBusinessRule:  http.StatusBadRequest,
	KindForeignKey:    http.StatusBadRequest,
	KindFileOperation: http.StatusInternalServerError,
	KindPersistence:   http.StatusInternalServerError,
	KindValidation:    http.StatusUnprocessableEntity,
	KindInternal:      http.StatusInternalServerError,
}

// Status maps a kind to its HTTP status code. Unknown kinds map to 500.
func (k Kind) Status() int {
	if status, ok := statusByKind[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type Error struct {
	Kind    Kind
	Message string
	Args    []any
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Text() + ": " + e.Err.Error()
	}
	return e.Text()
}

func (e *Error) Unwrap() error { return e.Err }

// Text renders the untranslated message with its arguments.
func (e *Error) Text() string {
	if len(e.Args) == 0 {
		return e.Message
	}
	return fmt.Sprintf(e.Message, e.Args...)
}

// Status is the HTTP status for the error's kind.
func (e *Error) Status() int { return e.Kind.Status() }

// WithDetail returns e with key set in its details.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func newError(kind Kind, msg string, args []any) *Error {
	return &Error{Kind: kind, Message: msg, Args: args}
}

// NotFound reports a missing entity, e.g. NotFound("Credit", id) -> "Credit not found".
func NotFound(resourceType string, id any) *Error {
	return newError(KindNotFound, resourceType+" not found", nil).
		WithDetail("resource_type", resourceType).
		WithDetail("resource_id", fmt.Sprint(id))
}

func BusinessRule(msg string, args ...any) *Error {
	return newError(KindBusinessRule, msg, args)
}

// ForeignKey reports an operation refused because of related rows.
func ForeignKey(parent, child, msg string, args ...any) *Error {
	return newError(KindForeignKey, msg, args).
		WithDetail("parent", parent).
		WithDetail("child", child)
}

func FileOperation(msg, filepath string, err error) *Error {
	e := newError(KindFileOperation, msg, nil)
	e.Err = err
	if filepath != "" {
		e.WithDetail("filepath", filepath)
	}
	return e
}

// Persistence hides a storage failure behind a generic message; err is kept for logging only.
func Persistence(operation string, err error) *Error {
	e := newError(KindPersistence, "Database operation failed", nil)
	e.Err = err
	if operation != "" {
		e.WithDetail("operation", operation)
	}
	return e
}

func Validation(msg string, args ...any) *Error {
	return newError(KindValidation, msg, args)
}

func Internal(err error) *Error {
	e := newError(KindInternal, "Internal server error", nil)
	e.Err = err
	return e
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, KindInternal for foreign errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
