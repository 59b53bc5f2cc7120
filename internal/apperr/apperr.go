// Package apperr defines the error taxonomy every service surfaces:
// BadInput, NotFound, Conflict and Internal. Handlers translate the kind to an
// HTTP status; Internal errors keep their cause for server-side logging but
// expose only a generic message.
package apperr

import (
	"errors"
	"fmt"

	"go-thrifty-inventory/pkg/validator"
)

type Kind int

const (
	KindBadInput Kind = iota + 1
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	// Violations carries the structured field errors for validation failures.
	Violations []validator.FieldError
	// Err is the underlying cause, kept for logs only.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// BadInput reports a malformed or structurally invalid request.
func BadInput(message string) *Error {
	return &Error{Kind: KindBadInput, Message: message}
}

// Validation reports a failed structural validation with its violation list.
func Validation(violations []validator.FieldError) *Error {
	return &Error{Kind: KindBadInput, Message: "Validation failed", Violations: violations}
}

// NotFound reports a missing entity, referenced by id or by foreign key.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// Conflict reports a duplicate unique field or a delete blocked by dependents.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal wraps an unexpected collaborator failure. The cause is never shown
// to the caller.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf extracts the kind from err, defaulting to KindInternal for anything
// outside the taxonomy.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
