package domain

import "errors"

// Code classifies an Error so the transport layer can map it to a status
// without inspecting messages.
type Code string

const (
	CodeInvalidID    Code = "invalid_id"
	CodeMissingField Code = "missing_field"
	CodeInvalidField Code = "invalid_field"
	CodeInvalidEnum  Code = "invalid_enum"
	CodeInvalidRange Code = "invalid_range"
	CodeEmptyUpdate  Code = "empty_update"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeStore        Code = "store"
)

// Error carries a classification code and a user-facing message. Store
// errors additionally wrap the underlying cause, which is logged but never
// sent to clients.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError builds a client-facing error with the given classification.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// StoreError wraps an underlying persistence failure. The cause stays
// internal; clients only ever see the generic message.
func StoreError(cause error) *Error {
	return &Error{Code: CodeStore, Message: "internal error", Cause: cause}
}

// CodeOf extracts the classification of err. Unclassified errors count as
// store failures.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeStore
}
