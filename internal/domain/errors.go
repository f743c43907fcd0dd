package domain

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes errors surfaced to the command dispatcher
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindArgument   ErrorKind = "argument"
)

// Error is the typed error returned by field constructors and contact operations
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap allows errors.Is and errors.As to reach the cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two errors of the same kind and message, so sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// ErrContactNotFound is returned when a command names an unknown contact
var ErrContactNotFound = NewNotFound("contact not found")

// NewValidation creates a validation error
func NewValidation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFound creates a not found error
func NewNotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewArgument creates an argument error, wrapping the underlying cause if any
func NewArgument(message string, err error) error {
	return &Error{Kind: KindArgument, Message: message, Err: err}
}

// KindOf returns the kind of err, or "" if err is not a domain error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsArgument(err error) bool   { return KindOf(err) == KindArgument }
