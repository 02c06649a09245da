// Package apperrors defines the error kinds shared by the assistant components.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the dispatcher boundary.
type Kind string

const (
	// KindInvalidArgument marks caller input that cannot be processed, e.g. an empty cédula.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	// KindNotFound marks a normal negative lookup result.
	KindNotFound Kind = "NOT_FOUND"
	// KindCollaborator marks a failed classification, retrieval or generation call.
	KindCollaborator Kind = "COLLABORATOR_FAILURE"
	// KindStartup marks a missing or unreadable required data source.
	KindStartup Kind = "STARTUP_FAILURE"
)

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidArgument creates a non-retryable input error.
func InvalidArgument(op, message string) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: message}
}

// NotFound creates a lookup miss.
func NotFound(op, message string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

// Collaborator wraps a failure of an external collaborator call.
func Collaborator(op string, err error) *Error {
	return &Error{Kind: KindCollaborator, Op: op, Message: "collaborator call failed", Err: err}
}

// Startup wraps a fatal initialization error.
func Startup(op string, err error) *Error {
	return &Error{Kind: KindStartup, Op: op, Message: "startup failed", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
