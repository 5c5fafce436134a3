package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidState = errors.New("invalid state for requested action")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// CollaboratorError wraps a failure from an external collaborator
// (object storage, OCR engine, AI extractor). Transient failures are
// eligible for retry; permanent ones fail the stage immediately.
type CollaboratorError struct {
	Collaborator string
	Transient    bool
	Err          error
}

func (e *CollaboratorError) Error() string {
	kind := "rejected"
	if e.Transient {
		kind = "unavailable"
	}
	return fmt.Sprintf("%s %s: %v", e.Collaborator, kind, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Unavailable marks err as a transient collaborator failure.
func Unavailable(collaborator string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Collaborator: collaborator, Transient: true, Err: err}
}

// Rejected marks err as a permanent collaborator failure.
func Rejected(collaborator string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Collaborator: collaborator, Transient: false, Err: err}
}

// IsTransient reports whether err is a retryable collaborator failure.
func IsTransient(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce) && ce.Transient
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

// GRPCStatus maps core errors onto the wire taxonomy: unknown ids are
// NotFound, state machine violations are FailedPrecondition, anything
// else is Internal.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrInvalidState):
		return FailedPreconditionError(err.Error())
	case errors.Is(err, ErrInvalidInput):
		return InvalidArgumentError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
