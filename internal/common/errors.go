package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Every failure surfaced by the extraction
// pipeline wraps exactly one of these sentinels.
var (
	// ErrValidation is rejected input (e.g. non-PDF upload), always raised
	// before any side effect.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound means a referenced document or entity does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrOracleUnavailable is a transport or service failure from the
	// completion oracle. Never retried.
	ErrOracleUnavailable = errors.New("completion oracle unavailable")
	// ErrOracleTimeout is a completion call that exceeded its deadline.
	ErrOracleTimeout = errors.New("completion oracle timeout")
	// ErrNoObject means the oracle response contained no {...} span at all.
	ErrNoObject = errors.New("no structured object found in response")
	// ErrMalformedResponse means a {...} span was found but did not parse.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrPrecondition is structured extraction requested before raw-text
	// extraction has populated any pages.
	ErrPrecondition = errors.New("extraction precondition not met")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// StatusFromError maps a pipeline error onto a gRPC status, so callers
// exposing an RPC or gateway surface get consistent codes.
func StatusFromError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrPrecondition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrOracleTimeout):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, ErrOracleUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ErrNoObject), errors.Is(err, ErrMalformedResponse):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
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

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}
