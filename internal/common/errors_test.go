package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("UNSUPPORTED_FILE_TYPE", "only PDF uploads are accepted", ErrValidation)
	if !errors.Is(err, ErrValidation) {
		t.Error("AppError does not unwrap to its sentinel")
	}
	msg := err.Error()
	if msg == "" || msg == "UNSUPPORTED_FILE_TYPE" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"validation", NewAppError("X", "m", ErrValidation), codes.InvalidArgument},
		{"not found", NewAppError("X", "m", ErrNotFound), codes.NotFound},
		{"precondition", NewAppError("X", "m", ErrPrecondition), codes.FailedPrecondition},
		{"oracle timeout", NewAppError("X", "m", ErrOracleTimeout), codes.DeadlineExceeded},
		{"oracle unavailable", NewAppError("X", "m", ErrOracleUnavailable), codes.Unavailable},
		{"no object", NewAppError("X", "m", ErrNoObject), codes.Internal},
		{"malformed", NewAppError("X", "m", ErrMalformedResponse), codes.Internal},
		{"unknown", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusFromError(tt.err)
			if tt.want == codes.OK {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			st, ok := status.FromError(got)
			if !ok {
				t.Fatalf("not a status error: %v", got)
			}
			if st.Code() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, st.Code())
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ctx") != nil {
		t.Error("WrapError(nil) should be nil")
	}
	base := errors.New("base")
	wrapped := WrapError(base, "ctx")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
}
