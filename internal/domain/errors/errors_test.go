package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"invalid member", ErrInvalidMember},
		{"invalid trainer", ErrInvalidTrainer},
		{"invalid admin", ErrInvalidAdmin},
		{"invalid photo", ErrInvalidPhoto},
		{"photo too large", ErrPhotoTooLarge},
		{"confirmation required", ErrConfirmationRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
			if stdErrors.Is(tc.err, ErrStore) {
				t.Fatalf("sentinel %v must not match ErrStore", tc.err)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := NewStoreError("save member", cause)

	if !stdErrors.Is(err, ErrStore) {
		t.Fatalf("expected store error to match ErrStore")
	}
	if !stdErrors.Is(err, cause) {
		t.Fatalf("expected store error to unwrap to cause")
	}
	var se *StoreError
	if !stdErrors.As(err, &se) || se.Op != "save member" {
		t.Fatalf("expected StoreError with op, got %v", err)
	}
	if got := err.Error(); got != "store: save member: disk full" {
		t.Fatalf("unexpected message %q", got)
	}

	wrapped := fmt.Errorf("reset: %w", err)
	if again := NewStoreError("other", wrapped); again != wrapped {
		t.Fatalf("expected existing store error to be kept as is")
	}
	if NewStoreError("noop", nil) != nil {
		t.Fatalf("expected nil for nil cause")
	}
}
