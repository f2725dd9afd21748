package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidMember        = errors.New("invalid member")
	ErrInvalidTrainer       = errors.New("invalid trainer")
	ErrInvalidAdmin         = errors.New("invalid admin profile")
	ErrInvalidPhoto         = errors.New("invalid photo")
	ErrPhotoTooLarge        = errors.New("photo too large")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrStore                = errors.New("store failure")
)

// StoreError reports a persistence layer failure for the named operation.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err unless it is nil or already a StoreError.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStore) match any StoreError.
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}
