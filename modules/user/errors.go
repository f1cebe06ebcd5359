package user

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID = errors.New("invalid user id")
	ErrNotFound  = errors.New("user not found")
	ErrStorage   = errors.New("user storage failure")
)

// StorageError wraps a driver failure with the repository operation it came from.
// errors.Is(err, ErrStorage) reports true for every StorageError.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
