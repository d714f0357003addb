package progress

import (
	"errors"
	"fmt"
)

// Op identifies the kind of storage access that failed.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

var (
	// ErrStorageRead matches any StorageError raised while reading.
	ErrStorageRead = errors.New("progress storage read failed")
	// ErrStorageWrite matches any StorageError raised while writing.
	ErrStorageWrite = errors.New("progress storage write failed")
	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = errors.New("progress store is closed")
)

// StorageError reports a failed backend access.
type StorageError struct {
	Op  Op
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("progress storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("progress storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the ErrStorageRead and ErrStorageWrite sentinels.
func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrStorageRead:
		return e.Op == OpRead
	case ErrStorageWrite:
		return e.Op == OpWrite
	}
	return false
}

// IsStorageError reports whether err wraps a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
