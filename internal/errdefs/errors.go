package errdefs

import "errors"

// ErrAlreadyExists is returned by store drivers when the conditional
// insert finds a record under the same key.
var ErrAlreadyExists = errors.New("submission already exists")

// BadRequestError carries the exact reason returned to the client for
// parse and validation failures.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string { return e.Reason }

func BadRequest(reason string) error { return &BadRequestError{Reason: reason} }

// StorageError wraps a store-layer fault whose detail is surfaced in the
// error response.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
