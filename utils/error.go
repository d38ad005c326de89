package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorInvalidArgument marks caller mistakes (empty document number,
// negative or non-finite price). Wrapped with %w so callers can errors.Is.
var ErrorInvalidArgument = errors.New("invalid argument")

// ErrorAmbiguousTaxRate is returned when a receipt carries more than one
// distinct tax rate. Derivation supports a single flat rate per document.
var ErrorAmbiguousTaxRate = errors.New("document has more than one tax rate")

// StorageError wraps a failure to read or write the fixture store.
// An operation that returns one has not committed anything.
type StorageError struct {
	Op   string
	Kind string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(op string, kind string, err error) *StorageError {
	return &StorageError{Op: op, Kind: kind, Err: err}
}

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
