package sqltype

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is the sentinel matched by all decode shape failures.
// It allows errors.Is(err, ErrTypeMismatch) regardless of the mapper
// that produced the error.
var ErrTypeMismatch = errors.New("sqltype: column value shape mismatch")

// DecodeError is returned when the runtime shape of a column value is not
// among the accepted shapes of the mapper's native type. It is fatal to the
// current row read; no partial or best-effort decode is attempted.
type DecodeError struct {
	Column Type   // declared column-type tag of the mapper
	Gotype string // native Go type the mapper targets
	Value  any    // the rejected driver value
}

// Error returns the error string.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("sqltype: cannot decode %T value into %s (%s column)", e.Value, e.Gotype, e.Column)
}

// Is reports whether the target error matches ErrTypeMismatch.
func (e *DecodeError) Is(err error) bool {
	return err == ErrTypeMismatch
}

// IsTypeMismatch returns true if the error is a DecodeError.
func IsTypeMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *DecodeError
	return errors.As(err, &e) || errors.Is(err, ErrTypeMismatch)
}

// UnregisteredTypeError is returned by registry lookups for a native type
// that has no mapper registered under the active dialect.
type UnregisteredTypeError struct {
	Gotype string
}

// Error returns the error string.
func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("sqltype: no mapper registered for %s", e.Gotype)
}

// IsUnregisteredType returns true if the error is an UnregisteredTypeError.
func IsUnregisteredType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnregisteredTypeError
	return errors.As(err, &e)
}

// decodeErr builds a DecodeError for the given mapper settings and value.
func decodeErr[T any](s settings, v any) (T, error) {
	var zero T
	return zero, &DecodeError{Column: s.column, Gotype: fmt.Sprintf("%T", zero), Value: v}
}
