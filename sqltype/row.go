package sqltype

import "time"

// Row is a positional view over the current row of an externally owned,
// forward-only cursor. Implementations return the raw driver-level value
// at the given zero-based column index; mappers take care of converting
// it to the native Go type.
type Row interface {
	Value(idx int) (any, error)
}

// Binder is a positional parameter sink backing a prepared statement.
// Indexes are zero-based. The setters mirror the native types drivers
// accept directly; SetValue is the opaque path for everything else, and
// SetNull binds a NULL carrying the declared column-type tag.
//
// The Binder is owned by the caller; mappers only write into it.
type Binder interface {
	SetBool(idx int, v bool) error
	SetInt64(idx int, v int64) error
	SetFloat64(idx int, v float64) error
	SetString(idx int, v string) error
	SetBytes(idx int, v []byte) error
	SetTime(idx int, v time.Time) error
	SetValue(idx int, v any) error
	SetNull(idx int, t Type) error
}
