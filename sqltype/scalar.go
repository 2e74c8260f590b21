package sqltype

import "strconv"

// Bool returns the mapper for bool values (BOOLEAN column). Decode accepts
// a native bool or an integer 0/1, which is how boolean-less engines such
// as SQLite return the column.
func Bool(opts ...Option) Mapper[bool] {
	s := newSettings(TypeBool, opts)
	return mapper[bool]{
		settings: s,
		decode: func(v any) (bool, error) {
			switch v := v.(type) {
			case bool:
				return v, nil
			case int64:
				return v != 0, nil
			default:
				return decodeErr[bool](s, v)
			}
		},
		encode: func(b Binder, idx int, v bool) error {
			return b.SetBool(idx, v)
		},
	}
}

// Int16 returns the mapper for int16 values (SMALLINT column).
func Int16(opts ...Option) Mapper[int16] {
	s := newSettings(TypeSmallInt, opts)
	return mapper[int16]{
		settings: s,
		decode: func(v any) (int16, error) {
			n, ok := asInt64(v)
			if !ok {
				return decodeErr[int16](s, v)
			}
			return int16(n), nil
		},
		encode: func(b Binder, idx int, v int16) error {
			return b.SetInt64(idx, int64(v))
		},
	}
}

// Int32 returns the mapper for int32 values (INTEGER column).
func Int32(opts ...Option) Mapper[int32] {
	s := newSettings(TypeInteger, opts)
	return mapper[int32]{
		settings: s,
		decode: func(v any) (int32, error) {
			n, ok := asInt64(v)
			if !ok {
				return decodeErr[int32](s, v)
			}
			return int32(n), nil
		},
		encode: func(b Binder, idx int, v int32) error {
			return b.SetInt64(idx, int64(v))
		},
	}
}

// Int64 returns the mapper for int64 values (BIGINT column).
func Int64(opts ...Option) Mapper[int64] {
	s := newSettings(TypeBigInt, opts)
	return mapper[int64]{
		settings: s,
		decode: func(v any) (int64, error) {
			n, ok := asInt64(v)
			if !ok {
				return decodeErr[int64](s, v)
			}
			return n, nil
		},
		encode: func(b Binder, idx int, v int64) error {
			return b.SetInt64(idx, v)
		},
	}
}

// Float64 returns the mapper for float64 values (DOUBLE PRECISION column).
// Decode also accepts integer and textual shapes, since drivers report
// NUMERIC-affinity columns inconsistently.
func Float64(opts ...Option) Mapper[float64] {
	s := newSettings(TypeDouble, opts)
	return mapper[float64]{
		settings: s,
		decode: func(v any) (float64, error) {
			switch v := v.(type) {
			case float64:
				return v, nil
			case float32:
				return float64(v), nil
			case int64:
				return float64(v), nil
			case string:
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return decodeErr[float64](s, v)
				}
				return f, nil
			default:
				return decodeErr[float64](s, v)
			}
		},
		encode: func(b Binder, idx int, v float64) error {
			return b.SetFloat64(idx, v)
		},
	}
}

// String returns the mapper for string values (VARCHAR column).
func String(opts ...Option) Mapper[string] {
	s := newSettings(TypeVarchar, opts)
	return mapper[string]{
		settings: s,
		decode: func(v any) (string, error) {
			switch v := v.(type) {
			case string:
				return v, nil
			case []byte:
				return string(v), nil
			default:
				return decodeErr[string](s, v)
			}
		},
		encode: func(b Binder, idx int, v string) error {
			return b.SetString(idx, v)
		},
	}
}

// Bytes returns the mapper for []byte values (VARBINARY column).
func Bytes(opts ...Option) Mapper[[]byte] {
	s := newSettings(TypeVarbinary, opts)
	return mapper[[]byte]{
		settings: s,
		decode: func(v any) ([]byte, error) {
			switch v := v.(type) {
			case []byte:
				// Drivers may reuse the buffer between rows.
				return append([]byte(nil), v...), nil
			case string:
				return []byte(v), nil
			default:
				return decodeErr[[]byte](s, v)
			}
		},
		encode: func(b Binder, idx int, v []byte) error {
			return b.SetBytes(idx, v)
		},
	}
}

// asInt64 normalizes the integer shapes drivers return.
func asInt64(v any) (int64, bool) {
	switch v := v.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	default:
		return 0, false
	}
}
