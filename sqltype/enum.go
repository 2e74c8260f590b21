package sqltype

// Enum returns a mapper for an enumerated type stored in a textual column.
// Decode applies the supplied parse constructor to the column text; encode
// writes the formatted value through the opaque object path so the driver
// decides the stored representation.
//
// The parse function defines the mapping; calling it repeatedly for the
// same text must yield the same enumerated value.
func Enum[T any](parse func(string) (T, error), format func(T) string, opts ...Option) Mapper[T] {
	s := newSettings(TypeVarchar, opts)
	return mapper[T]{
		settings: s,
		decode: func(v any) (T, error) {
			var text string
			switch v := v.(type) {
			case string:
				text = v
			case []byte:
				text = string(v)
			default:
				return decodeErr[T](s, v)
			}
			e, err := parse(text)
			if err != nil {
				return decodeErr[T](s, text)
			}
			return e, nil
		},
		encode: func(b Binder, idx int, v T) error {
			return b.SetValue(idx, format(v))
		},
	}
}
