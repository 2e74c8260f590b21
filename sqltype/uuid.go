package sqltype

import "github.com/google/uuid"

// UUID returns the mapper for uuid.UUID values. Decode accepts a native
// uuid.UUID, the canonical textual form, or raw bytes (either the 16-byte
// binary encoding or textual bytes); encode writes the native value
// directly and lets the driver choose the representation.
//
// The declared column tag is VARBINARY. This mirrors dialects that store
// UUIDs in a variable-length binary column; engines with a dedicated UUID
// type can override it with WithColumn.
func UUID(opts ...Option) Mapper[uuid.UUID] {
	s := newSettings(TypeVarbinary, opts)
	return mapper[uuid.UUID]{
		settings: s,
		decode: func(v any) (uuid.UUID, error) {
			switch v := v.(type) {
			case uuid.UUID:
				return v, nil
			case string:
				id, err := uuid.Parse(v)
				if err != nil {
					return decodeErr[uuid.UUID](s, v)
				}
				return id, nil
			case []byte:
				if len(v) == 16 {
					id, err := uuid.FromBytes(v)
					if err != nil {
						return decodeErr[uuid.UUID](s, v)
					}
					return id, nil
				}
				id, err := uuid.ParseBytes(v)
				if err != nil {
					return decodeErr[uuid.UUID](s, v)
				}
				return id, nil
			default:
				return decodeErr[uuid.UUID](s, v)
			}
		},
		encode: func(b Binder, idx int, v uuid.UUID) error {
			return b.SetValue(idx, v)
		},
	}
}
