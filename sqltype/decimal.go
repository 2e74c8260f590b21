package sqltype

import "github.com/shopspring/decimal"

// Decimal returns the mapper for arbitrary-precision decimal values
// (DECIMAL column). Encode writes the canonical string form through the
// specific setter so the driver keeps full precision; decode accepts the
// textual, float and integer shapes NUMERIC columns come back as.
func Decimal(opts ...Option) Mapper[decimal.Decimal] {
	s := newSettings(TypeDecimal, opts)
	return mapper[decimal.Decimal]{
		settings: s,
		decode: func(v any) (decimal.Decimal, error) {
			switch v := v.(type) {
			case decimal.Decimal:
				return v, nil
			case string:
				d, err := decimal.NewFromString(v)
				if err != nil {
					return decodeErr[decimal.Decimal](s, v)
				}
				return d, nil
			case []byte:
				d, err := decimal.NewFromString(string(v))
				if err != nil {
					return decodeErr[decimal.Decimal](s, v)
				}
				return d, nil
			case float64:
				return decimal.NewFromFloat(v), nil
			case int64:
				return decimal.NewFromInt(v), nil
			default:
				return decodeErr[decimal.Decimal](s, v)
			}
		},
		encode: func(b Binder, idx int, v decimal.Decimal) error {
			return b.SetString(idx, v.String())
		},
	}
}
