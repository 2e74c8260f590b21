package sqltype

// ColumnMapper is the type-erased surface of a Mapper, used where the
// native type parameter is not statically known (registry iteration,
// CAST-type lookup).
type ColumnMapper interface {
	// Column returns the column-type tag the mapper declares for its values.
	Column() Type
	// CastType returns the SQL type text used when rendering CAST
	// expressions targeting this mapper's column type.
	CastType() string
}

// Mapper converts between the native Go type T and its database column
// representation. Decode reads from a live row cursor, Encode writes into
// a live parameter sink; both resources are owned by the caller.
//
// Mappers are immutable and stateless aside from the captured column-type
// tag, and safe for concurrent use.
type Mapper[T any] interface {
	ColumnMapper
	Decode(r Row, idx int) (T, error)
	Encode(b Binder, idx int, v T) error
}

// Option configures the column tag or CAST text of a mapper constructor.
type Option func(*settings)

type settings struct {
	column Type
	cast   string
}

// WithColumn overrides the column-type tag the mapper declares.
func WithColumn(t Type) Option {
	return func(s *settings) { s.column = t }
}

// WithCastType overrides the SQL type text used in CAST expressions.
// The default is the column tag's SQL name.
func WithCastType(text string) Option {
	return func(s *settings) { s.cast = text }
}

func newSettings(column Type, opts []Option) settings {
	s := settings{column: column}
	for _, opt := range opts {
		opt(&s)
	}
	if s.cast == "" {
		s.cast = s.column.String()
	}
	return s
}

// mapper is the shared Mapper implementation. The decode function receives
// the raw driver value already fetched from the row; the encode function
// writes through the binder. Both close over nothing mutable.
type mapper[T any] struct {
	settings
	decode func(v any) (T, error)
	encode func(Binder, int, T) error
}

func (m mapper[T]) Column() Type     { return m.column }
func (m mapper[T]) CastType() string { return m.cast }

func (m mapper[T]) Decode(r Row, idx int) (T, error) {
	var zero T
	v, err := r.Value(idx)
	if err != nil {
		return zero, err
	}
	return m.decode(v)
}

func (m mapper[T]) Encode(b Binder, idx int, v T) error {
	return m.encode(b, idx, v)
}
