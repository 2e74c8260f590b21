package sqltype

// Nullable wraps a mapper so that a nil pointer maps to SQL NULL in both
// directions. The declared column tag and CAST text are the inner mapper's.
func Nullable[T any](inner Mapper[T]) Mapper[*T] {
	return nullable[T]{inner: inner}
}

type nullable[T any] struct {
	inner Mapper[T]
}

func (n nullable[T]) Column() Type     { return n.inner.Column() }
func (n nullable[T]) CastType() string { return n.inner.CastType() }

func (n nullable[T]) Decode(r Row, idx int) (*T, error) {
	raw, err := r.Value(idx)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	v, err := n.inner.Decode(r, idx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (n nullable[T]) Encode(b Binder, idx int, v *T) error {
	if v == nil {
		return b.SetNull(idx, n.inner.Column())
	}
	return n.inner.Encode(b, idx, *v)
}
